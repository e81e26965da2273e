package cmd

import (
	"os"

	"github.com/func/prompt/cli"
	"github.com/spf13/cobra"
)

func multiSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiselect",
		Short: "Ask the user to check any number of options",
		Long: "Ask the user to check any number of options.\n\n" +
			"The checked options are printed to stdout, one per line.",
	}
	flags := cmd.Flags()

	logLevel := flags.CountP("v", "v", "Log level")
	configPath := flags.String("config", "", "YAML file with the render configuration")

	var opts cli.MultiSelectOpts
	flags.StringVarP(&opts.Message, "message", "m", "", "Prompt message")
	flags.StringArrayVarP(&opts.Options, "option", "o", nil, "Option to choose from, repeat for more options")
	flags.IntSliceVar(&opts.Default, "default", nil, "0-based indices of the options checked initially")
	flags.IntVar(&opts.PageSize, "page-size", 7, "Number of options shown at a time")
	flags.StringVar(&opts.HelpText, "help-text", "", "Help text shown below the options")
	flags.StringVar(&opts.IndexPrefix, "index-prefix", "", "Number the options: none, simple, space_padded or zero_padded")
	flags.IntVar(&opts.Min, "min", 0, "Minimum number of options to check")
	flags.StringVar(&opts.OutputPrefix, "output-prefix", "", "Prefix for every printed option")

	_ = cmd.MarkFlagRequired("message")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		app := cli.NewApp(cli.LogLevel(*logLevel))
		if err := app.UseConfig(*configPath); err != nil {
			app.Logger.Errorln(err)
			os.Exit(1)
		}
		opts.Options = append(opts.Options, args...)
		os.Exit(app.MultiSelect(opts))
	}

	return cmd
}
