package cmd

import (
	"os"

	"github.com/func/prompt/cli"
	"github.com/spf13/cobra"
)

func textCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Ask the user for a line of text",
		Args:  cobra.NoArgs,
	}
	flags := cmd.Flags()

	logLevel := flags.CountP("v", "v", "Log level")
	configPath := flags.String("config", "", "YAML file with the render configuration")

	var opts cli.TextOpts
	flags.StringVarP(&opts.Message, "message", "m", "", "Prompt message")
	flags.StringVar(&opts.Default, "default", "", "Answer used when the input is empty")
	flags.StringVar(&opts.Placeholder, "placeholder", "", "Text shown while the input is empty")
	flags.StringVar(&opts.HelpText, "help-text", "", "Help text shown below the prompt")
	flags.BoolVar(&opts.Required, "required", false, "Reject empty answers")
	flags.StringVar(&opts.OutputPrefix, "output-prefix", "", "Prefix for the printed answer")

	_ = cmd.MarkFlagRequired("message")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		app := cli.NewApp(cli.LogLevel(*logLevel))
		if err := app.UseConfig(*configPath); err != nil {
			app.Logger.Errorln(err)
			os.Exit(1)
		}
		os.Exit(app.Text(opts))
	}

	return cmd
}
