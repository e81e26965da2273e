package cmd

import (
	"fmt"
	"os"

	"github.com/func/prompt/version"
	"github.com/spf13/cobra"
)

// Exec executes the main command.
func Exec() {
	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   "Interactive prompts for shell scripts",
		Version: version.String(),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		},
	}

	cmd.AddCommand(versionCommand())
	cmd.AddCommand(multiSelectCommand())
	cmd.AddCommand(textCommand())

	_ = cmd.Execute()
}
