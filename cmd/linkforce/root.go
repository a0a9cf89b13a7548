package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "linkforce",
		Short:         "Linkforce builds a link-in-bio profile and its share card",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the editor when a person is at the keyboard
			if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
				return runEdit(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newLinkCmd(flags))
	cmd.AddCommand(newCardCmd(flags))
	cmd.AddCommand(newBioCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newShareCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
