package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the background presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tTONE\tTEXT")
			for _, preset := range style.DefaultCatalog() {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", preset.ID, preset.Name, preset.Tone, preset.Text)
			}
			return writer.Flush()
		},
	}

	return cmd
}
