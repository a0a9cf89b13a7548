package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

func newShareCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the public profile address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			name := app.Store.Current().Name
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), profile.ShareURL(name))
			return nil
		},
	}

	return cmd
}
