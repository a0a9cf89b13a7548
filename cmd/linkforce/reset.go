package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type resetOptions struct {
	force bool
}

func newResetCmd(flags *rootFlags) *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved profile and start from the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Reset without confirmation")

	return cmd
}

func runReset(cmd *cobra.Command, flags *rootFlags, opts *resetOptions) error {
	if !opts.force {
		confirmed, err := confirmReset(cmd)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.Reset(cmd.Context())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Profile reset to defaults")
	return nil
}

func confirmReset(cmd *cobra.Command) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("reset", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Discard the saved profile and restore the defaults? [y/N]: ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}
