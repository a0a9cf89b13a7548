package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/tui/editor"
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive profile editor",
		Long:  `Open the terminal editor with the Content, Design and Card tabs and a live preview beside the form.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags) error {
	app, err := openApp(cmd, flags, appOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Info("launching editor")

	m := editor.NewModel(editor.Options{
		Context:   cmd.Context(),
		Store:     app.Store,
		Assistant: app.Assistant,
		Exporter:  app.Exporter,
		Catalog:   app.Catalog,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "editor execution failed")
		return fmt.Errorf("failed to run editor: %w", err)
	}

	app.Log.Info("editor closed")
	return nil
}
