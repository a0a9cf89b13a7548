package editor

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

var errExportUnavailable = errors.New("card export is not configured")

// generateBioCmd runs the bio rewrite asynchronously
func generateBioCmd(ctx context.Context, assistant BioAssistant, req assist.Request) tea.Cmd {
	return func() tea.Msg {
		if assistant == nil {
			return BioFailedMsg{Err: assist.ErrMissingCredential}
		}

		bio, err := assistant.Rewrite(ctx, req)
		if err != nil {
			return BioFailedMsg{Err: err}
		}
		return BioGeneratedMsg{Bio: bio}
	}
}

// exportCmd writes the card image asynchronously
func exportCmd(ctx context.Context, exporter CardExporter, p profile.UserProfile) tea.Cmd {
	return func() tea.Msg {
		if exporter == nil {
			return ExportFailedMsg{Err: errExportUnavailable}
		}

		path, err := exporter.Export(ctx, p)
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		return ExportCompleteMsg{Path: path}
	}
}
