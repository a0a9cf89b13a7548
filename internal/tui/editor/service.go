package editor

import (
	"context"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

// ProfileStore is the state container the editor reads from and writes
// through. store.Store satisfies it.
type ProfileStore interface {
	Current() profile.UserProfile
	Apply(ctx context.Context, edit profile.Edit) profile.UserProfile
}

// BioAssistant rewrites the bio. assist.Assistant satisfies it.
type BioAssistant interface {
	Rewrite(ctx context.Context, req assist.Request) (string, error)
}

// CardExporter writes the share card image. export.Exporter satisfies it.
type CardExporter interface {
	Export(ctx context.Context, p profile.UserProfile) (string, error)
}
