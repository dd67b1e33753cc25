package port

import (
	"context"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// PreferenceStore persists the page-global preview settings across
// sessions. Load must never fail on a missing or malformed store: it
// falls back to the default settings silently.
type PreferenceStore interface {
	Load(ctx context.Context) entity.PreviewSettings
	Save(ctx context.Context, settings entity.PreviewSettings) error
}
