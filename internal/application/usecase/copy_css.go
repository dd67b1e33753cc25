package usecase

import (
	"context"
	"fmt"

	"github.com/Onimuxha/font/internal/application/port"
	"github.com/Onimuxha/font/internal/domain/download"
	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/logging"
)

// CopyCSSUseCase renders a record's @font-face snippet and copies it to
// the system clipboard.
type CopyCSSUseCase struct {
	clipboard port.Clipboard
}

// NewCopyCSSUseCase creates a new CopyCSSUseCase.
func NewCopyCSSUseCase(clipboard port.Clipboard) *CopyCSSUseCase {
	return &CopyCSSUseCase{clipboard: clipboard}
}

// Snippet renders the @font-face declaration without touching the
// clipboard.
func (*CopyCSSUseCase) Snippet(rec entity.FontRecord) string {
	return download.FontFaceCSS(rec)
}

// Copy renders the snippet and writes it to the clipboard. Returns the
// snippet on success. The caller surfaces failures as a notification.
func (uc *CopyCSSUseCase) Copy(ctx context.Context, rec entity.FontRecord) (string, error) {
	log := logging.FromContext(ctx)

	if uc.clipboard == nil {
		return "", fmt.Errorf("clipboard not available")
	}

	snippet := download.FontFaceCSS(rec)
	if err := uc.clipboard.WriteText(ctx, snippet); err != nil {
		log.Error().Err(err).Str("font", rec.ID).Msg("clipboard write failed")
		return "", fmt.Errorf("copy css: %w", err)
	}

	log.Debug().Str("font", rec.ID).Int("len", len(snippet)).Msg("css snippet copied")
	return snippet, nil
}
