// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Onimuxha/font/internal/application/port"
	"github.com/Onimuxha/font/internal/domain/download"
	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/repository"
	"github.com/Onimuxha/font/internal/logging"
)

// DownloadFontUseCase drives the confirm-then-save download flow.
//
// The flow is a two-state machine: Idle -> (Request) -> Confirming ->
// (Confirm: side effect fired / Cancel: nothing) -> Idle. Requesting a
// new download while confirming replaces the pending target, it never
// queues. At most one confirmation is active at a time.
type DownloadFontUseCase struct {
	fs          port.FileSystem
	saver       port.AssetSaver
	history     repository.DownloadRepository
	downloadDir string

	pending *entity.FontRecord
}

// DownloadResult describes a completed download.
type DownloadResult struct {
	Record      entity.FontRecord
	Filename    string
	Destination string
}

// NewDownloadFontUseCase creates a new DownloadFontUseCase.
// If history is nil, downloads are not recorded.
func NewDownloadFontUseCase(fs port.FileSystem, saver port.AssetSaver, history repository.DownloadRepository, downloadDir string) *DownloadFontUseCase {
	return &DownloadFontUseCase{
		fs:          fs,
		saver:       saver,
		history:     history,
		downloadDir: downloadDir,
	}
}

// Request moves the flow into the confirming state for the given
// record, replacing any previously pending target.
func (u *DownloadFontUseCase) Request(rec entity.FontRecord) {
	r := rec
	u.pending = &r
}

// Pending returns the record awaiting confirmation, if any.
func (u *DownloadFontUseCase) Pending() (entity.FontRecord, bool) {
	if u.pending == nil {
		return entity.FontRecord{}, false
	}
	return *u.pending, true
}

// Cancel leaves the confirming state without side effects.
func (u *DownloadFontUseCase) Cancel() {
	u.pending = nil
}

// Confirm fires the download side effect for the pending record and
// returns to idle, whether the save succeeded or not. On failure no
// partial state is retained and nothing is recorded in history.
func (u *DownloadFontUseCase) Confirm(ctx context.Context) (*DownloadResult, error) {
	log := logging.FromContext(ctx)

	rec, ok := u.Pending()
	u.pending = nil
	if !ok {
		return nil, fmt.Errorf("no download pending confirmation")
	}

	filename := download.TargetFilename(rec)
	if u.fs != nil {
		filename = download.MakeUniqueFilename(u.downloadDir, filename, func(path string) bool {
			exists, err := u.fs.Exists(ctx, path)
			return err == nil && exists
		})
	}
	destPath := filepath.Join(u.downloadDir, filename)

	if err := u.saver.Save(ctx, rec.AssetURL, destPath); err != nil {
		log.Error().Err(err).Str("font", rec.ID).Str("dest", destPath).Msg("download failed")
		return nil, fmt.Errorf("download %s: %w", rec.Name, err)
	}

	log.Info().Str("font", rec.ID).Str("dest", destPath).Msg("font downloaded")

	if u.history != nil {
		entry := &entity.DownloadEntry{
			FontID:       rec.ID,
			Name:         rec.Name,
			Destination:  destPath,
			DownloadedAt: time.Now(),
		}
		if err := u.history.Record(ctx, entry); err != nil {
			// History is best effort; the download itself succeeded.
			log.Warn().Err(err).Str("font", rec.ID).Msg("failed to record download history")
		}
	}

	return &DownloadResult{Record: rec, Filename: filename, Destination: destPath}, nil
}
