// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// DownloadRepository persists the download history.
type DownloadRepository interface {
	// Record stores a completed download.
	Record(ctx context.Context, entry *entity.DownloadEntry) error

	// Recent returns the most recent downloads, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.DownloadEntry, error)
}
