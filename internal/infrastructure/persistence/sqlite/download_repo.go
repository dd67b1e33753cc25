package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/repository"
	"github.com/Onimuxha/font/internal/logging"
)

type downloadRepo struct {
	db *sql.DB
}

// NewDownloadRepository creates a SQLite-backed download history repository.
func NewDownloadRepository(db *sql.DB) repository.DownloadRepository {
	return &downloadRepo{db: db}
}

func (r *downloadRepo) Record(ctx context.Context, entry *entity.DownloadEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("font_id", entry.FontID).Str("dest", entry.Destination).Msg("recording download")

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO downloads (font_id, name, destination, downloaded_at) VALUES (?, ?, ?, ?)`,
		entry.FontID, entry.Name, entry.Destination, entry.DownloadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert download: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

func (r *downloadRepo) Recent(ctx context.Context, limit int) ([]*entity.DownloadEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, font_id, name, destination, downloaded_at
		 FROM downloads ORDER BY downloaded_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*entity.DownloadEntry
	for rows.Next() {
		e := &entity.DownloadEntry{}
		if err := rows.Scan(&e.ID, &e.FontID, &e.Name, &e.Destination, &e.DownloadedAt); err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
