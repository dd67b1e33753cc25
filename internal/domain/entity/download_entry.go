package entity

import "time"

// DownloadEntry records one completed font download.
type DownloadEntry struct {
	ID           int64
	FontID       string
	Name         string
	Destination  string
	DownloadedAt time.Time
}
