package port

import "context"

// FileSystem abstracts the filesystem checks needed around downloads.
type FileSystem interface {
	// Exists reports whether a path exists.
	Exists(ctx context.Context, path string) (bool, error)
}

// AssetSaver fetches a font asset and writes it to a destination path.
// The source may be an http(s) URL or a local file path.
type AssetSaver interface {
	Save(ctx context.Context, assetURL, destPath string) error
}
