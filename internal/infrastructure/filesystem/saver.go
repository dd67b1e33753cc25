// Package filesystem provides the asset saver and filesystem checks.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Onimuxha/font/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	downloadTimeout = 60 * time.Second
)

// Saver implements port.AssetSaver and port.FileSystem. It fetches
// http(s) asset URLs over the network and copies local paths directly.
type Saver struct {
	client *http.Client
}

// NewSaver creates a Saver with a bounded-timeout HTTP client.
func NewSaver() *Saver {
	return &Saver{client: &http.Client{Timeout: downloadTimeout}}
}

// Exists reports whether a path exists.
func (*Saver) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Save writes the asset at assetURL to destPath. The write goes
// through a temp file and rename so a failed download leaves nothing
// behind.
func (s *Saver) Save(ctx context.Context, assetURL, destPath string) error {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(destPath), dirPerm); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	src, err := s.open(ctx, assetURL)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".font-download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(tmp, src)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write asset: %w", err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("chmod asset: %w", err)
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("move asset into place: %w", err)
	}

	log.Debug().Str("url", assetURL).Str("dest", destPath).Int64("bytes", written).Msg("asset saved")
	return nil
}

func (s *Saver) open(ctx context.Context, assetURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(assetURL, "http://") || strings.HasPrefix(assetURL, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch asset: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("fetch asset: unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(assetURL)
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	return f, nil
}
