// Package prefstore persists the global preview preference as a small
// JSON file in the XDG state directory.
package prefstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is a file-backed port.PreferenceStore.
type Store struct {
	path string
}

// New creates a store at the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted settings. A missing file, unreadable file,
// malformed JSON, or out-of-range size all fall back to the defaults
// silently; malformed state never surfaces to the user.
func (s *Store) Load(ctx context.Context) entity.PreviewSettings {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("preference file unreadable, using defaults")
		}
		return entity.DefaultPreviewSettings()
	}

	var settings entity.PreviewSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("preference file malformed, using defaults")
		return entity.DefaultPreviewSettings()
	}

	settings.Normalize()
	return settings
}

// Save writes the settings atomically (temp file + rename).
func (s *Store) Save(ctx context.Context, settings entity.PreviewSettings) error {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create preference dir: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preference: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("write preference: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write preference: %w", err)
	}

	log.Debug().Str("path", s.path).Msg("preference saved")
	return nil
}
