package prefstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/font/internal/domain/entity"
)

func TestStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "preview.json"))
	got := s.Load(context.Background())
	assert.Equal(t, entity.DefaultPreviewSettings(), got)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "preview.json")
	s := New(path)

	want := entity.PreviewSettings{Text: "សួស្តី", Size: 48}
	require.NoError(t, s.Save(ctx, want))

	assert.Equal(t, want, s.Load(ctx))
}

func TestStore_MalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	assert.Equal(t, entity.DefaultPreviewSettings(), s.Load(context.Background()))
}

func TestStore_OutOfRangeSizeIsClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text":"x","size":9000}`), 0o644))

	s := New(path)
	got := s.Load(context.Background())
	assert.Equal(t, entity.SizeMax, got.Size)
	assert.Equal(t, "x", got.Text)
}
