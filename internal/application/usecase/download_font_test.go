package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// mockFileSystem implements port.FileSystem for testing.
type mockFileSystem struct {
	existingFiles map[string]bool
}

func (m *mockFileSystem) Exists(_ context.Context, path string) (bool, error) {
	return m.existingFiles[path], nil
}

// mockSaver implements port.AssetSaver for testing.
type mockSaver struct {
	saved   []string // destination paths, in call order
	saveErr error
}

func (m *mockSaver) Save(_ context.Context, _, destPath string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, destPath)
	return nil
}

// mockDownloadRepo implements repository.DownloadRepository for testing.
type mockDownloadRepo struct {
	entries   []*entity.DownloadEntry
	recordErr error
}

func (m *mockDownloadRepo) Record(_ context.Context, entry *entity.DownloadEntry) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockDownloadRepo) Recent(_ context.Context, _ int) ([]*entity.DownloadEntry, error) {
	return m.entries, nil
}

func fontA() entity.FontRecord {
	return entity.FontRecord{
		ID: "battambang", Name: "Battambang", Category: entity.CategoryKhmer,
		FontFamily: "Battambang", AssetURL: "https://example.com/Battambang-Regular.ttf",
	}
}

func fontB() entity.FontRecord {
	return entity.FontRecord{
		ID: "inter", Name: "Inter", Category: entity.CategoryEnglish,
		FontFamily: "Inter", AssetURL: "https://example.com/inter.woff2",
	}
}

func TestDownloadFont_ConfirmFiresSideEffect(t *testing.T) {
	ctx := context.Background()
	saver := &mockSaver{}
	repo := &mockDownloadRepo{}
	uc := NewDownloadFontUseCase(&mockFileSystem{}, saver, repo, "/downloads")

	uc.Request(fontA())
	pending, ok := uc.Pending()
	require.True(t, ok)
	assert.Equal(t, "battambang", pending.ID)

	result, err := uc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Battambang.ttf", result.Filename)
	assert.Equal(t, filepath.Join("/downloads", "Battambang.ttf"), result.Destination)
	assert.Equal(t, []string{result.Destination}, saver.saved)

	// Back to idle.
	_, ok = uc.Pending()
	assert.False(t, ok)

	// History recorded.
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "battambang", repo.entries[0].FontID)
}

func TestDownloadFont_CancelHasNoSideEffect(t *testing.T) {
	saver := &mockSaver{}
	uc := NewDownloadFontUseCase(&mockFileSystem{}, saver, nil, "/downloads")

	uc.Request(fontA())
	uc.Cancel()

	_, ok := uc.Pending()
	assert.False(t, ok)
	assert.Empty(t, saver.saved)

	_, err := uc.Confirm(context.Background())
	assert.Error(t, err, "confirming with nothing pending is an error")
	assert.Empty(t, saver.saved)
}

func TestDownloadFont_SecondRequestReplacesPending(t *testing.T) {
	ctx := context.Background()
	saver := &mockSaver{}
	uc := NewDownloadFontUseCase(&mockFileSystem{}, saver, nil, "/downloads")

	// Requesting A then B before confirming downloads B only.
	uc.Request(fontA())
	uc.Request(fontB())

	result, err := uc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "inter", result.Record.ID)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, filepath.Join("/downloads", "Inter.woff2"), saver.saved[0])
}

func TestDownloadFont_FailureLeavesNoState(t *testing.T) {
	ctx := context.Background()
	saver := &mockSaver{saveErr: errors.New("connection refused")}
	repo := &mockDownloadRepo{}
	uc := NewDownloadFontUseCase(&mockFileSystem{}, saver, repo, "/downloads")

	uc.Request(fontA())
	_, err := uc.Confirm(ctx)
	require.Error(t, err)

	// Flow is idle again, nothing recorded, ready for a retry.
	_, ok := uc.Pending()
	assert.False(t, ok)
	assert.Empty(t, repo.entries)
}

func TestDownloadFont_CollidingFilenameIsUniquified(t *testing.T) {
	ctx := context.Background()
	fs := &mockFileSystem{existingFiles: map[string]bool{
		filepath.Join("/downloads", "Battambang.ttf"): true,
	}}
	saver := &mockSaver{}
	uc := NewDownloadFontUseCase(fs, saver, nil, "/downloads")

	uc.Request(fontA())
	result, err := uc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Battambang_(1).ttf", result.Filename)
}

func TestDownloadFont_HistoryFailureDoesNotFailDownload(t *testing.T) {
	ctx := context.Background()
	saver := &mockSaver{}
	repo := &mockDownloadRepo{recordErr: errors.New("db locked")}
	uc := NewDownloadFontUseCase(&mockFileSystem{}, saver, repo, "/downloads")

	uc.Request(fontA())
	_, err := uc.Confirm(ctx)
	assert.NoError(t, err)
	assert.Len(t, saver.saved, 1)
}
