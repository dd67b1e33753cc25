package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/preview"
)

// mockPreferenceStore implements port.PreferenceStore for testing.
type mockPreferenceStore struct {
	stored  entity.PreviewSettings
	hasData bool
	saveErr error
}

func (m *mockPreferenceStore) Load(_ context.Context) entity.PreviewSettings {
	if !m.hasData {
		return entity.DefaultPreviewSettings()
	}
	return m.stored
}

func (m *mockPreferenceStore) Save(_ context.Context, s entity.PreviewSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = s
	m.hasData = true
	return nil
}

func newTestResolver() *preview.Resolver {
	pool := preview.SamplePool{
		preview.LanguageKhmer:   {"សួស្តី"},
		preview.LanguageEnglish: {"hello"},
	}
	return preview.NewResolver(pool, func(n int) int { return 0 })
}

func TestConfigurePreview_LoadDefaultsOnFirstRun(t *testing.T) {
	uc := NewConfigurePreviewUseCase(&mockPreferenceStore{}, newTestResolver())

	settings := uc.Load(context.Background())
	assert.Equal(t, entity.DefaultPreviewSettings(), settings)
	assert.Equal(t, settings, uc.Resolver().Global())
}

func TestConfigurePreview_LoadClampsOutOfRangeSize(t *testing.T) {
	store := &mockPreferenceStore{
		stored:  entity.PreviewSettings{Text: "hello", Size: 500},
		hasData: true,
	}
	uc := NewConfigurePreviewUseCase(store, newTestResolver())

	settings := uc.Load(context.Background())
	assert.Equal(t, entity.SizeMax, settings.Size)
	assert.Equal(t, "hello", settings.Text)
}

func TestConfigurePreview_SetGlobalPersists(t *testing.T) {
	ctx := context.Background()
	store := &mockPreferenceStore{}
	uc := NewConfigurePreviewUseCase(store, newTestResolver())

	err := uc.SetGlobal(ctx, entity.PreviewSettings{Text: "custom", Size: 48})
	require.NoError(t, err)
	assert.Equal(t, entity.PreviewSettings{Text: "custom", Size: 48}, store.stored)
	assert.Equal(t, 48, uc.Resolver().Global().Size)
}

func TestConfigurePreview_GlobalSizeSteps(t *testing.T) {
	ctx := context.Background()
	store := &mockPreferenceStore{}
	uc := NewConfigurePreviewUseCase(store, newTestResolver())

	require.NoError(t, uc.IncreaseGlobalSize(ctx))
	assert.Equal(t, entity.SizeDefault+entity.SizeStep, store.stored.Size)

	require.NoError(t, uc.DecreaseGlobalSize(ctx))
	assert.Equal(t, entity.SizeDefault, store.stored.Size)
}

func TestConfigurePreview_SaveFailureKeepsInMemoryValue(t *testing.T) {
	ctx := context.Background()
	store := &mockPreferenceStore{saveErr: errors.New("disk full")}
	uc := NewConfigurePreviewUseCase(store, newTestResolver())

	err := uc.SetGlobal(ctx, entity.PreviewSettings{Text: "x", Size: 40})
	assert.Error(t, err)
	// The session still uses the new value even if persisting failed.
	assert.Equal(t, 40, uc.Resolver().Global().Size)
}
