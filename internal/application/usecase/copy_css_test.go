package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClipboard implements port.Clipboard for testing.
type mockClipboard struct {
	written  []string
	writeErr error
}

func (m *mockClipboard) WriteText(_ context.Context, text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, text)
	return nil
}

func TestCopyCSS_WritesSnippetToClipboard(t *testing.T) {
	ctx := context.Background()
	clip := &mockClipboard{}
	uc := NewCopyCSSUseCase(clip)

	snippet, err := uc.Copy(ctx, fontB())
	require.NoError(t, err)
	require.Len(t, clip.written, 1)
	assert.Equal(t, snippet, clip.written[0])
	assert.Contains(t, snippet, "font-family: 'Inter';")
	assert.Contains(t, snippet, "format('woff2')")
}

func TestCopyCSS_ClipboardFailure(t *testing.T) {
	ctx := context.Background()
	clip := &mockClipboard{writeErr: errors.New("permission denied")}
	uc := NewCopyCSSUseCase(clip)

	_, err := uc.Copy(ctx, fontB())
	assert.Error(t, err)
}

func TestCopyCSS_NilClipboard(t *testing.T) {
	uc := NewCopyCSSUseCase(nil)
	_, err := uc.Copy(context.Background(), fontB())
	assert.Error(t, err)
}
