package model

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/font/internal/application/usecase"
	"github.com/Onimuxha/font/internal/cli/styles"
	"github.com/Onimuxha/font/internal/domain/catalog"
	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/preview"
	"github.com/Onimuxha/font/internal/infrastructure/config"
)

type memPrefStore struct {
	settings entity.PreviewSettings
}

func (s *memPrefStore) Load(context.Context) entity.PreviewSettings { return s.settings }
func (s *memPrefStore) Save(_ context.Context, v entity.PreviewSettings) error {
	s.settings = v
	return nil
}

type recordingSaver struct {
	saved []string
}

func (s *recordingSaver) Save(_ context.Context, _, destPath string) error {
	s.saved = append(s.saved, destPath)
	return nil
}

type memClipboard struct {
	text string
}

func (c *memClipboard) WriteText(_ context.Context, text string) error {
	c.text = text
	return nil
}

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	records := make([]entity.FontRecord, 0, n)
	for i := 0; i < n; i++ {
		cat := entity.CategoryEnglish
		if i%2 == 0 {
			cat = entity.CategoryKhmer
		}
		records = append(records, entity.FontRecord{
			ID:          fmt.Sprintf("font-%02d", i),
			Name:        fmt.Sprintf("Font %02d", i),
			Category:    cat,
			FileName:    fmt.Sprintf("font-%02d.ttf", i),
			FontFamily:  fmt.Sprintf("'Font %02d', sans-serif", i),
			PreviewText: "The quick brown fox",
			AssetURL:    fmt.Sprintf("/fonts/font-%02d.ttf", i),
		})
	}
	c, err := catalog.New(records)
	require.NoError(t, err)
	return c
}

func testBrowseModel(t *testing.T, n int) (BrowseModel, *recordingSaver) {
	t.Helper()

	pool := preview.SamplePool{
		preview.LanguageKhmer:   {"សួស្តី"},
		preview.LanguageEnglish: {"Hello there"},
	}
	resolver := preview.NewResolver(pool, func(int) int { return 0 })
	saver := &recordingSaver{}

	cfg := BrowseModelConfig{
		BrowseUC:   usecase.NewBrowseCatalogUseCase(testCatalog(t, n)),
		PreviewUC:  usecase.NewConfigurePreviewUseCase(&memPrefStore{settings: entity.DefaultPreviewSettings()}, resolver),
		DownloadUC: usecase.NewDownloadFontUseCase(nil, saver, nil, t.TempDir()),
		CSSUC:      usecase.NewCopyCSSUseCase(&memClipboard{}),
		PageSize:   9,
	}

	theme := styles.NewTheme(config.Default())
	return NewBrowseModel(context.Background(), theme, cfg), saver
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowse_FilterChangeResetsPage(t *testing.T) {
	m, _ := testBrowseModel(t, 24)

	m.gotoPage(2)
	require.Equal(t, 2, m.page)

	m.setQuery("font")
	assert.Equal(t, 1, m.page)

	m.gotoPage(2)
	m.setCategory(catalog.FilterKhmer)
	assert.Equal(t, 1, m.page)
}

func TestBrowse_PageChangeDropsCardOverrides(t *testing.T) {
	m, _ := testBrowseModel(t, 24)
	resolver := m.previewUC.Resolver()

	first := m.view.Page.Items[0]
	resolver.OpenPanel(first.ID)
	resolver.SetText(first.ID, "custom")

	m.gotoPage(2)
	assert.False(t, resolver.PanelOpen(first.ID))
	assert.Empty(t, resolver.Override(first.ID).Text)
}

func TestBrowse_PanelSurvivesCloseAndReopen(t *testing.T) {
	m, _ := testBrowseModel(t, 9)
	resolver := m.previewUC.Resolver()

	first := m.view.Page.Items[0]
	resolver.OpenPanel(first.ID)
	resolver.SetText(first.ID, "custom")
	resolver.ClosePanel(first.ID)
	resolver.OpenPanel(first.ID)

	assert.Equal(t, "custom", resolver.Override(first.ID).Text)
}

func TestBrowse_DownloadNeedsConfirmation(t *testing.T) {
	m, saver := testBrowseModel(t, 9)

	// "d" opens the dialog with "No" selected.
	next, _ := m.Update(keyRune('d'))
	m = next.(BrowseModel)
	require.NotNil(t, m.confirm)
	assert.False(t, m.confirm.Yes)

	// A bare enter cancels.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowseModel)
	assert.Nil(t, m.confirm)
	assert.Empty(t, saver.saved)

	_, pending := m.downloadUC.Pending()
	assert.False(t, pending)
}

func TestBrowse_ConfirmedDownloadSavesFile(t *testing.T) {
	m, saver := testBrowseModel(t, 9)

	next, _ := m.Update(keyRune('d'))
	m = next.(BrowseModel)
	require.NotNil(t, m.confirm)

	next, _ = m.Update(keyRune('y'))
	m = next.(BrowseModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowseModel)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(downloadDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Len(t, saver.saved, 1)
	assert.Equal(t, "Font 00.ttf", done.result.Filename)
}

func TestBrowse_TabCyclesCategories(t *testing.T) {
	m, _ := testBrowseModel(t, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowseModel)
	assert.Equal(t, catalog.FilterKhmer, m.category)
	assert.Equal(t, 12, m.view.FilteredCount)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowseModel)
	assert.Equal(t, catalog.FilterEnglish, m.category)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowseModel)
	assert.Equal(t, catalog.FilterAll, m.category)
}

func TestBrowse_GlobalSizePersists(t *testing.T) {
	m, _ := testBrowseModel(t, 9)

	next, _ := m.Update(keyRune('+'))
	m = next.(BrowseModel)

	global := m.previewUC.Resolver().Global()
	assert.Equal(t, entity.SizeDefault+entity.SizeStep, global.Size)
}

func TestBrowse_ViewRendersCards(t *testing.T) {
	m, _ := testBrowseModel(t, 24)

	view := m.View()
	assert.Contains(t, view, "Font 00")
	assert.Contains(t, view, "Khmer")
	assert.Contains(t, view, "The quick brown fox")
}
