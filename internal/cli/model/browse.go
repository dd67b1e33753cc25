// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Onimuxha/font/internal/application/usecase"
	"github.com/Onimuxha/font/internal/cli/styles"
	"github.com/Onimuxha/font/internal/domain/catalog"
	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/logging"
)

// browseFocus tracks which part of the screen owns key input.
type browseFocus int

const (
	focusCards browseFocus = iota
	focusSearch
	focusPanelText
)

// BrowseModel is the Bubble Tea model for the interactive font browser.
type BrowseModel struct {
	// UI components
	help       help.Model
	keys       browseKeyMap
	search     textinput.Model
	panelInput textinput.Model
	confirm    *styles.ConfirmModel
	toast      styles.ToastModel

	// State
	focus       browseFocus
	query       string
	category    catalog.CategoryFilter
	page        int
	view        usecase.BrowseOutput
	selectedIdx int
	suggestions []string
	suggestIdx  int
	width       int
	height      int

	// Config
	pageSize     int
	suggestLimit int

	// Dependencies
	ctx        context.Context
	browseUC   *usecase.BrowseCatalogUseCase
	previewUC  *usecase.ConfigurePreviewUseCase
	downloadUC *usecase.DownloadFontUseCase
	cssUC      *usecase.CopyCSSUseCase
	theme      *styles.Theme
}

// browseKeyMap defines keybindings for the font browser.
type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Tab      key.Binding
	Search   key.Binding
	Panel    key.Binding
	EditText key.Binding
	SizeUp   key.Binding
	SizeDown key.Binding
	Random   key.Binding
	Language key.Binding
	Download key.Binding
	CopyCSS  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Panel, k.Download, k.CopyCSS, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Search, k.Tab, k.Panel, k.EditText},
		{k.SizeUp, k.SizeDown, k.Random, k.Language},
		{k.Download, k.CopyCSS, k.Help, k.Quit},
	}
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←/[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→/]", "next page"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Panel: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "controls"),
		),
		EditText: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit text"),
		),
		SizeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "size up"),
		),
		SizeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "size down"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random sample"),
		),
		Language: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle language"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		CopyCSS: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowseModelConfig holds configuration for the browser model.
type BrowseModelConfig struct {
	BrowseUC   *usecase.BrowseCatalogUseCase
	PreviewUC  *usecase.ConfigurePreviewUseCase
	DownloadUC *usecase.DownloadFontUseCase
	CSSUC      *usecase.CopyCSSUseCase

	PageSize        int
	SuggestionLimit int
}

// NewBrowseModel creates a new font browser model.
func NewBrowseModel(ctx context.Context, theme *styles.Theme, cfg BrowseModelConfig) BrowseModel {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 9
	}
	suggestLimit := cfg.SuggestionLimit
	if suggestLimit <= 0 {
		suggestLimit = catalog.DefaultSuggestionLimit
	}

	m := BrowseModel{
		help:         help.New(),
		keys:         defaultBrowseKeyMap(),
		search:       styles.NewSearchInput(theme),
		panelInput:   styles.NewPreviewInput(theme),
		toast:        styles.NewToast(theme),
		focus:        focusCards,
		category:     catalog.FilterAll,
		page:         1,
		suggestIdx:   -1,
		width:        80,
		height:       24,
		pageSize:     pageSize,
		suggestLimit: suggestLimit,
		ctx:          ctx,
		browseUC:     cfg.BrowseUC,
		previewUC:    cfg.PreviewUC,
		downloadUC:   cfg.DownloadUC,
		cssUC:        cfg.CSSUC,
		theme:        theme,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// downloadDoneMsg is sent when a confirmed download finishes.
type downloadDoneMsg struct {
	result *usecase.DownloadResult
	err    error
}

// cssCopiedMsg is sent when a CSS snippet copy completes.
type cssCopiedMsg struct {
	name string
	err  error
}

// refresh recomputes the visible page from the current query, category
// and page number, then drops overrides for cards that scrolled away.
func (m *BrowseModel) refresh() {
	m.view = m.browseUC.Execute(usecase.BrowseInput{
		Query:    m.query,
		Category: m.category,
		Page:     m.page,
		PageSize: m.pageSize,
	})
	m.page = m.view.Page.Number
	if m.selectedIdx >= len(m.view.Page.Items) {
		m.selectedIdx = len(m.view.Page.Items) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}

	keep := make([]string, 0, len(m.view.Page.Items))
	for _, rec := range m.view.Page.Items {
		keep = append(keep, rec.ID)
	}
	m.previewUC.Resolver().Retain(keep)
}

// setQuery applies a new search query; any filter change snaps back to
// the first page.
func (m *BrowseModel) setQuery(query string) {
	if query == m.query {
		return
	}
	m.query = query
	m.page = 1
	m.selectedIdx = 0
	m.refresh()
}

func (m *BrowseModel) setCategory(f catalog.CategoryFilter) {
	if f == m.category {
		return
	}
	m.category = f
	m.page = 1
	m.selectedIdx = 0
	m.refresh()
}

func (m *BrowseModel) gotoPage(page int) {
	page = catalog.ClampPage(page, m.view.Page.TotalPages)
	if page == m.page {
		return
	}
	m.page = page
	m.selectedIdx = 0
	m.refresh()
}

// selected returns the record under the cursor.
func (m *BrowseModel) selected() (entity.FontRecord, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.view.Page.Items) {
		return entity.FontRecord{}, false
	}
	return m.view.Page.Items[m.selectedIdx], true
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmDialog(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case downloadDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			m.toast, cmd = m.toast.Show(fmt.Sprintf("Download failed: %v", msg.err), styles.ToastError)
		} else {
			m.toast, cmd = m.toast.Show(fmt.Sprintf("Saved %s", msg.result.Filename), styles.ToastSuccess)
		}
		return m, cmd

	case cssCopiedMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			m.toast, cmd = m.toast.Show(fmt.Sprintf("Copy failed: %v", msg.err), styles.ToastError)
		} else {
			m.toast, cmd = m.toast.Show(fmt.Sprintf("CSS for %s copied", msg.name), styles.ToastSuccess)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.toast, cmd = m.toast.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleConfirmDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd
	}

	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	confirmed := m.confirm.Result()
	m.confirm = nil
	if confirmed {
		return m, m.confirmDownload()
	}
	m.downloadUC.Cancel()
	return m, cmd
}

func (m BrowseModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusPanelText:
		return m.handlePanelTextKey(msg)
	default:
		return m.handleCardsKey(msg)
	}
}

func (m BrowseModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusCards
		m.search.Blur()
		m.suggestions = nil
		m.suggestIdx = -1
		return m, nil

	case "enter":
		if m.suggestIdx >= 0 && m.suggestIdx < len(m.suggestions) {
			m.search.SetValue(m.suggestions[m.suggestIdx])
			m.setQuery(m.suggestions[m.suggestIdx])
		}
		m.focus = focusCards
		m.search.Blur()
		m.suggestions = nil
		m.suggestIdx = -1
		return m, nil

	case "down":
		if len(m.suggestions) > 0 {
			m.suggestIdx = (m.suggestIdx + 1) % len(m.suggestions)
		}
		return m, nil

	case "up":
		if len(m.suggestions) > 0 {
			m.suggestIdx--
			if m.suggestIdx < 0 {
				m.suggestIdx = len(m.suggestions) - 1
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	m.suggestions = m.browseUC.Suggest(m.search.Value(), m.suggestLimit)
	m.suggestIdx = -1
	return m, cmd
}

func (m BrowseModel) handlePanelTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok {
		m.focus = focusCards
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter":
		m.focus = focusCards
		m.panelInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.panelInput, cmd = m.panelInput.Update(msg)
	m.previewUC.Resolver().SetText(rec.ID, m.panelInput.Value())
	return m, cmd
}

func (m BrowseModel) handleCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	resolver := m.previewUC.Resolver()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.view.Page.Items)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.gotoPage(m.page - 1)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.gotoPage(m.page + 1)
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.setCategory(nextCategory(m.category))
		return m, nil

	case key.Matches(msg, m.keys.Panel):
		if rec, ok := m.selected(); ok {
			if resolver.PanelOpen(rec.ID) {
				resolver.ClosePanel(rec.ID)
			} else {
				resolver.OpenPanel(rec.ID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.EditText):
		if rec, ok := m.selected(); ok && resolver.PanelOpen(rec.ID) {
			m.focus = focusPanelText
			m.panelInput.SetValue(resolver.Override(rec.ID).Text)
			m.panelInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.SizeUp):
		return m.adjustSize(+1)

	case key.Matches(msg, m.keys.SizeDown):
		return m.adjustSize(-1)

	case key.Matches(msg, m.keys.Random):
		if rec, ok := m.selected(); ok && resolver.PanelOpen(rec.ID) {
			resolver.RandomSample(rec.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Language):
		if rec, ok := m.selected(); ok && resolver.PanelOpen(rec.ID) {
			resolver.ToggleLanguage(rec.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Download):
		if rec, ok := m.selected(); ok {
			m.downloadUC.Request(rec)
			confirm := styles.NewConfirm(m.theme,
				fmt.Sprintf("Download %s?", rec.Name),
				fmt.Sprintf("%s • %s", rec.FontFamily, rec.Category),
			)
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyCSS):
		if rec, ok := m.selected(); ok {
			return m, m.copyCSS(rec)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// adjustSize changes the card size while its panel is open, otherwise
// the persisted global size.
func (m BrowseModel) adjustSize(direction int) (tea.Model, tea.Cmd) {
	resolver := m.previewUC.Resolver()

	if rec, ok := m.selected(); ok && resolver.PanelOpen(rec.ID) {
		if direction > 0 {
			resolver.IncreaseSize(rec.ID)
		} else {
			resolver.DecreaseSize(rec.ID)
		}
		return m, nil
	}

	var err error
	if direction > 0 {
		err = m.previewUC.IncreaseGlobalSize(m.ctx)
	} else {
		err = m.previewUC.DecreaseGlobalSize(m.ctx)
	}
	if err != nil {
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(fmt.Sprintf("Preference not saved: %v", err), styles.ToastError)
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) confirmDownload() tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		result, err := m.downloadUC.Confirm(m.ctx)
		if err != nil {
			log.Error().Err(err).Msg("download failed")
		}
		return downloadDoneMsg{result: result, err: err}
	}
}

func (m BrowseModel) copyCSS(rec entity.FontRecord) tea.Cmd {
	return func() tea.Msg {
		_, err := m.cssUC.Copy(m.ctx, rec)
		return cssCopiedMsg{name: rec.Name, err: err}
	}
}

func nextCategory(f catalog.CategoryFilter) catalog.CategoryFilter {
	switch f {
	case catalog.FilterAll:
		return catalog.FilterKhmer
	case catalog.FilterKhmer:
		return catalog.FilterEnglish
	default:
		return catalog.FilterAll
	}
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(t.InputBox(m.search.View(), m.focus == focusSearch))
	b.WriteString("\n")

	if m.focus == focusSearch && len(m.suggestions) > 0 {
		b.WriteString(m.renderSuggestions())
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if len(m.view.Page.Items) == 0 {
		b.WriteString(t.Subtle.Render("  No fonts match your search."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderCards())
	}

	if pager := t.PaginationView(m.view.Page.Number, m.view.Page.TotalPages); pager != "" {
		b.WriteString("\n")
		b.WriteString(pager)
		b.WriteString("\n")
	}

	if toast := m.toast.View(); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m BrowseModel) renderHeader() string {
	t := m.theme

	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconFont)
	title := t.Title.MarginLeft(1).Render("Font Catalog")

	global := m.previewUC.Resolver().Global()
	stats := t.Subtle.Render(fmt.Sprintf("  %d fonts • %d shown • size %dpx",
		m.view.TotalFonts, m.view.FilteredCount, global.Size))

	return icon + title + stats
}

func (m BrowseModel) renderTabs() string {
	return m.theme.TabBarView([]styles.Tab{
		{Label: "All", Count: m.view.TotalFonts},
		{Label: "Khmer", Count: m.view.KhmerFonts},
		{Label: "English", Count: m.view.EnglishFonts},
	}, categoryIndex(m.category))
}

func categoryIndex(f catalog.CategoryFilter) int {
	switch f {
	case catalog.FilterKhmer:
		return 1
	case catalog.FilterEnglish:
		return 2
	default:
		return 0
	}
}

func (m BrowseModel) renderSuggestions() string {
	t := m.theme
	var b strings.Builder
	for i, s := range m.suggestions {
		if i == m.suggestIdx {
			b.WriteString(t.Highlight.Render("  " + styles.IconCursor + " " + s))
		} else {
			b.WriteString(t.Subtle.Render("    " + s))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowseModel) renderCards() string {
	var b strings.Builder
	for i, rec := range m.view.Page.Items {
		b.WriteString(m.renderCard(rec, i == m.selectedIdx))
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowseModel) renderCard(rec entity.FontRecord, selected bool) string {
	t := m.theme
	resolver := m.previewUC.Resolver()

	cursor := "  "
	if selected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
	}

	title := t.CardTitle.Render(rec.Name)
	badge := t.CategoryBadge(string(rec.Category))
	family := t.CardDesc.Render(rec.FontFamily)

	header := fmt.Sprintf("%s%s %s  %s", cursor, title, badge, family)

	text := resolver.EffectiveText(rec)
	size := resolver.EffectiveSize(rec.ID)
	sample := t.Normal.Render(fmt.Sprintf("    %s", text))
	meta := t.CardDesc.Render(fmt.Sprintf("    %dpx", size))

	lines := []string{header, sample, meta}

	if resolver.PanelOpen(rec.ID) {
		lines = append(lines, m.renderPanel(rec, selected))
	}

	card := strings.Join(lines, "\n")
	if selected {
		return t.CardSelected.Render(card)
	}
	return t.Card.Render(card)
}

func (m BrowseModel) renderPanel(rec entity.FontRecord, selected bool) string {
	t := m.theme
	resolver := m.previewUC.Resolver()
	o := resolver.Override(rec.ID)

	var b strings.Builder
	b.WriteString(t.Subtle.Render("    ─ controls ─"))
	b.WriteString("\n")

	if selected && m.focus == focusPanelText {
		b.WriteString("    " + t.InputBox(m.panelInput.View(), true))
	} else {
		label := o.Text
		if label == "" {
			label = "(inherited)"
		}
		b.WriteString(t.Subtle.Render(fmt.Sprintf("    text: %s", label)))
	}
	b.WriteString("\n")

	b.WriteString(t.Subtle.Render(fmt.Sprintf("    size: %dpx (%d-%d)  lang: %s",
		o.Size, entity.SizeMin, entity.SizeMax, o.Language)))
	b.WriteString("\n")
	b.WriteString(t.HelpDesc.Render("    t edit • r random • g language • +/- size"))

	return b.String()
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*BrowseModel)(nil)
