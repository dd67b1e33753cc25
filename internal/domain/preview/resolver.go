// Package preview resolves the effective sample text and size rendered
// for each font card, combining per-card overrides, the page-global
// preference, and each record's default sample.
package preview

import (
	"fmt"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// Language selects one of the two sample text pools.
type Language string

const (
	LanguageKhmer   Language = "khmer"
	LanguageEnglish Language = "english"
)

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == LanguageKhmer {
		return LanguageEnglish
	}
	return LanguageKhmer
}

// SamplePool holds the fixed sample texts keyed by language.
type SamplePool map[Language][]string

// Validate checks that both language pools are present and non-empty.
func (p SamplePool) Validate() error {
	for _, lang := range []Language{LanguageKhmer, LanguageEnglish} {
		if len(p[lang]) == 0 {
			return fmt.Errorf("sample pool for %s is empty", lang)
		}
	}
	return nil
}

// Override is the ephemeral per-card state while a card's control panel
// is in use. A zero Text means "fall back to the next text source".
type Override struct {
	Text      string
	Size      int
	Language  Language
	PanelOpen bool
}

// RandFunc returns a non-negative number below n. Injected so tests can
// supply a deterministic source.
type RandFunc func(n int) int

// Resolver owns the global preview settings and the per-card overrides,
// and resolves the effective display values for each record.
// It is not safe for concurrent use; the browse loop is single-threaded.
type Resolver struct {
	samples   SamplePool
	randInt   RandFunc
	global    entity.PreviewSettings
	overrides map[string]*Override
}

// NewResolver creates a resolver over the given sample pools.
func NewResolver(samples SamplePool, randInt RandFunc) *Resolver {
	return &Resolver{
		samples:   samples,
		randInt:   randInt,
		global:    entity.DefaultPreviewSettings(),
		overrides: make(map[string]*Override),
	}
}

// Global returns the page-global preview settings.
func (r *Resolver) Global() entity.PreviewSettings {
	return r.global
}

// SetGlobal replaces the page-global preview settings, clamping size.
func (r *Resolver) SetGlobal(s entity.PreviewSettings) {
	s.Normalize()
	r.global = s
}

// override returns the card's override, creating it on first use.
// New cards start in English with the global size (original behavior).
func (r *Resolver) override(id string) *Override {
	o, ok := r.overrides[id]
	if !ok {
		o = &Override{Size: r.global.Size, Language: LanguageEnglish}
		r.overrides[id] = o
	}
	return o
}

// Override exposes the card state for rendering. The returned copy
// reflects defaults when the card has no override yet.
func (r *Resolver) Override(id string) Override {
	if o, ok := r.overrides[id]; ok {
		return *o
	}
	return Override{Size: r.global.Size, Language: LanguageEnglish}
}

// EffectiveText resolves the text rendered for a record:
// card override, then the global preference, then the record default.
func (r *Resolver) EffectiveText(rec entity.FontRecord) string {
	if o, ok := r.overrides[rec.ID]; ok && o.Text != "" {
		return o.Text
	}
	if r.global.Text != "" {
		return r.global.Text
	}
	return rec.PreviewText
}

// EffectiveSize resolves the size rendered for a card. The card's own
// size applies only while its control panel is open.
func (r *Resolver) EffectiveSize(id string) int {
	if o, ok := r.overrides[id]; ok && o.PanelOpen {
		return o.Size
	}
	return r.global.Size
}

// OpenPanel opens a card's control panel.
func (r *Resolver) OpenPanel(id string) {
	r.override(id).PanelOpen = true
}

// ClosePanel closes a card's control panel. The override itself is
// kept, so reopening the panel restores the card's custom state.
func (r *Resolver) ClosePanel(id string) {
	if o, ok := r.overrides[id]; ok {
		o.PanelOpen = false
	}
}

// PanelOpen reports whether the card's control panel is open.
func (r *Resolver) PanelOpen(id string) bool {
	o, ok := r.overrides[id]
	return ok && o.PanelOpen
}

// SetText sets the card's custom text.
func (r *Resolver) SetText(id, text string) {
	r.override(id).Text = text
}

// ClearText drops the card's custom text, falling back to the global
// or record default.
func (r *Resolver) ClearText(id string) {
	if o, ok := r.overrides[id]; ok {
		o.Text = ""
	}
}

// SetSize sets the card's size, clamped to the valid range.
func (r *Resolver) SetSize(id string, size int) {
	r.override(id).Size = entity.ClampSize(size)
}

// IncreaseSize grows the card's size by one step, clamped.
func (r *Resolver) IncreaseSize(id string) {
	o := r.override(id)
	o.Size = entity.ClampSize(o.Size + entity.SizeStep)
}

// DecreaseSize shrinks the card's size by one step, clamped.
func (r *Resolver) DecreaseSize(id string) {
	o := r.override(id)
	o.Size = entity.ClampSize(o.Size - entity.SizeStep)
}

// RandomSample picks a uniformly random sample from the card's current
// language pool and sets it as the card's text.
func (r *Resolver) RandomSample(id string) string {
	o := r.override(id)
	pool := r.samples[o.Language]
	if len(pool) == 0 {
		return o.Text
	}
	o.Text = pool[r.randInt(len(pool))]
	return o.Text
}

// ToggleLanguage flips the card's language and immediately re-rolls the
// text to the first sample of the new language.
func (r *Resolver) ToggleLanguage(id string) Language {
	o := r.override(id)
	o.Language = o.Language.Toggle()
	if pool := r.samples[o.Language]; len(pool) > 0 {
		o.Text = pool[0]
	}
	return o.Language
}

// Retain drops overrides for every card not in keep. Called when the
// visible page changes so card state does not outlive its card.
func (r *Resolver) Retain(keep []string) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}
	for id := range r.overrides {
		if _, ok := keepSet[id]; !ok {
			delete(r.overrides, id)
		}
	}
}
