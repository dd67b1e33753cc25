package entity

// Preview size constants, in terminal-equivalent CSS pixels.
const (
	SizeDefault = 32
	SizeMin     = 12
	SizeMax     = 72
	SizeStep    = 4
)

// PreviewSettings is the page-global preview preference: the sample text
// and render size applied to every card that has no local override.
type PreviewSettings struct {
	Text string `json:"text"`
	Size int    `json:"size"`
}

// DefaultPreviewSettings returns the first-run preference.
func DefaultPreviewSettings() PreviewSettings {
	return PreviewSettings{Text: "", Size: SizeDefault}
}

// SetSize updates the size, clamping to the valid range.
func (p *PreviewSettings) SetSize(size int) {
	p.Size = ClampSize(size)
}

// Increase grows the size by one step.
func (p *PreviewSettings) Increase() {
	p.SetSize(p.Size + SizeStep)
}

// Decrease shrinks the size by one step.
func (p *PreviewSettings) Decrease() {
	p.SetSize(p.Size - SizeStep)
}

// Normalize clamps out-of-range values, e.g. after loading a persisted
// preference that was edited by hand.
func (p *PreviewSettings) Normalize() {
	p.Size = ClampSize(p.Size)
}

// IsDefault reports whether the settings equal the first-run preference.
func (p PreviewSettings) IsDefault() bool {
	return p == DefaultPreviewSettings()
}

// ClampSize constrains a preview size to [SizeMin, SizeMax].
func ClampSize(size int) int {
	if size < SizeMin {
		return SizeMin
	}
	if size > SizeMax {
		return SizeMax
	}
	return size
}
