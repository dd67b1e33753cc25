package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFont     = "\uf031" // text/glyph
	IconSearch   = "\uf002" // magnifier
	IconDownload = "\uf019" // download
	IconClipbrd  = "\uf0ea" // clipboard
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconFilter   = "\uf0b0" // filter
	IconClock    = "\uf017" // clock
	IconFolder   = "\uf07b" // folder
	IconDatabase = "\uf1c0" // database
	IconGear     = "\uf013" // settings
	IconDice     = "\uf522" // random sample
	IconGlobe    = "\uf0ac" // language

	// UI
	IconCursor = "\uf054" // chevron-right
)
