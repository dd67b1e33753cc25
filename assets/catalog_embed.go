// Package assets holds data files embedded at compile time.
package assets

import _ "embed"

// CatalogJSON is the bundled font catalog: the font records plus the
// per-language sample text pools used by the preview controls.
//
//go:embed catalog.json
var CatalogJSON []byte
