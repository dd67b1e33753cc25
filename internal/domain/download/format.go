// Package download contains pure logic for resolving font asset
// formats, target filenames, and embed snippets.
package download

import (
	"fmt"
	"strings"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// DefaultExtension is assumed when an asset URL carries no extension.
const DefaultExtension = "ttf"

// AssetFormat describes a font file's wire format.
type AssetFormat struct {
	Extension   string // lower-cased file extension, without dot
	FormatToken string // format identifier used in @font-face src()
}

// formatTokens is the closed extension -> format token table. Anything
// not listed, including ttf, falls back to truetype.
var formatTokens = map[string]string{
	"otf":   "opentype",
	"woff":  "woff",
	"woff2": "woff2",
}

// ResolveAssetFormat derives the extension and format token from an
// asset URL. The extension is the substring after the last dot,
// lower-cased; URLs without an extension default to ttf.
func ResolveAssetFormat(url string) AssetFormat {
	ext := DefaultExtension
	if i := strings.LastIndex(url, "."); i >= 0 && i < len(url)-1 {
		ext = strings.ToLower(url[i+1:])
	}

	token, ok := formatTokens[ext]
	if !ok {
		token = "truetype"
	}
	return AssetFormat{Extension: ext, FormatToken: token}
}

// TargetFilename returns the save name for a record's asset:
// "{name}.{extension}".
func TargetFilename(rec entity.FontRecord) string {
	f := ResolveAssetFormat(rec.AssetURL)
	return fmt.Sprintf("%s.%s", rec.Name, f.Extension)
}

// FontFaceCSS renders the @font-face declaration for embedding the
// record's font on a web page.
func FontFaceCSS(rec entity.FontRecord) string {
	f := ResolveAssetFormat(rec.AssetURL)
	return fmt.Sprintf(`@font-face {
  font-family: '%s';
  src: url('%s') format('%s');
  font-weight: normal;
  font-style: normal;
}`, rec.FontFamily, rec.AssetURL, f.FormatToken)
}
