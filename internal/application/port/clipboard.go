// Package port defines interfaces between the application layer and
// the host environment adapters.
package port

import "context"

// Clipboard abstracts the system clipboard.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error
}
