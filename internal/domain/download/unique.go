package download

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// MakeUniqueFilename generates a unique filename by appending _(N) if
// needed. The exists function should return true if the given path
// already exists.
func MakeUniqueFilename(dir, filename string, exists func(path string) bool) string {
	destPath := filepath.Join(dir, filename)
	if !exists(destPath) {
		return filename
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}

	// Fallback: use timestamp
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}
