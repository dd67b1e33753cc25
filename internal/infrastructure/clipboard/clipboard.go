// Package clipboard provides a system clipboard adapter. It prefers
// wl-clipboard on Wayland and xclip/xsel on X11, falling back to the
// portable atotto/clipboard implementation everywhere else.
package clipboard

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"

	"github.com/Onimuxha/font/internal/application/port"
	"github.com/Onimuxha/font/internal/logging"
)

// Adapter implements port.Clipboard using system clipboard tools.
type Adapter struct {
	copyCmd string // empty means use the portable fallback
}

// New creates a new clipboard adapter, detecting the display server
// and selecting the appropriate tool.
func New() port.Clipboard {
	a := &Adapter{}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath("wl-copy"); err == nil {
			a.copyCmd = path
		}
	}

	if a.copyCmd == "" && os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath("xclip"); err == nil {
			a.copyCmd = path
		} else if path, err := exec.LookPath("xsel"); err == nil {
			a.copyCmd = path
		}
	}

	return a
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.copyCmd == "" {
		if err := atotto.WriteAll(text); err != nil {
			log.Error().Err(err).Msg("clipboard write failed")
			return fmt.Errorf("clipboard write: %w", err)
		}
		log.Debug().Int("len", len(text)).Msg("clipboard write success")
		return nil
	}

	var cmd *exec.Cmd
	switch {
	case strings.Contains(a.copyCmd, "wl-copy"):
		cmd = exec.CommandContext(ctx, a.copyCmd)
	case strings.Contains(a.copyCmd, "xclip"):
		cmd = exec.CommandContext(ctx, a.copyCmd, "-selection", "clipboard")
	case strings.Contains(a.copyCmd, "xsel"):
		cmd = exec.CommandContext(ctx, a.copyCmd, "--clipboard", "--input")
	default:
		return fmt.Errorf("unknown clipboard tool: %s", a.copyCmd)
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.copyCmd).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Str("tool", a.copyCmd).Int("len", len(text)).Msg("clipboard write success")
	return nil
}
