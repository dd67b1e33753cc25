package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/domain/entity"
)

var (
	prefsText    string
	prefsSize    int
	prefsTextSet bool
	prefsSizeSet bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the persisted preview preference",
	Long: `Show or change the persisted global preview preference.

The preference applies to every card in the browser that has no
override of its own.`,
	RunE: runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the preview preference",
	Long: fmt.Sprintf(`Change the global preview text or size.

Size is clamped to %d-%d. An empty --text falls back to each font's
default sample.

Examples:
  font prefs set --size 48
  font prefs set --text "Hello world"`, entity.SizeMin, entity.SizeMax),
	RunE: runPrefsSet,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsSetCmd)

	prefsSetCmd.Flags().StringVar(&prefsText, "text", "", "global preview text (empty for per-font default)")
	prefsSetCmd.Flags().IntVar(&prefsSize, "size", entity.SizeDefault, "global preview size in px")
}

func runPrefsGet(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings := app.PreviewUC.Resolver().Global()
	text := settings.Text
	if text == "" {
		text = "(per-font default)"
	}
	fmt.Printf("text: %s\nsize: %dpx\n", text, settings.Size)
	return nil
}

func runPrefsSet(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	prefsTextSet = cmd.Flags().Changed("text")
	prefsSizeSet = cmd.Flags().Changed("size")
	if !prefsTextSet && !prefsSizeSet {
		return fmt.Errorf("nothing to change: pass --text and/or --size")
	}

	settings := app.PreviewUC.Resolver().Global()
	if prefsTextSet {
		settings.Text = prefsText
	}
	if prefsSizeSet {
		settings.Size = prefsSize
	}

	if err := app.PreviewUC.SetGlobal(app.Ctx(), settings); err != nil {
		return err
	}

	saved := app.PreviewUC.Resolver().Global()
	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("Saved: size %dpx", saved.Size)))
	return nil
}
