package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cssCopy bool

var cssCmd = &cobra.Command{
	Use:   "css <font-id>",
	Short: "Print or copy a font's @font-face snippet",
	Long: `Print the @font-face CSS declaration for a font.

With --copy the snippet goes to the system clipboard instead of stdout.

Examples:
  font css battambang
  font css inter --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)

	cssCmd.Flags().BoolVarP(&cssCopy, "copy", "c", false, "copy to clipboard instead of printing")
}

func runCSS(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	rec, ok := app.BrowseUC.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown font id %q (see 'font list')", args[0])
	}

	if cssCopy {
		if _, err := app.CSSUC.Copy(app.Ctx(), rec); err != nil {
			return err
		}
		fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("CSS for %s copied to clipboard", rec.Name)))
		return nil
	}

	fmt.Println(app.CSSUC.Snippet(rec))
	return nil
}
