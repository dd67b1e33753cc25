package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/cli/styles"
)

var (
	historyJSON  bool
	historyLimit int
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent downloads",
	Long:  `Show the most recent font downloads, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "maximum entries to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	entries, err := app.HistoryUC.Execute(app.Ctx(), historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	t := app.Theme
	if len(entries) == 0 {
		fmt.Println(t.Subtle.Render("No downloads yet."))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s %s\n",
			t.CardTitle.Render(fmt.Sprintf("%-20s", e.Name)),
			t.Subtle.Render(styles.IconClock+" "+styles.RelativeTime(e.DownloadedAt)),
			t.CardDesc.Render(e.Destination),
		)
	}
	return nil
}
