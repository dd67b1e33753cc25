package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/cli/model"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive font browser",
	Long: `Open the interactive font browser.

Search with /, switch category tabs with tab, open a card's preview
controls with enter, download with d and copy CSS with c.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewBrowseModel(app.Ctx(), app.Theme, model.BrowseModelConfig{
		BrowseUC:        app.BrowseUC,
		PreviewUC:       app.PreviewUC,
		DownloadUC:      app.DownloadUC,
		CSSUC:           app.CSSUC,
		PageSize:        app.Config.Browse.PageSize,
		SuggestionLimit: app.Config.Browse.SuggestionLimit,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
