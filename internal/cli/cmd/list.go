package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/application/usecase"
	"github.com/Onimuxha/font/internal/domain/catalog"
)

var (
	listCategory string
	listQuery    string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog fonts",
	Long: `List the fonts in the catalog, optionally filtered.

Examples:
  font list                      # All fonts
  font list --category khmer     # Khmer fonts only
  font list --search mont        # Name or category contains "mont"
  font list --json               # Machine-readable output`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "all", "category filter (all, khmer, english)")
	listCmd.Flags().StringVarP(&listQuery, "search", "s", "", "search query")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	filter, err := catalog.ParseCategoryFilter(listCategory)
	if err != nil {
		return err
	}

	out := app.BrowseUC.Execute(usecase.BrowseInput{
		Query:    listQuery,
		Category: filter,
		Page:     1,
		PageSize: app.Catalog.Len(),
	})

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Page.Items)
	}

	t := app.Theme
	for _, rec := range out.Page.Items {
		fmt.Printf("%s  %s %s\n",
			t.CardTitle.Render(fmt.Sprintf("%-20s", rec.Name)),
			t.CategoryBadge(string(rec.Category)),
			t.CardDesc.Render(rec.FontFamily),
		)
	}
	fmt.Println(t.Subtle.Render(fmt.Sprintf("%d of %d fonts", out.FilteredCount, out.TotalFonts)))
	return nil
}
