package usecase

import (
	"github.com/Onimuxha/font/internal/domain/catalog"
	"github.com/Onimuxha/font/internal/domain/entity"
)

// BrowseCatalogUseCase answers filtered, paginated views of the
// catalog. Pure computation, safe to run on every keystroke.
type BrowseCatalogUseCase struct {
	catalog *catalog.Catalog
}

// BrowseInput selects a catalog view.
type BrowseInput struct {
	Query    string
	Category catalog.CategoryFilter
	Page     int
	PageSize int
}

// BrowseOutput is one rendered catalog view plus the stat counters.
type BrowseOutput struct {
	Page          catalog.Page
	TotalFonts    int
	KhmerFonts    int
	EnglishFonts  int
	FilteredCount int
}

// NewBrowseCatalogUseCase creates a new BrowseCatalogUseCase.
func NewBrowseCatalogUseCase(c *catalog.Catalog) *BrowseCatalogUseCase {
	return &BrowseCatalogUseCase{catalog: c}
}

// Execute filters and paginates the catalog. The requested page number
// is clamped into range, so callers always get a usable window.
func (uc *BrowseCatalogUseCase) Execute(input BrowseInput) BrowseOutput {
	filtered := catalog.Filter(uc.catalog.All(), input.Query, input.Category)

	total := catalog.TotalPages(len(filtered), input.PageSize)
	page := catalog.ClampPage(input.Page, total)

	return BrowseOutput{
		Page:          catalog.Paginate(filtered, input.PageSize, page),
		TotalFonts:    uc.catalog.Len(),
		KhmerFonts:    uc.catalog.CountByCategory(entity.CategoryKhmer),
		EnglishFonts:  uc.catalog.CountByCategory(entity.CategoryEnglish),
		FilteredCount: len(filtered),
	}
}

// Suggest returns ranked name suggestions for the search dropdown.
func (uc *BrowseCatalogUseCase) Suggest(query string, limit int) []string {
	return catalog.Suggest(uc.catalog.All(), query, limit)
}

// Lookup finds a record by ID.
func (uc *BrowseCatalogUseCase) Lookup(id string) (entity.FontRecord, bool) {
	return uc.catalog.Get(id)
}
