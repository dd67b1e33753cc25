package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/font/internal/domain/entity"
)

func makeRecords(n int) []entity.FontRecord {
	records := make([]entity.FontRecord, n)
	for i := range records {
		records[i] = entity.FontRecord{
			ID:         fmt.Sprintf("font-%03d", i),
			Name:       fmt.Sprintf("Font %03d", i),
			Category:   entity.CategoryEnglish,
			FontFamily: fmt.Sprintf("Font %03d", i),
			AssetURL:   "x",
		}
	}
	return records
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items    int
		pageSize int
		expected int
	}{
		{0, 9, 0},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{25, 9, 3},
		{18, 9, 2},
		{5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items size %d", tt.items, tt.pageSize), func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.items, tt.pageSize))
		})
	}
}

func TestPaginate_PagesCoverAllItems(t *testing.T) {
	for _, n := range []int{1, 8, 9, 10, 25, 100} {
		for _, size := range []int{1, 4, 9} {
			records := makeRecords(n)
			total := TotalPages(n, size)

			seen := 0
			for page := 1; page <= total; page++ {
				p := Paginate(records, size, page)
				assert.Equal(t, total, p.TotalPages)
				seen += len(p.Items)
			}
			assert.Equal(t, n, seen, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_SliceBounds(t *testing.T) {
	records := makeRecords(10)

	p := Paginate(records, 9, 1)
	require.Len(t, p.Items, 9)
	assert.Equal(t, "font-000", p.Items[0].ID)
	assert.Equal(t, "font-008", p.Items[8].ID)

	p = Paginate(records, 9, 2)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "font-009", p.Items[0].ID)
}

func TestPaginate_EmptyList(t *testing.T) {
	p := Paginate(nil, 9, 1)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestPaginate_OutOfRangePage(t *testing.T) {
	records := makeRecords(10)
	p := Paginate(records, 9, 5)
	assert.Empty(t, p.Items)
	assert.Equal(t, 2, p.TotalPages)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(3, 0))
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{"middle of long run", 7, 20, []int{1, Ellipsis, 5, 6, 7, 8, 9, Ellipsis, 20}},
		{"near start", 2, 20, []int{1, 2, 3, 4, Ellipsis, 20}},
		{"near end", 19, 20, []int{1, Ellipsis, 17, 18, 19, 20}},
		{"small total is contiguous", 2, 4, []int{1, 2, 3, 4}},
		{"single page", 1, 1, []int{1}},
		{"two pages", 1, 2, []int{1, 2}},
		{"no pages", 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageNumbers(tt.current, tt.total))
		})
	}
}
