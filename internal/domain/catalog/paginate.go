package catalog

import "github.com/Onimuxha/font/internal/domain/entity"

// Page is one window into a filtered record list.
type Page struct {
	Items      []entity.FontRecord
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Ellipsis marks a gap in a page number sequence.
const Ellipsis = -1

// pageWindowRadius is how many page numbers are shown on each side of
// the current page.
const pageWindowRadius = 2

// TotalPages returns ceil(totalItems / pageSize), 0 for an empty list.
// Callers must treat 0 as "no pagination".
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// ClampPage constrains a page number to [1, totalPages]. With zero
// total pages it returns 1 so callers always hold a usable number.
func ClampPage(number, totalPages int) int {
	if number < 1 || totalPages < 1 {
		return 1
	}
	if number > totalPages {
		return totalPages
	}
	return number
}

// Paginate slices out the requested page. An out-of-range page number
// yields an empty item slice; callers are responsible for clamping and
// for resetting to page 1 whenever the upstream filtered set changes.
func Paginate(items []entity.FontRecord, pageSize, pageNumber int) Page {
	p := Page{
		Number:     pageNumber,
		Size:       pageSize,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}
	if pageSize <= 0 || pageNumber < 1 {
		return p
	}

	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return p
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

// PageNumbers builds the display sequence for a pagination bar: a
// window of pageWindowRadius around the current page plus the first and
// last page, with Ellipsis markers for any gap larger than one.
// For small totals the sequence is contiguous with no markers.
func PageNumbers(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	lo := current - pageWindowRadius
	if lo < 2 {
		lo = 2
	}
	hi := current + pageWindowRadius
	if hi > totalPages-1 {
		hi = totalPages - 1
	}

	nums := []int{1}
	if lo > 2 {
		nums = append(nums, Ellipsis)
	}
	for i := lo; i <= hi; i++ {
		nums = append(nums, i)
	}
	if hi < totalPages-1 {
		nums = append(nums, Ellipsis)
	}
	if totalPages > 1 {
		nums = append(nums, totalPages)
	}
	return nums
}
