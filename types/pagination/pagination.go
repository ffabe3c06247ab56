// Package pagination provides the offset arithmetic behind a paged card
// list: page counts, offsets, and the clamped page-number window a pager
// widget renders. Degenerate inputs clamp to sane values rather than panic.
package pagination

import "golang.org/x/exp/constraints"

// Pages returns the number of pages needed to show total items at perPage
// items per page. Zero when there is nothing to show or perPage is invalid.
func Pages[T constraints.Integer](total, perPage T) T {
	if total <= 0 || perPage < 1 {
		return 0
	}

	return (total + perPage - 1) / perPage
}

// Offset returns the index of the first item on the given 1-based page.
func Offset[T constraints.Integer](page, perPage T) T {
	if page < 1 || perPage < 1 {
		return 0
	}

	return (page - 1) * perPage
}

// ClampPage constrains a 1-based page number to the valid range. A
// collection with no pages still clamps to page 1.
func ClampPage[T constraints.Integer](page, totalPages T) T {
	return clip(1, max(1, totalPages), page)
}

// Window returns the page numbers a pager shows around the current page:
// at most width consecutive pages, centered on current, shifted inward at
// either edge. All pages are returned when they fit inside the width.
func Window[T constraints.Integer](current, totalPages, width T) []T {
	if totalPages < 1 || width < 1 {
		return nil
	}
	if width > totalPages {
		width = totalPages
	}

	first := clip(1, totalPages-width+1, current-width/2)

	pages := make([]T, 0, width)
	for p := first; p < first+width; p++ {
		pages = append(pages, p)
	}

	return pages
}

func clip[T constraints.Integer](lo, hi, v T) T {
	return min(hi, max(lo, v))
}
