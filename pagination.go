package main

// DefaultPageSize is the number of posts shown per list page.
const DefaultPageSize = 6

const maxPagesToShow = 5

// Page markers returned by PageNumbers in place of skipped ranges.
const (
	leadingEllipsis  = -1
	trailingEllipsis = -2
)

// Paginate slices posts in their stored order. TotalPages is at least 1,
// and a page past the end has no items; callers clamp with ClampPage.
func Paginate(posts []Post, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(posts) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	result := Page{Items: []Post{}, TotalPages: totalPages}
	// Checked before multiplying so a huge page cannot overflow start.
	if page < 1 || page > totalPages {
		return result
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(posts))

	result.Items = append(result.Items, posts[start:end]...)
	return result
}

func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return max(1, min(page, totalPages))
}

// PageNumbers lays out a pager: every page when there are few, otherwise
// the first and last page around current-1..current+1, with ellipsis
// markers where pages are skipped.
func PageNumbers(current, totalPages int) []int {
	var pages []int

	if totalPages <= maxPagesToShow {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages = append(pages, 1)

	start := max(2, current-1)
	end := min(totalPages-1, current+1)

	if start > 2 {
		pages = append(pages, leadingEllipsis)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages-1 {
		pages = append(pages, trailingEllipsis)
	}
	if end < totalPages {
		pages = append(pages, totalPages)
	}

	return pages
}
