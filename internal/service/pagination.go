package service

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the number of questions per page when none is configured.
const DefaultPageSize = 10

// ParsePage reads the page query parameter. Absent or non-numeric values mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the window [(page-1)*pageSize, page*pageSize) of items.
// Pages before the first or past the last yield an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	pages := (len(items) + pageSize - 1) / pageSize
	if page > pages {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end]
}
