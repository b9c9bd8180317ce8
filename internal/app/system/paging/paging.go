// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows returned by paged lists.
const PageSize = 50

// MaxPageSize caps a caller-supplied ?limit=.
const MaxPageSize = 200

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit reads ?limit=, falling back to def when absent or invalid and
// clamping to MaxPageSize.
func ParseLimit(r *http.Request, def int) int {
	s := query.Get(r, "limit")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int `json:"start"`     // 1-based start index (0 if no results)
	End       int `json:"end"`       // 1-based end index (0 if no results)
	PrevStart int `json:"prevStart"` // start value for previous page link
	NextStart int `json:"nextStart"` // start value for next page link
}

// ComputeRange calculates display range values given the current start index
// and number of items shown.
func ComputeRange(start, shown int) Range {
	return computeRangeWithSize(start, shown, PageSize)
}

func computeRangeWithSize(start, shown, pageSize int) Range {
	if shown == 0 {
		return Range{Start: 0, End: 0, PrevStart: 1, NextStart: 1}
	}

	prevStart := start - pageSize
	if prevStart < 1 {
		prevStart = 1
	}

	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prevStart,
		NextStart: start + shown,
	}
}

// Info describes one page of a list.
type Info struct {
	Range
	Total   int  `json:"total"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

// Page slices rows to the window beginning at the 1-based start and
// holding at most size rows. A start past the end yields an empty page.
func Page[T any](rows []T, start, size int) ([]T, Info) {
	if start < 1 {
		start = 1
	}
	if size < 1 {
		size = PageSize
	}

	total := len(rows)
	lo := start - 1
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}

	page := rows[lo:hi]
	info := Info{
		Range:   computeRangeWithSize(start, len(page), size),
		Total:   total,
		HasPrev: start > 1,
		HasNext: hi < total,
	}
	return page, info
}
