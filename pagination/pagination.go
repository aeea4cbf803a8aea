// Package pagination windows ordered listings into pages.
//
// Every listing fetches one row more than the page size so that HasMore can be
// answered without a separate COUNT query.
package pagination

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Page is one window of an ordered listing.
type Page[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"hasMore"`
}

// Normalize clamps page to at least 1 and size into [1, MaxSize].
// A size below 1 falls back to DefaultSize.
func Normalize(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return page, size
}

// Window returns the LIMIT and OFFSET for a normalized page.
// The limit is size+1.
func Window(page, size int) (limit, offset int) {
	page, size = Normalize(page, size)
	return size + 1, (page - 1) * size
}

// Trim cuts rows fetched with Window down to size and reports whether more remain.
func Trim[T any](rows []T, size int) Page[T] {
	_, size = Normalize(1, size)
	if rows == nil {
		rows = make([]T, 0)
	}
	if len(rows) > size {
		return Page[T]{Items: rows[:size], HasMore: true}
	}
	return Page[T]{Items: rows, HasMore: false}
}

// Slice windows an already ordered in-memory slice.
func Slice[T any](all []T, page, size int) Page[T] {
	limit, offset := Window(page, size)
	if offset >= len(all) {
		return Page[T]{Items: make([]T, 0), HasMore: false}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	window := make([]T, end-offset)
	copy(window, all[offset:end])
	return Trim(window, size)
}
