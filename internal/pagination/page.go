// Package pagination slices lists into fixed-size pages.
package pagination

// DefaultPageSize is the number of items shown on a dictionary or word-list page.
const DefaultPageSize = 30

// Page is one clamped slice of a list.
type Page[T any] struct {
	Items      []T
	Index      int // 0-based, always within [0, TotalPages)
	TotalPages int // at least 1, even for an empty list
	Offset     int // position of Items[0] in the full list
}

// Number returns the 1-based page number.
func (p Page[T]) Number() int {
	return p.Index + 1
}

func (p Page[T]) HasPrev() bool {
	return p.Index > 0
}

func (p Page[T]) HasNext() bool {
	return p.Index < p.TotalPages-1
}

// Empty reports whether the page has no items.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// Paginate returns page index of items. A negative index clamps to the
// first page and an index past the end clamps to the last one.
func Paginate[T any](items []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := (len(items) + size - 1) / size
	if total == 0 {
		total = 1
	}

	if index < 0 {
		index = 0
	}
	if index >= total {
		index = total - 1
	}

	start := index * size
	end := min(start+size, len(items))
	if start > end {
		start = end
	}

	return Page[T]{
		Items:      items[start:end],
		Index:      index,
		TotalPages: total,
		Offset:     start,
	}
}
