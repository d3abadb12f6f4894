package queries

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxOffset is the largest row offset the list query accepts.
	MaxOffset = math.MaxInt32
)

type Page[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
	TotalPages int
}

// ValidatePageSize clamps a requested size into 1..MaxPageSize, defaulting non-positive values.
func ValidatePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func ValidatePageNumber(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// MaxPageNumber is the last page whose offset still fits MaxOffset.
func MaxPageNumber(size int) int {
	size = ValidatePageSize(size)
	return MaxOffset/size + 1
}

// pageOffset reports false when the page starts beyond MaxOffset.
func pageOffset(pageNumber, pageSize int) (int, bool) {
	if pageNumber > MaxPageNumber(pageSize) {
		return 0, false
	}
	return (pageNumber - 1) * pageSize, true
}

func totalPages(total int64, size int) int {
	if total == 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
