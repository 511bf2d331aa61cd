package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0, 5))
	assert.Equal(t, 1, clampPage(-3, 5))
	assert.Equal(t, 5, clampPage(6, 5))
	assert.Equal(t, 5, clampPage(999, 5))
	assert.Equal(t, 3, clampPage(3, 5))
	// An empty result set still resolves to page 1.
	assert.Equal(t, 1, clampPage(7, 0))
}

func TestPaginateSlice(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page, current, total := PaginateSlice(items, 1, DefaultPageSize)
	assert.Equal(t, 1, current)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 12)
	assert.Equal(t, 0, page[0])

	page, current, total = PaginateSlice(items, 3, DefaultPageSize)
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)
	assert.Equal(t, 24, page[0])

	// Out-of-range requests clamp instead of erroring.
	page, current, _ = PaginateSlice(items, 0, DefaultPageSize)
	assert.Equal(t, 1, current)
	assert.Equal(t, 0, page[0])

	page, current, _ = PaginateSlice(items, 99, DefaultPageSize)
	assert.Equal(t, 3, current)
	assert.Len(t, page, 1)
}

func TestPaginateSliceEmpty(t *testing.T) {
	page, current, total := PaginateSlice([]int{}, 4, DefaultPageSize)
	assert.Equal(t, 1, current)
	assert.Equal(t, 1, total)
	assert.Empty(t, page)
}
