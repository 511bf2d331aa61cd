package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginatedResponse defines the structure for any paginated API response.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	TotalRows   int64       `json:"totalRows"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	PageSize    int         `json:"pageSize"`
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// pageParams reads "page" and "pageSize" query parameters, applying the
// fixed default page size of 12 and the upper bound.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// clampPage keeps a requested page inside [1, totalPages]. An out-of-range
// request is not an error; it resolves to the nearest valid page.
func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PaginateSlice slices one page out of an already-filtered in-memory list.
// Filtering over free-text requirement fields happens in memory, so the
// gorm Offset/Limit scope cannot be used here.
func PaginateSlice[T any](items []T, page, pageSize int) (pageItems []T, currentPage, totalPages int) {
	totalPages = 1
	if len(items) > 0 {
		totalPages = int(math.Ceil(float64(len(items)) / float64(pageSize)))
	}
	currentPage = clampPage(page, totalPages)

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], currentPage, totalPages
}

// NewPaginatedResponse constructs the standard paginated response object for
// an in-memory page.
func NewPaginatedResponse(data interface{}, totalRows int64, currentPage, totalPages, pageSize int) PaginatedResponse {
	return PaginatedResponse{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
	}
}
