// Package pagination extracts the uniform list query parameters shared by
// every resource collection endpoint.
package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	DefaultSort  = "id"
	MaxLimit     = 100
)

// Params holds list parameters extracted from a request.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	Ascending bool
}

// FromContext extracts list parameters from the echo context.
// Defaults: page=1, limit=10, sortBy="id", desc=false (ascending order).
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = DefaultPage
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		sortBy = DefaultSort
	}

	desc, _ := strconv.ParseBool(c.QueryParam("desc"))

	return Params{Page: page, Limit: limit, SortBy: sortBy, Ascending: !desc}
}

// Offset maps the 1-based page to the store offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
