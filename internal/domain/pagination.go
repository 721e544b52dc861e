package domain

import (
	"fmt"
	"math"
)

// Page size and page number bounds accepted from clients. MaxPage keeps
// Offset from overflowing at the largest page size.
const (
	MinPerPage = 1
	MaxPerPage = 100
	MaxPage    = math.MaxInt / MaxPerPage
)

// PageRequest selects a 1-indexed page of PerPage items.
type PageRequest struct {
	Page    int
	PerPage int
}

// Offset is the number of items preceding the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Validate checks the page number and size bounds.
func (p PageRequest) Validate() error {
	errs := ValidationErrors{}
	if p.Page < 1 {
		errs.Add("page", "The page field must be at least 1.")
	} else if p.Page > MaxPage {
		errs.Add("page", fmt.Sprintf("The page field must not be greater than %d.", MaxPage))
	}
	if p.PerPage < MinPerPage || p.PerPage > MaxPerPage {
		errs.Add("per_page", "The per page field must be between 1 and 100.")
	}
	return errs.Err()
}

// Page is one page of a larger result set.
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	PerPage int
}

// TotalPages is the number of pages needed for Total items, never less than one.
func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
