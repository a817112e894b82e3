package book

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when another book already holds the ISBN.
	ErrDuplicateISBN = errors.New("isbn already registered")
	// ErrMissingID is returned when update or delete is called without a book id.
	ErrMissingID = errors.New("book id must not be empty")
)

// Book represents a book entity.
type Book struct {
	ID        string
	Title     string
	Author    string
	ISBN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter selects books by example. Every non-empty field must be contained,
// case-insensitively, in the matching book's field.
type Filter struct {
	Title  string
	Author string
	ISBN   string
}

// PageRequest selects one page of a filtered result. Index is 0-based.
type PageRequest struct {
	Index int
	Size  int
}

// Offset returns the number of rows skipped before the page starts. It
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Index <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Index > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Index * p.Size
}

// Page is a slice of a filtered result together with its total match count.
type Page struct {
	Items     []Book
	Total     int
	PageIndex int
	PageSize  int
}

// TotalPages is the number of pages of PageSize needed to hold Total.
func (p Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
