package book

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")

	// ErrValidation is wrapped by every input rule violation.
	ErrValidation = errors.New("invalid book")

	// ErrMissingName is returned when the book name is empty or absent.
	ErrMissingName = fmt.Errorf("%w: missing name", ErrValidation)

	// ErrReadPageExceedsPageCount is returned when readPage > pageCount.
	ErrReadPageExceedsPageCount = fmt.Errorf("%w: readPage exceeds pageCount", ErrValidation)
)

// Book represents a book entity.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input carries the mutable fields of a book for create and update.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// Summary is the list projection of a book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Query defines the filters for listing books.
// Only one filter applies: Name, else Reading, else Finished.
type Query struct {
	Name     string
	Reading  Flag
	Finished Flag
}

// apply overwrites the mutable fields of b with in and recomputes Finished.
func (b *Book) apply(in Input) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
}

func (b Book) summary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}
