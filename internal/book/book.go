package book

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrValidation is returned when a create payload is missing a field.
	ErrValidation = errors.New("all fields are required")
)

// Book represents a book entity.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Year   int    `json:"year"`
}

// Input is the create/update payload. A zero Year counts as missing.
type Input struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
	Year   int    `json:"year" validate:"required"`
}

func (in Input) toBook(id int) Book {
	return Book{
		ID:     id,
		Title:  in.Title,
		Author: in.Author,
		ISBN:   in.ISBN,
		Year:   in.Year,
	}
}

// Matches reports whether q occurs in the title or author (case-insensitive)
// or in the isbn (case-sensitive). An empty q matches every book.
func (b Book) Matches(q string) bool {
	if q == "" {
		return true
	}
	lower := strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.Title), lower) ||
		strings.Contains(strings.ToLower(b.Author), lower) ||
		strings.Contains(b.ISBN, q)
}
