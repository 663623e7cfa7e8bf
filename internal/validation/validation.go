// Package validation holds the book constraints separately from the
// storage layer, so a payload can be checked without a live database.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Field length limits for a book record.
const (
	MaxTitleLength       = 100
	MaxAuthorLength      = 100
	MaxISBNLength        = 20
	MaxGenreLength       = 50
	MaxDescriptionLength = 500
)

// Error carries one message per failing field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return "validation failed"
}

// Validator accumulates field-level validation errors.
type Validator struct {
	Fields map[string]string
}

func New() *Validator {
	return &Validator{Fields: make(map[string]string)}
}

// Valid reports whether no field has failed so far.
func (v *Validator) Valid() bool {
	return len(v.Fields) == 0
}

// AddError records the first failure for a field; later failures for
// the same field are ignored.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = message
	}
}

// Check records an error for field when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Err returns a *Error if any field failed, nil otherwise.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &Error{Fields: v.Fields}
}

// ValidateBook trims all text fields in place and checks the required
// and max-length constraints. Both create and update route through this
// single pass, so a stored record can never violate the constraints.
func ValidateBook(book *entities.Book) error {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.ISBN = strings.TrimSpace(book.ISBN)
	book.Genre = strings.TrimSpace(book.Genre)
	book.Description = strings.TrimSpace(book.Description)

	v := New()
	v.Check(book.Title != "", "title", "Please provide a title for the book.")
	v.Check(utf8.RuneCountInString(book.Title) <= MaxTitleLength, "title",
		fmt.Sprintf("Title cannot be more than %d characters", MaxTitleLength))
	v.Check(book.Author != "", "author", "Please provide the author's name.")
	v.Check(utf8.RuneCountInString(book.Author) <= MaxAuthorLength, "author",
		fmt.Sprintf("Author name cannot be more than %d characters", MaxAuthorLength))
	v.Check(utf8.RuneCountInString(book.ISBN) <= MaxISBNLength, "isbn",
		fmt.Sprintf("ISBN cannot be more than %d characters", MaxISBNLength))
	v.Check(utf8.RuneCountInString(book.Genre) <= MaxGenreLength, "genre",
		fmt.Sprintf("Genre cannot be more than %d characters", MaxGenreLength))
	v.Check(utf8.RuneCountInString(book.Description) <= MaxDescriptionLength, "description",
		fmt.Sprintf("Description cannot be more than %d characters", MaxDescriptionLength))

	return v.Err()
}
