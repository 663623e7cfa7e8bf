// Package books provides the CRUD database operations for book records.
//
// # Usage
//
//	repo := books.NewRepository(connector)
//	book, err := repo.GetByID(123)
package books

import (
	"errors"
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("book not found")

// ConflictError reports a store-level uniqueness violation, keyed by
// the conflicting column.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// Repository handles all book database operations. Every operation
// acquires the handle through the connector, so the first request
// establishes the connection lazily.
type Repository struct {
	connector *database.Connector
}

func NewRepository(connector *database.Connector) *Repository {
	return &Repository{connector: connector}
}

// Create validates the book, persists it and fills in the assigned
// id and timestamps.
func (r *Repository) Create(book *entities.Book) error {
	if err := validation.ValidateBook(book); err != nil {
		return err
	}

	db, err := r.connector.Connect()
	if err != nil {
		return err
	}

	if err := db.Create(book).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetAll returns every stored book in the store's natural order.
// The result is never nil, so an empty catalog serializes as [].
func (r *Repository) GetAll() ([]entities.Book, error) {
	db, err := r.connector.Connect()
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0)
	if err := db.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID retrieves a single book, or ErrNotFound.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	db, err := r.connector.Connect()
	if err != nil {
		return nil, err
	}

	var book entities.Book
	if err := db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// UpdateByID merges the patch into the stored record, re-validates the
// merged result and saves it. Fields absent from the patch keep their
// stored values; updatedAt is refreshed on success.
func (r *Repository) UpdateByID(id uint, patch *entities.BookPatch) (*entities.Book, error) {
	db, err := r.connector.Connect()
	if err != nil {
		return nil, err
	}

	var book entities.Book
	if err := db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	patch.Apply(&book)
	if err := validation.ValidateBook(&book); err != nil {
		return nil, err
	}

	if err := db.Save(&book).Error; err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

// DeleteByID removes the record permanently. Deleting an id that does
// not exist reports ErrNotFound, so repeated deletes stay harmless.
func (r *Repository) DeleteByID(id uint) error {
	db, err := r.connector.Connect()
	if err != nil {
		return err
	}

	result := db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translateError maps a unique-constraint violation onto a
// ConflictError carrying the conflicting column; anything else is
// passed through as a store failure.
func translateError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return &ConflictError{Field: conflictField(sqliteErr.Error())}
	}
	return err
}

// conflictField extracts the column name from messages like
// "UNIQUE constraint failed: books.isbn".
func conflictField(message string) string {
	if idx := strings.LastIndex(message, "."); idx >= 0 && idx < len(message)-1 {
		return message[idx+1:]
	}
	return "unknown"
}
