package entities

import (
	"time"
)

// Book is the sole persisted entity: a single record in the catalog.
// The id and both timestamps are assigned by the store; everything else
// comes from the client and is validated before any write.
type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:100" json:"title"`
	Author        string    `gorm:"size:100" json:"author"`
	ISBN          string    `gorm:"index;size:20" json:"isbn,omitempty"`
	PublishedYear int       `json:"publishedYear,omitempty"`
	Genre         string    `gorm:"size:50" json:"genre,omitempty"`
	Description   string    `gorm:"size:500" json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookPatch is a partial update: every field optional, nil meaning
// "leave the stored value alone". Unknown fields in a request body are
// discarded during binding rather than passed through to the store.
type BookPatch struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	PublishedYear *int    `json:"publishedYear"`
	Genre         *string `json:"genre"`
	Description   *string `json:"description"`
}

// Apply merges the patch into book, overwriting only the fields that
// were present in the request.
func (p *BookPatch) Apply(book *Book) {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.ISBN != nil {
		book.ISBN = *p.ISBN
	}
	if p.PublishedYear != nil {
		book.PublishedYear = *p.PublishedYear
	}
	if p.Genre != nil {
		book.Genre = *p.Genre
	}
	if p.Description != nil {
		book.Description = *p.Description
	}
}
