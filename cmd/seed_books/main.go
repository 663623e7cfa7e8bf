// Command seed_books creates a database with sample public domain books.
// Usage: go run cmd/seed_books/main.go [-db path/to/books.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

const defaultSeedDatabasePath = "./books.db"

func main() {
	dbPath := flag.String("db", defaultSeedDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	// Delete an existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	connector := database.NewConnector(config.Database{Path: *dbPath})
	if _, err := connector.Connect(); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer connector.Close()

	repository := books.NewRepository(connector)

	for _, book := range sampleBooks() {
		if err := repository.Create(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (id=%d)", book.Title, book.Author, book.ID)
	}

	log.Println("Database seeded successfully!")
}

func sampleBooks() []entities.Book {
	return []entities.Book{
		{
			Title:         "Meditations",
			Author:        "Marcus Aurelius",
			ISBN:          "9780140449334",
			PublishedYear: 180,
			Genre:         "Philosophy",
			Description:   "Personal writings of the Roman Emperor on Stoic philosophy.",
		},
		{
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			ISBN:          "9780141439518",
			PublishedYear: 1813,
			Genre:         "Fiction",
			Description:   "A novel of manners following Elizabeth Bennet.",
		},
		{
			Title:         "Frankenstein",
			Author:        "Mary Shelley",
			ISBN:          "9780141439471",
			PublishedYear: 1818,
			Genre:         "Gothic Fiction",
			Description:   "Victor Frankenstein and the creature he brings to life.",
		},
		{
			Title:         "On the Origin of Species",
			Author:        "Charles Darwin",
			ISBN:          "9780451529060",
			PublishedYear: 1859,
			Genre:         "Science",
			Description:   "The foundational work of evolutionary biology.",
		},
		{
			Title:  "The Art of War",
			Author: "Sun Tzu",
			Genre:  "Strategy",
		},
	}
}
