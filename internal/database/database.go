package database

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Connector owns the single cached database handle for the process.
// The first Connect call opens the connection and runs migrations;
// later calls return the cached handle. A failed attempt leaves no
// cached state behind, so the next call retries from scratch.
type Connector struct {
	mu  sync.Mutex
	db  *gorm.DB
	cfg config.Database
}

func NewConnector(cfg config.Database) *Connector {
	return &Connector{cfg: cfg}
}

// Connect returns the live database handle, establishing it on first use.
func (c *Connector) Connect() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	if c.cfg.Path == "" {
		return nil, fmt.Errorf("database path is not configured")
	}

	dsn := c.dsn()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database connection established at %s", dsn)
	c.db = db
	return c.db, nil
}

// Close releases the cached handle if one was ever established.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	c.db = nil
	return sqlDB.Close()
}

// dsn resolves the connection string. A configured database name
// replaces the file name of the path, keeping its directory. DSN-style
// paths (file: with query options) are passed through untouched.
func (c *Connector) dsn() string {
	if c.cfg.Name == "" || strings.HasPrefix(c.cfg.Path, "file:") {
		return c.cfg.Path
	}
	return filepath.Join(filepath.Dir(c.cfg.Path), c.cfg.Name+".db")
}
