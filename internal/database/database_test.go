package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/config"
)

// setupTestConnector creates a connector backed by a fresh test database
func setupTestConnector(t *testing.T) (*Connector, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	connector := NewConnector(config.Database{Path: dbPath})

	cleanup := func() {
		connector.Close()
		os.Remove(dbPath)
	}
	return connector, cleanup
}

func TestConnector(t *testing.T) {
	t.Run("Connect establishes a handle and migrates", func(t *testing.T) {
		connector, cleanup := setupTestConnector(t)
		defer cleanup()

		db, err := connector.Connect()
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.True(t, db.Migrator().HasTable("books"))
	})

	t.Run("Connect returns the cached handle on later calls", func(t *testing.T) {
		connector, cleanup := setupTestConnector(t)
		defer cleanup()

		first, err := connector.Connect()
		require.NoError(t, err)

		second, err := connector.Connect()
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("Connect fails without a configured path", func(t *testing.T) {
		connector := NewConnector(config.Database{})
		_, err := connector.Connect()
		assert.Error(t, err)
	})

	t.Run("failed connection leaves no cached state", func(t *testing.T) {
		connector := NewConnector(config.Database{Path: "/nonexistent-dir/sub/books.db"})

		_, err := connector.Connect()
		require.Error(t, err)

		// A second attempt retries instead of returning a dead handle
		_, err = connector.Connect()
		assert.Error(t, err)
		assert.Nil(t, connector.db)
	})

	t.Run("Close is safe without a connection", func(t *testing.T) {
		connector := NewConnector(config.Database{Path: "./never-opened.db"})
		assert.NoError(t, connector.Close())
	})

	t.Run("Connect reopens after Close", func(t *testing.T) {
		connector, cleanup := setupTestConnector(t)
		defer cleanup()

		_, err := connector.Connect()
		require.NoError(t, err)
		require.NoError(t, connector.Close())

		db, err := connector.Connect()
		require.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestConnectorDSN(t *testing.T) {
	t.Run("uses the path as-is by default", func(t *testing.T) {
		connector := NewConnector(config.Database{Path: "./data/books.db"})
		assert.Equal(t, "./data/books.db", filepath.ToSlash(connector.dsn()))
	})

	t.Run("name override replaces the file name", func(t *testing.T) {
		connector := NewConnector(config.Database{Path: "./data/books.db", Name: "catalog"})
		assert.Equal(t, "data/catalog.db", filepath.ToSlash(connector.dsn()))
	})

	t.Run("DSN-style paths are passed through untouched", func(t *testing.T) {
		connector := NewConnector(config.Database{
			Path: "file:books.db?cache=shared",
			Name: "catalog",
		})
		assert.Equal(t, "file:books.db?cache=shared", connector.dsn())
	})
}
