package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
)

// RouterConfig carries all handler dependencies, improving testability
// and reducing parameter count.
type RouterConfig struct {
	BookRepository *books.Repository
	Connector      *database.Connector
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
// The resource routes are mounted both at the root and under /api, so
// clients written against the old /api/books paths keep working.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Connector, cfg.Version)
	router.GET("/health", healthController.Status)

	registerResourceRoutes(router.Group(""), cfg)
	registerResourceRoutes(router.Group("/api"), cfg)

	return router
}

func registerResourceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	booksController := NewBooksController(cfg.BookRepository)
	feedbackController := NewFeedbackController()

	rg.GET("/books", booksController.ListBooks)
	rg.POST("/books", booksController.CreateBook)
	rg.GET("/books/:id", booksController.GetBook)
	rg.PUT("/books/:id", booksController.UpdateBook)
	rg.DELETE("/books/:id", booksController.DeleteBook)

	rg.POST("/feedback", feedbackController.SubmitFeedback)
}
