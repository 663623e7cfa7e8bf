package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

type BooksController struct {
	repository *books.Repository
}

func NewBooksController(repository *books.Repository) *BooksController {
	return &BooksController{
		repository: repository,
	}
}

// createBookRequest carries only the client-settable fields; id and
// timestamps are assigned by the store.
type createBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"publishedYear"`
	Genre         string `json:"genre"`
	Description   string `json:"description"`
}

// ListBooks handles GET /api/books.
func (controller *BooksController) ListBooks(c *gin.Context) {
	all, err := controller.repository.GetAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	respondData(c, http.StatusOK, all)
}

// CreateBook handles POST /api/books.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format.")
		return
	}

	book := entities.Book{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Description:   req.Description,
	}

	if err := controller.repository.Create(&book); err != nil {
		controller.respondWriteError(c, err, "create book")
		return
	}
	respondData(c, http.StatusCreated, book)
}

// GetBook handles GET /api/books/:id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, err := controller.repository.GetByID(id)
	if errors.Is(err, books.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	respondData(c, http.StatusOK, book)
}

// UpdateBook handles PUT /api/books/:id. The body is a partial update:
// omitted fields keep their stored values.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch entities.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format.")
		return
	}

	book, err := controller.repository.UpdateByID(id, &patch)
	if errors.Is(err, books.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		controller.respondWriteError(c, err, "update book")
		return
	}
	respondData(c, http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id. The delete is permanent;
// a second delete of the same id reports 404.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := controller.repository.DeleteByID(id)
	if errors.Is(err, books.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondMessage(c, http.StatusOK, "Book deleted successfully")
}

// respondWriteError maps repository write failures onto the envelope:
// validation → 400 with the field map, uniqueness conflict → 409,
// anything else → 500.
func (controller *BooksController) respondWriteError(c *gin.Context, err error, context string) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		respondValidationError(c, verr)
		return
	}
	var conflict *books.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, Response{
			Success: false,
			Message: "Duplicate Key Error",
			Errors:  map[string]string{conflict.Field: "must be unique"},
		})
		return
	}
	respondInternalError(c, err, context)
}
