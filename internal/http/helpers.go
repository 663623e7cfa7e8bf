package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/validation"
)

// Response is the uniform JSON envelope: {success, data} on success,
// {success, message, errors?} on failure.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respondData sends a success envelope with the given payload.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

// respondMessage sends a success envelope with a human-readable message.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

// respondError sends a failure envelope with the given status and message.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondValidationError sends a 400 with the field→message map.
func respondValidationError(c *gin.Context, verr *validation.Error) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation Error",
		Errors:  verr.Fields,
	})
}

// respondInternalError logs the error and sends a 500 envelope.
// The actual error is logged but never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, "Server Error")
}

// parseIDParam extracts and validates the numeric id from the URL.
// Responds with a 400 envelope and returns false on a malformed id.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid Book ID format")
		return 0, false
	}
	return uint(id), true
}
