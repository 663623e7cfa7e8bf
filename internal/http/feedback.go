package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FeedbackController handles the stateless feedback form. Submissions
// are validated, logged and acknowledged; nothing is persisted.
type FeedbackController struct{}

func NewFeedbackController() *FeedbackController {
	return &FeedbackController{}
}

type feedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
}

// SubmitFeedback handles POST /api/feedback.
func (controller *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format.")
		return
	}

	if strings.TrimSpace(req.Feedback) == "" {
		respondError(c, http.StatusBadRequest, "Feedback message is required.")
		return
	}
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		respondError(c, http.StatusBadRequest, "Invalid email format.")
		return
	}

	log.Printf("Feedback received: name=%s email=%s feedback=%s",
		orPlaceholder(req.Name), orPlaceholder(req.Email), req.Feedback)

	respondMessage(c, http.StatusCreated, "Feedback received successfully!")
}

func orPlaceholder(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
