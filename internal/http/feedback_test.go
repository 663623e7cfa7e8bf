package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupFeedbackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	controller := NewFeedbackController()
	router.POST("/api/feedback", controller.SubmitFeedback)
	return router
}

func TestFeedbackController_SubmitFeedback(t *testing.T) {
	t.Run("accepts feedback without name or email", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback", `{"feedback":"Great catalog!"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Feedback received successfully!", envelope["message"])
	})

	t.Run("accepts a full submission", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback",
			`{"name":"Ada","email":"ada@example.com","feedback":"Great catalog!"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects missing feedback", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback", `{"name":"Ada"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Feedback message is required.", envelope["message"])
	})

	t.Run("rejects whitespace-only feedback", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback", `{"feedback":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an email without @", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback",
			`{"email":"bad-email","feedback":"Great catalog!"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Invalid email format.", envelope["message"])
	})

	t.Run("rejects an unparsable body", func(t *testing.T) {
		router := setupFeedbackRouter()

		w := doRequest(router, "POST", "/api/feedback", `{"feedback":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Invalid request format.", envelope["message"])
	})
}
