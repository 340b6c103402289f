package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelfinder/internal/model"
	"hotelfinder/internal/service"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	controller *service.SessionController
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *service.SessionController) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// Start handles POST /api/v1/sessions
func (h *SessionHandler) Start(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sess, err := h.controller.Start(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// Feedback handles POST /api/v1/sessions/:id/feedback
func (h *SessionHandler) Feedback(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.controller.Feedback(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.controller.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// writeError maps the error taxonomy to HTTP status codes. Anything
// uncategorized becomes a generic failure so internals never leak.
func writeError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var scrapeErr *model.ScrapeError
	var collabErr *model.CollaboratorError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrSessionTerminated):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already terminated"})
	case errors.As(err, &scrapeErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed: " + scrapeErr.Error()})
	case errors.As(err, &collabErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant failed: " + collabErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}
