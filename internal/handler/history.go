package handler

import (
	"net/http"
	"strconv"

	"rentello/internal/model"
	"rentello/internal/repository"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves recent request history
type HistoryHandler struct {
	repo         *repository.PostgresRepository
	defaultLimit int
	maxLimit     int
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo *repository.PostgresRepository, defaultLimit, maxLimit int) *HistoryHandler {
	return &HistoryHandler{
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Recent handles GET /api/v1/history
func (h *HistoryHandler) Recent(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History store is not configured"})
		return
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	predictions, err := h.repo.RecentPredictions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history: " + err.Error()})
		return
	}

	suggestions, err := h.repo.RecentSuggestions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.HistoryResponse{
		Predictions: predictions,
		Suggestions: suggestions,
	})
}
