package handler

import (
	"context"
	"net/http"

	"rentello/internal/model"
	"rentello/internal/repository"
	"rentello/internal/service"

	"github.com/gin-gonic/gin"
)

// SuggestHandler handles property suggestion HTTP requests
type SuggestHandler struct {
	suggestService *service.SuggestService
	repo           *repository.PostgresRepository
}

// NewSuggestHandler creates a new suggestion handler. The repository is
// optional; a nil repo disables history logging.
func NewSuggestHandler(suggestService *service.SuggestService, repo *repository.PostgresRepository) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		repo:           repo,
	}
}

// Suggest handles POST /suggest. The price field defaults to 0 when the
// body is missing or malformed; the service guarantees a non-empty list.
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req model.SuggestRequest
	_ = c.ShouldBindJSON(&req)

	result := h.suggestService.Suggest(c.Request.Context(), req.Price)

	// Log history (non-blocking)
	if h.repo != nil {
		go func() {
			_ = h.repo.LogSuggestion(context.Background(), req.Price, result.Source, len(result.Suggestions), result.Debug)
		}()
	}

	c.JSON(http.StatusOK, model.SuggestResponse{
		Suggestion: result.Suggestions,
		Debug:      result.Debug,
	})
}
