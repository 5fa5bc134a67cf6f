package handler

import (
	"context"
	"net/http"

	"rentello/internal/model"
	"rentello/internal/repository"
	"rentello/internal/service"

	"github.com/gin-gonic/gin"
)

// PredictHandler handles rent prediction HTTP requests
type PredictHandler struct {
	predictService *service.PredictService
	repo           *repository.PostgresRepository
}

// NewPredictHandler creates a new prediction handler. The repository is
// optional; a nil repo disables history logging.
func NewPredictHandler(predictService *service.PredictService, repo *repository.PostgresRepository) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		repo:           repo,
	}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req model.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.predictService.Predict(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Log history (non-blocking)
	if h.repo != nil {
		go func() {
			_ = h.repo.LogPrediction(context.Background(), &req, resp.Prediction)
		}()
	}

	c.JSON(http.StatusOK, resp)
}
