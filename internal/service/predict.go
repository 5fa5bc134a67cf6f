package service

import (
	"fmt"
	"math"

	"rentello/internal/model"
	"rentello/internal/pipeline"
	"rentello/internal/utils"
)

// PredictService evaluates rent predictions over the loaded pipeline
type PredictService struct {
	pipe *pipeline.Pipeline
}

// NewPredictService creates a new prediction service. A nil pipeline is
// allowed; predictions then fail per-request instead of at startup.
func NewPredictService(pipe *pipeline.Pipeline) *PredictService {
	return &PredictService{pipe: pipe}
}

// IsAvailable returns whether the model artifact was loaded
func (s *PredictService) IsAvailable() bool {
	return s.pipe != nil
}

// Predict runs the pipeline on the request features. The pipeline
// outputs log-rent, so the response carries its exponential.
func (s *PredictService) Predict(req *model.PredictRequest) (*model.PredictResponse, error) {
	if s.pipe == nil {
		return nil, fmt.Errorf("Model not loaded on server")
	}

	rentLog, err := s.pipe.Predict(req.Features())
	if err != nil {
		return nil, err
	}

	rent := math.Exp(rentLog)
	if math.IsInf(rent, 0) || math.IsNaN(rent) {
		return nil, fmt.Errorf("prediction out of range for the given features")
	}
	return &model.PredictResponse{
		Prediction: rent,
		Message:    fmt.Sprintf("Predicted Rent: ₹%s", utils.FormatAmount(rent)),
	}, nil
}
