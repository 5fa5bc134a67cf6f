package model

// PredictRequest represents the feature payload for a rent prediction.
// All seven fields are required; pointers let binding distinguish a
// missing field from a zero value.
type PredictRequest struct {
	Bedrooms   *float64 `json:"bedrooms" binding:"required"`
	Bathrooms  *float64 `json:"bathrooms" binding:"required"`
	LotArea    *float64 `json:"lotarea" binding:"required"`
	Grade      *float64 `json:"grade" binding:"required"`
	Condition  *float64 `json:"condition" binding:"required"`
	Waterfront *float64 `json:"waterfront" binding:"required"`
	Views      *float64 `json:"views" binding:"required"`
}

// Features returns the feature vector in pipeline order.
func (r *PredictRequest) Features() []float64 {
	return []float64{
		*r.Bedrooms, *r.Bathrooms, *r.LotArea,
		*r.Grade, *r.Condition, *r.Waterfront, *r.Views,
	}
}

// PredictResponse represents a successful rent prediction
type PredictResponse struct {
	Prediction float64 `json:"prediction"`
	Message    string  `json:"message"`
}

// SuggestRequest represents a property suggestion request
type SuggestRequest struct {
	Price float64 `json:"price"`
}

// SuggestResponse represents a property suggestion response.
// Debug carries the failure cause when the remote call failed and the
// static fallback list was used instead.
type SuggestResponse struct {
	Suggestion []string `json:"suggestion"`
	Debug      string   `json:"debug,omitempty"`
}
