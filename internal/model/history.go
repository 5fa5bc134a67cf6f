package model

import "time"

// PredictionRecord is a stored rent prediction
type PredictionRecord struct {
	ID         int64     `db:"id" json:"id"`
	Bedrooms   float64   `db:"bedrooms" json:"bedrooms"`
	Bathrooms  float64   `db:"bathrooms" json:"bathrooms"`
	LotArea    float64   `db:"lot_area" json:"lotarea"`
	Grade      float64   `db:"grade" json:"grade"`
	Condition  float64   `db:"condition" json:"condition"`
	Waterfront float64   `db:"waterfront" json:"waterfront"`
	Views      float64   `db:"views" json:"views"`
	Prediction float64   `db:"prediction" json:"prediction"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// SuggestionRecord is a stored suggestion request.
// Source is one of: "live", "heuristic", "fallback".
type SuggestionRecord struct {
	ID        int64     `db:"id" json:"id"`
	Price     float64   `db:"price" json:"price"`
	Source    string    `db:"source" json:"source"`
	Count     int       `db:"suggestion_count" json:"count"`
	Debug     string    `db:"debug" json:"debug,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HistoryResponse represents the recent-activity response
type HistoryResponse struct {
	Predictions []PredictionRecord `json:"predictions"`
	Suggestions []SuggestionRecord `json:"suggestions"`
}
