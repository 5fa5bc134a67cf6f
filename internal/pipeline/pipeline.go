// Package pipeline loads and evaluates the exported rent regression
// pipeline. The artifact is a JSON export of the trained pipeline:
// a standard scaler followed by a linear model predicting log-rent.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is the regression pipeline loaded from an artifact file.
// It is read-only after Load and safe for concurrent use.
type Pipeline struct {
	FeatureNames []string   `json:"feature_names"`
	Scaler       Scaler     `json:"scaler"`
	Regression   Regression `json:"regression"`
}

// Scaler holds standardization parameters, one per feature
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Regression holds the linear model parameters
type Regression struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Load reads and validates a pipeline artifact from path
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var p Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	n := len(p.FeatureNames)
	if n == 0 {
		return nil, fmt.Errorf("model artifact has no features")
	}
	if len(p.Scaler.Mean) != n || len(p.Scaler.Scale) != n || len(p.Regression.Coefficients) != n {
		return nil, fmt.Errorf("model artifact is inconsistent: %d features, %d/%d scaler params, %d coefficients",
			n, len(p.Scaler.Mean), len(p.Scaler.Scale), len(p.Regression.Coefficients))
	}
	for i, s := range p.Scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("model artifact has zero scale for feature %q", p.FeatureNames[i])
		}
	}

	return &p, nil
}

// NumFeatures returns the expected feature vector length
func (p *Pipeline) NumFeatures() int {
	return len(p.FeatureNames)
}

// Predict evaluates the pipeline on a raw feature vector and returns the
// model's raw output (log-rent for the shipped artifact).
func (p *Pipeline) Predict(features []float64) (float64, error) {
	if len(features) != len(p.FeatureNames) {
		return 0, fmt.Errorf("expected %d features, got %d", len(p.FeatureNames), len(features))
	}

	out := p.Regression.Intercept
	for i, x := range features {
		scaled := (x - p.Scaler.Mean[i]) / p.Scaler.Scale[i]
		out += scaled * p.Regression.Coefficients[i]
	}
	return out, nil
}
