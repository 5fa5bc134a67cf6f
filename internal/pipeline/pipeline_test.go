package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "rent_pipe.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.NumFeatures() != 7 {
		t.Errorf("NumFeatures() = %d, want 7", p.NumFeatures())
	}
	if p.FeatureNames[0] != "bedrooms" || p.FeatureNames[6] != "views" {
		t.Errorf("unexpected feature order: %v", p.FeatureNames)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.json")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InconsistentArtifact(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "No features",
			body: `{"feature_names": [], "scaler": {"mean": [], "scale": []}, "regression": {"coefficients": [], "intercept": 0}}`,
		},
		{
			name: "Coefficient count mismatch",
			body: `{"feature_names": ["a", "b"], "scaler": {"mean": [0, 0], "scale": [1, 1]}, "regression": {"coefficients": [0.1], "intercept": 0}}`,
		},
		{
			name: "Zero scale",
			body: `{"feature_names": ["a"], "scaler": {"mean": [0], "scale": [0]}, "regression": {"coefficients": [0.1], "intercept": 0}}`,
		},
		{
			name: "Not JSON",
			body: `not a pipeline`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "artifact.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestPredict(t *testing.T) {
	p := &Pipeline{
		FeatureNames: []string{"a", "b"},
		Scaler: Scaler{
			Mean:  []float64{1.0, 2.0},
			Scale: []float64{2.0, 4.0},
		},
		Regression: Regression{
			Coefficients: []float64{0.5, -0.25},
			Intercept:    10.0,
		},
	}

	// (3-1)/2 * 0.5 + (6-2)/4 * -0.25 + 10 = 0.5 - 0.25 + 10
	got, err := p.Predict([]float64{3.0, 6.0})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if want := 10.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict() = %f, want %f", got, want)
	}
}

func TestPredict_WrongLength(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "rent_pipe.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Predict([]float64{1, 2, 3}); err == nil {
		t.Error("Predict() expected error for short feature vector")
	}
}
