package service

import (
	"reflect"
	"testing"
)

func TestFallbackForBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
		want   []string
	}{
		{"Just below tier2 ceiling", 999_999, fallbackTier2},
		{"Exactly tier2 ceiling", 1_000_000, fallbackTier1},
		{"Just below tier1 ceiling", 9_999_999, fallbackTier1},
		{"Exactly tier1 ceiling", 10_000_000, fallbackGlobal},
		{"Zero budget", 0, fallbackTier2},
		{"Negative budget", -500, fallbackTier2},
		{"Well above", 50_000_000, fallbackGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackForBudget(tt.budget)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FallbackForBudget(%v) = %v, want %v", tt.budget, got, tt.want)
			}
			if len(got) != 3 {
				t.Errorf("fallback tier should have 3 entries, got %d", len(got))
			}
		})
	}
}
