package service

// Budget thresholds for fallback tier selection
const (
	tier2Ceiling = 1_000_000
	tier1Ceiling = 10_000_000
)

// Static fallback suggestions, bucketed by budget. Initialized once,
// never mutated.
var (
	fallbackTier1 = []string{
		"Lodha World Towers — Lower Parel, Mumbai",
		"Antilia-style luxury residence — Alt Area, Mumbai",
		"DLF The Crest — Golf Course Road, Gurgaon",
	}
	fallbackTier2 = []string{
		"Prestige Leela Residences — Residency Road, Bangalore",
		"Hiranandani Towers — Powai, Mumbai",
		"DLF Phase 4 — Gurgaon",
	}
	fallbackGlobal = []string{
		"One Hyde Park — Knightsbridge, London",
		"432 Park Avenue — Manhattan, New York",
		"Burj Khalifa Residences — Downtown Dubai",
	}
)

// FallbackForBudget returns the canned suggestion list for a budget.
// Boundaries are strict less-than; negative budgets land in tier2.
func FallbackForBudget(budget float64) []string {
	switch {
	case budget < tier2Ceiling:
		return fallbackTier2
	case budget < tier1Ceiling:
		return fallbackTier1
	default:
		return fallbackGlobal
	}
}
