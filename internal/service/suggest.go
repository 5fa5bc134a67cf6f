package service

import (
	"context"
	"fmt"
	"log"

	"rentello/internal/utils"
)

// Suggestion sources, recorded in the request history
const (
	SourceLive      = "live"
	SourceHeuristic = "heuristic"
	SourceFallback  = "fallback"
)

const suggestSystemPrompt = "You are a strict real estate assistant that outputs only JSON arrays."

// SuggestResult is the resolved suggestion list for a budget
type SuggestResult struct {
	Suggestions []string
	Source      string
	Debug       string
}

// suggestionProvider resolves a suggestion list for a budget. It returns
// nil to pass to the next provider in the chain; a non-empty debug
// string describes a remote failure worth surfacing to the caller.
type suggestionProvider func(ctx context.Context, budget float64) (result *SuggestResult, debug string)

// SuggestService resolves property suggestions, preferring live
// generative output over the static fallback tiers.
type SuggestService struct {
	client    *GroqClient
	providers []suggestionProvider
}

// NewSuggestService creates a new suggestion service. A nil client
// disables the live provider entirely.
func NewSuggestService(client *GroqClient) *SuggestService {
	s := &SuggestService{client: client}
	s.providers = []suggestionProvider{s.fromLiveAPI, s.fromFallback}
	return s
}

// Suggest evaluates the provider chain in order and returns the first
// result. The static tier provider always succeeds, so the result is
// never empty.
func (s *SuggestService) Suggest(ctx context.Context, budget float64) *SuggestResult {
	var debug string
	for _, provide := range s.providers {
		result, d := provide(ctx, budget)
		if d != "" {
			debug = d
		}
		if result != nil {
			result.Debug = debug
			return result
		}
	}

	// Unreachable: fromFallback never passes
	return &SuggestResult{Suggestions: FallbackForBudget(budget), Source: SourceFallback, Debug: debug}
}

// fromLiveAPI asks the generative API for suggestions and normalizes its
// output. Passes when the client is disabled or nothing usable comes
// back; remote failures pass with a debug string.
func (s *SuggestService) fromLiveAPI(ctx context.Context, budget float64) (*SuggestResult, string) {
	if !s.client.IsEnabled() {
		return nil, ""
	}

	resp, err := s.client.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: suggestSystemPrompt},
			{Role: "user", Content: buildSuggestPrompt(budget)},
		},
	})
	if err != nil {
		log.Printf("Suggest error: %v", err)
		return nil, err.Error()
	}

	cleaned := utils.CleanText(resp.FirstContent())

	if parsed := utils.ParseJSONArray(cleaned); len(parsed) > 0 {
		return &SuggestResult{Suggestions: parsed, Source: SourceLive}, ""
	}
	if lines := utils.ExtractSuggestionLines(cleaned); len(lines) > 0 {
		return &SuggestResult{Suggestions: lines, Source: SourceHeuristic}, ""
	}

	return nil, ""
}

// fromFallback returns the static tier list. Always succeeds.
func (s *SuggestService) fromFallback(_ context.Context, budget float64) (*SuggestResult, string) {
	return &SuggestResult{Suggestions: FallbackForBudget(budget), Source: SourceFallback}, ""
}

func buildSuggestPrompt(budget float64) string {
	return fmt.Sprintf(
		"Monthly rent budget: ₹%s.\n"+
			"Provide 3–5 SPECIFIC property suggestions suitable for this monthly rent. "+
			"Each suggestion must include PROPERTY NAME, NEIGHBORHOOD, and CITY.\n\n"+
			"IMPORTANT: Output ONLY a JSON array of strings. Example:\n"+
			`["Lodha World Towers — Lower Parel, Mumbai", "DLF The Crest — Gurgaon"]`,
		utils.FormatAmount(budget),
	)
}
