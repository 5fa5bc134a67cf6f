package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentello/internal/config"
	"rentello/internal/service"

	"github.com/gin-gonic/gin"
)

func suggestRouter(client *service.GroqClient) *gin.Engine {
	h := NewSuggestHandler(service.NewSuggestService(client), nil)
	router := gin.New()
	router.POST("/suggest", h.Suggest)
	return router
}

func decodeSuggest(t *testing.T, w *httptest.ResponseRecorder) (suggestions []string, debug string) {
	t.Helper()
	var resp struct {
		Suggestion []string `json:"suggestion"`
		Debug      string   `json:"debug"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp.Suggestion, resp.Debug
}

func TestSuggestEndpoint_NoCredential(t *testing.T) {
	router := suggestRouter(service.NewGroqClient(&config.GroqConfig{Enabled: false}))

	w := doJSON(t, router, "POST", "/suggest", `{"price": 5000000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	suggestions, debug := decodeSuggest(t, w)
	want := []string{
		"Lodha World Towers — Lower Parel, Mumbai",
		"Antilia-style luxury residence — Alt Area, Mumbai",
		"DLF The Crest — Golf Course Road, Gurgaon",
	}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(want))
	}
	for i := range want {
		if suggestions[i] != want[i] {
			t.Errorf("suggestion[%d] = %q, want %q", i, suggestions[i], want[i])
		}
	}
	if debug != "" {
		t.Errorf("debug = %q, want empty", debug)
	}
}

func TestSuggestEndpoint_DefaultPrice(t *testing.T) {
	router := suggestRouter(service.NewGroqClient(&config.GroqConfig{Enabled: false}))

	// No price field: defaults to 0, which selects the budget tier
	w := doJSON(t, router, "POST", "/suggest", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	suggestions, _ := decodeSuggest(t, w)
	if len(suggestions) == 0 {
		t.Fatal("expected a non-empty suggestion list")
	}
	if suggestions[0] != "Prestige Leela Residences — Residency Road, Bangalore" {
		t.Errorf("suggestion[0] = %q, want budget-tier entry", suggestions[0])
	}
}

func TestSuggestEndpoint_LiveSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `["Alpha Heights — Powai, Mumbai"]`}},
			},
		})
	}))
	defer srv.Close()

	router := suggestRouter(service.NewGroqClient(&config.GroqConfig{
		APIKey:  "test-key",
		APIURL:  srv.URL,
		Timeout: 5,
		Enabled: true,
	}))

	w := doJSON(t, router, "POST", "/suggest", `{"price": 2000000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	suggestions, debug := decodeSuggest(t, w)
	if len(suggestions) != 1 || suggestions[0] != "Alpha Heights — Powai, Mumbai" {
		t.Errorf("suggestions = %v, want the live list", suggestions)
	}
	if debug != "" {
		t.Errorf("debug = %q, want empty", debug)
	}
}

func TestSuggestEndpoint_TimeoutFallsBackWithDebug(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	defer close(done)

	client := service.NewGroqClient(&config.GroqConfig{
		APIKey:  "test-key",
		APIURL:  srv.URL,
		Timeout: 1,
		Enabled: true,
	})
	router := suggestRouter(client)

	w := doJSON(t, router, "POST", "/suggest", `{"price": 500000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	suggestions, debug := decodeSuggest(t, w)
	if len(suggestions) != 3 {
		t.Errorf("got %d suggestions, want the 3-entry fallback tier", len(suggestions))
	}
	if debug == "" {
		t.Error("expected a non-empty debug string after remote failure")
	}
}
