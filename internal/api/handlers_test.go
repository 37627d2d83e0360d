// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/recommend"
	"github.com/toolscout/toolscout/internal/recommend/scoring"
)

func newTestHandler(t *testing.T, tools []recommend.ToolRecord) *Handler {
	t.Helper()
	kn := recommend.DefaultKnowledge()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), kn, scoring.DefaultScorers(kn), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	store := catalog.NewStore(zerolog.Nop())
	if len(tools) > 0 {
		store.Replace(tools)
	}
	return NewHandler(engine, store, zerolog.Nop())
}

func sampleTools() []recommend.ToolRecord {
	return []recommend.ToolRecord{
		{
			ID: "slack", Name: "Slack", Category: "communication",
			Description: "Team messaging with channels",
			Tags:        []string{"quick-setup", "collaboration"},
			Features:    []string{"channels", "threads", "calls"},
			Pricing:     recommend.Pricing{Kind: recommend.PricingFreemium},
			Rating:      4.6, ReviewCount: 5000,
		},
		{
			ID: "figma", Name: "Figma", Category: "design",
			Description: "Collaborative interface design",
			Features:    []string{"vector editing", "prototyping"},
			Pricing:     recommend.Pricing{Kind: recommend.PricingFreemium},
			Rating:      4.7, ReviewCount: 8000,
		},
	}
}

func validBody() string {
	return `{
		"profile": {
			"industry": "technology",
			"company_size": "startup",
			"department": "engineering",
			"experience": "intermediate"
		},
		"behavior": {
			"price_sensitivity": 0.5,
			"integration_importance": 0.5
		},
		"context": {
			"intent": "discover_new",
			"goals": ["improve collaboration"]
		},
		"target_count": 5
	}`
}

func postRecommendations(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, *APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Recommendations(rec, req)

	var envelope APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rec, &envelope
}

func TestRecommendationsSuccess(t *testing.T) {
	h := newTestHandler(t, sampleTools())

	rec, envelope := postRecommendations(t, h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}

	data, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var resp recommend.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal engine response: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
	if resp.Metadata.Intent != "discover_new" {
		t.Errorf("metadata intent = %s", resp.Metadata.Intent)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("expected a generated request id")
	}
}

func TestRecommendationsInvalidJSON(t *testing.T) {
	h := newTestHandler(t, sampleTools())

	rec, envelope := postRecommendations(t, h, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "INVALID_JSON" {
		t.Errorf("error = %+v, want INVALID_JSON", envelope.Error)
	}
}

func TestRecommendationsValidationError(t *testing.T) {
	h := newTestHandler(t, sampleTools())

	body := strings.Replace(validBody(), `"discover_new"`, `"world_domination"`, 1)
	rec, envelope := postRecommendations(t, h, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", envelope.Error)
	}
}

func TestRecommendationsEmptyCatalog(t *testing.T) {
	h := newTestHandler(t, nil)

	rec, envelope := postRecommendations(t, h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !envelope.Success {
		t.Fatal("empty catalog is a valid, empty result, not an error")
	}

	data, _ := json.Marshal(envelope.Data)
	var resp recommend.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal engine response: %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Error("expected no recommendations")
	}
	if resp.ReasonCode != recommend.ReasonEmptyCatalog {
		t.Errorf("reason code = %s, want %s", resp.ReasonCode, recommend.ReasonEmptyCatalog)
	}
}

func TestToolByName(t *testing.T) {
	h := newTestHandler(t, sampleTools())
	router := NewRouter(h, RouterOptions{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools/SLACK", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var envelope APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	data, _ := json.Marshal(envelope.Data)
	var tool recommend.ToolRecord
	if err := json.Unmarshal(data, &tool); err != nil {
		t.Fatalf("unmarshal tool: %v", err)
	}
	if tool.ID != "slack" {
		t.Errorf("tool id = %s, want slack (lookup is case-insensitive)", tool.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tools/nonexistent", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown tool status = %d, want 404", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("empty catalog ready status = %d, want 503", rec.Code)
	}

	h = newTestHandler(t, sampleTools())
	rec = httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", rec.Code)
	}
}

func TestHealthLive(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", rec.Code)
	}
}

func TestRouterRoutes(t *testing.T) {
	h := newTestHandler(t, sampleTools())
	router := NewRouter(h, RouterOptions{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{http.MethodPost, "/api/v1/recommendations", validBody(), http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/recommendations", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		var body *strings.Reader
		if tt.body != "" {
			body = strings.NewReader(tt.body)
		} else {
			body = strings.NewReader("")
		}
		req := httptest.NewRequest(tt.method, tt.path, body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.status {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
	}
}
