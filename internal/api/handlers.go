// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/metrics"
	"github.com/toolscout/toolscout/internal/recommend"
	"github.com/toolscout/toolscout/internal/validation"
)

// maxRequestBody caps recommendation request bodies at 1MB.
const maxRequestBody = 1 << 20

// Handler owns the HTTP endpoints.
type Handler struct {
	engine *recommend.Engine
	store  *catalog.Store
	logger zerolog.Logger
}

// NewHandler creates the API handler.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandler(engine *recommend.Engine, store *catalog.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		store:  store,
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendationRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Details())
		return
	}

	engineReq := req.ToEngineRequest(h.store.Snapshot())
	resp, err := h.engine.Recommend(r.Context(), engineReq)

	intent := engineReq.Context.Intent.String()
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues(intent, "error").Inc()
		h.logger.Error().Err(err).Msg("recommendation failed")
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_FAILED", "failed to generate recommendations", nil)
		return
	}

	outcome := "ok"
	if resp.ReasonCode != "" {
		outcome = resp.ReasonCode
	}
	metrics.RecommendationsTotal.WithLabelValues(intent, outcome).Inc()
	metrics.RecommendationLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendationCandidates.Observe(float64(resp.TotalCandidates))

	respondSuccess(w, http.StatusOK, resp, resp.Metadata.RequestID)
}

// ToolByName handles GET /api/v1/tools/{name}. Lookup is by display name,
// case-insensitive.
func (h *Handler) ToolByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := h.store.ByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "TOOL_NOT_FOUND", "no tool with that name in the catalog", nil)
		return
	}
	respondSuccess(w, http.StatusOK, tool, "")
}

// HealthLive handles GET /api/v1/health/live. Always healthy while the
// process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, "")
}

// HealthReady handles GET /api/v1/health/ready. Ready once the catalog has
// at least one tool to recommend.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	size := h.store.Size()
	if size == 0 {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_EMPTY", "catalog has no tools loaded", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"catalog_size": size,
	}, "")
}
