// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Confidence bonus terms, each added when its behavioral signal is present.
const (
	confidenceSignalBonus  = 0.1
	confidenceViewedMin    = 10
	confidenceSearchesMin  = 5
	confidenceStackSizeMin = 3
)

// Engine produces ranked, explained, diversified tool recommendations.
//
// Each invocation is a pure function of its inputs: the engine keeps no
// cross-call state beyond its immutable configuration and knowledge tables,
// so a single Engine is safe for concurrent use.
type Engine struct {
	config  *Config
	kn      *Knowledge
	scorers []FactorScorer
	logger  zerolog.Logger
}

// NewEngine creates a recommendation engine. The scorer set must cover the
// factors the configured weight vectors reference; DefaultScorers from the
// scoring package provides the standard five.
func NewEngine(cfg *Config, kn *Knowledge, scorers []FactorScorer, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if kn == nil {
		kn = DefaultKnowledge()
	}
	if len(scorers) == 0 {
		return nil, fmt.Errorf("at least one factor scorer is required")
	}
	seen := make(map[string]struct{}, len(scorers))
	for _, s := range scorers {
		if _, dup := seen[s.Name()]; dup {
			return nil, fmt.Errorf("duplicate scorer for factor %q", s.Name())
		}
		seen[s.Name()] = struct{}{}
	}

	return &Engine{
		config:  cfg.Clone(),
		kn:      kn,
		scorers: scorers,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend generates at most TargetCount recommendations for the request,
// highest score first.
//
// Degenerate inputs (empty catalog, negative target count) yield an empty
// response carrying a reason code rather than an error; only a nil request
// or context cancellation is surfaced as an error.
func (e *Engine) Recommend(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("request must not be nil")
	}
	start := time.Now()

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("intent", req.Context.Intent.String()).
		Logger()

	if len(req.Catalog) == 0 {
		logger.Debug().Msg("empty catalog, returning empty response")
		return e.emptyResponse(req, ReasonEmptyCatalog, start), nil
	}

	targetCount := req.TargetCount
	switch {
	case targetCount == 0:
		targetCount = e.config.Limits.DefaultTargetCount
	case targetCount < 0:
		logger.Debug().Int("target_count", targetCount).Msg("invalid target count")
		return e.emptyResponse(req, ReasonInvalidTargetCount, start), nil
	case targetCount > e.config.Limits.MaxTargetCount:
		targetCount = e.config.Limits.MaxTargetCount
	}

	req.PrepareDerived()

	eligible, skipped := e.filterCatalog(req)
	if len(eligible) == 0 {
		resp := e.emptyResponse(req, "", start)
		resp.SkippedTools = skipped
		return resp, nil
	}

	candidates, err := e.scoreCandidates(ctx, req, eligible)
	if err != nil {
		return nil, err
	}

	selected := selectDiverse(&e.config.Selection, candidates, targetCount)

	recommendations := make([]Recommendation, 0, len(selected))
	for i := range selected {
		recommendations = append(recommendations, e.assemble(&selected[i], &req.Profile))
	}

	logger.Debug().
		Int("catalog_size", len(req.Catalog)).
		Int("eligible", len(eligible)).
		Int("skipped", skipped).
		Int("returned", len(recommendations)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations generated")

	return &Response{
		Recommendations: recommendations,
		TotalCandidates: len(eligible),
		SkippedTools:    skipped,
		Metadata:        e.metadata(req, start),
	}, nil
}

// filterCatalog drops malformed records and tools already in the requester's
// stack. Returns the eligible tools and the malformed count.
func (e *Engine) filterCatalog(req *Request) ([]ToolRecord, int) {
	eligible := make([]ToolRecord, 0, len(req.Catalog))
	skipped := 0
	for i := range req.Catalog {
		tool := &req.Catalog[i]
		if !tool.Valid() {
			skipped++
			continue
		}
		if req.InCurrentStack(tool.Name) {
			continue
		}
		eligible = append(eligible, *tool)
	}
	return eligible, skipped
}

// scoreCandidates fans per-tool scoring out over a bounded worker pool and
// gathers the results. Each tool's score is independent, so workers write
// into their own slice slot and no locking is needed.
func (e *Engine) scoreCandidates(ctx context.Context, req *Request, eligible []ToolRecord) ([]ScoredCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommendation canceled: %w", err)
	}

	weights := e.config.WeightsFor(req.Context.Intent).ToMap()
	results := make([]ScoredCandidate, len(eligible))

	workers := e.config.Limits.ScoringWorkers
	if workers > len(eligible) {
		workers = len(eligible)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.scoreOne(&eligible[i], req, weights)
			}
		}()
	}
	for i := range eligible {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommendation canceled: %w", err)
	}
	return results, nil
}

// scoreOne computes one tool's factor breakdown, combined score, confidence,
// and reasons.
func (e *Engine) scoreOne(tool *ToolRecord, req *Request, weights map[string]float64) ScoredCandidate {
	factors := make(map[string]float64, len(e.scorers))
	var weighted float64
	for _, scorer := range e.scorers {
		sub := clampScore(scorer.Score(tool, req))
		factors[scorer.Name()] = sub
		weighted += sub * weights[scorer.Name()]
	}

	boost := contextBoost(&e.config.Booster, tool, &req.Context)
	score := clampScore(weighted + boost)

	return ScoredCandidate{
		Tool:       *tool,
		Factors:    factors,
		Score:      score,
		Confidence: e.confidence(score, req),
		Reasons:    buildReasons(tool, factors, req),
	}
}

// confidence estimates how much behavioral signal backs a score: deep view
// history, search history, and a substantial current stack each add a bonus.
func (e *Engine) confidence(score float64, req *Request) float64 {
	confidence := score
	if len(req.Behavior.ViewedTools) > confidenceViewedMin {
		confidence += confidenceSignalBonus
	}
	if len(req.Behavior.SearchHistory) > confidenceSearchesMin {
		confidence += confidenceSignalBonus
	}
	if req.CurrentStackSize() > confidenceStackSizeMin {
		confidence += confidenceSignalBonus
	}
	return clampScore(confidence)
}

// assemble maps a selected candidate to its final recommendation record.
func (e *Engine) assemble(cand *ScoredCandidate, profile *RequesterProfile) Recommendation {
	return Recommendation{
		Tool:       cand.Tool,
		Score:      cand.Score,
		Rationale:  buildRationale(cand.Reasons),
		UseCaseFit: buildUseCaseFit(&cand.Tool, profile),
		Effort:     classifyEffort(&cand.Tool, profile),
		ROI:        estimateROI(e.kn, cand, profile),
	}
}

// emptyResponse builds a valid empty result for degenerate input.
func (e *Engine) emptyResponse(req *Request, reasonCode string, start time.Time) *Response {
	return &Response{
		Recommendations: []Recommendation{},
		ReasonCode:      reasonCode,
		Metadata:        e.metadata(req, start),
	}
}

// metadata builds the response metadata block.
func (e *Engine) metadata(req *Request, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID: req.RequestID,
		Intent:    req.Context.Intent.String(),
		LatencyMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now().UTC(),
	}
}

// clampScore bounds a score to [0, 1].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
