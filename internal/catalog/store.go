// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

// Package catalog holds the in-memory tool catalog the engine scores
// against, with YAML seed loading and a badger-backed snapshot so restarts
// can serve recommendations before the next ingest delivers a fresh catalog.
package catalog

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/toolscout/toolscout/internal/metrics"
	"github.com/toolscout/toolscout/internal/recommend"
)

// Store is the in-memory tool catalog. Reads vastly outnumber writes: the
// catalog is replaced wholesale on ingest and read per recommendation
// request. Records handed out via Snapshot are treated as immutable.
type Store struct {
	mu     sync.RWMutex
	tools  []recommend.ToolRecord
	byName map[string]int
	logger zerolog.Logger
}

// NewStore creates an empty catalog store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		byName: make(map[string]int),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Replace swaps the whole catalog for the given records. Records missing
// identity fields are dropped and counted rather than failing the load.
// Returns the accepted and skipped counts.
func (s *Store) Replace(tools []recommend.ToolRecord) (accepted, skipped int) {
	kept := make([]recommend.ToolRecord, 0, len(tools))
	byName := make(map[string]int, len(tools))

	for i := range tools {
		if !tools[i].Valid() {
			skipped++
			s.logger.Warn().
				Str("tool_id", tools[i].ID).
				Str("tool_name", tools[i].Name).
				Msg("dropping malformed catalog record")
			continue
		}
		byName[strings.ToLower(strings.TrimSpace(tools[i].Name))] = len(kept)
		kept = append(kept, tools[i])
	}

	s.mu.Lock()
	s.tools = kept
	s.byName = byName
	s.mu.Unlock()

	metrics.CatalogSize.Set(float64(len(kept)))
	if skipped > 0 {
		metrics.CatalogSkippedRecords.Add(float64(skipped))
	}

	s.logger.Info().
		Int("accepted", len(kept)).
		Int("skipped", skipped).
		Msg("catalog replaced")
	return len(kept), skipped
}

// Snapshot returns a copy of the current catalog for a scoring run. The
// returned slice is the caller's; the records inside share nested slices
// with the store and must not be mutated.
func (s *Store) Snapshot() []recommend.ToolRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]recommend.ToolRecord, len(s.tools))
	copy(snapshot, s.tools)
	return snapshot
}

// ByName looks a tool up by display name, case-insensitively.
func (s *Store) ByName(name string) (recommend.ToolRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return recommend.ToolRecord{}, false
	}
	return s.tools[idx], true
}

// Size returns the number of tools in the catalog.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tools)
}
