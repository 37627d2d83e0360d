// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import (
	"sort"
	"strings"
)

// selectDiverse ranks the scored candidates and picks the top targetCount
// while capping how many tools from one category may appear.
//
// The algorithm sorts descending by score (ties broken ascending by tool ID
// so identical inputs always produce identical orderings), walks a fixed
// window of top candidates admitting those whose category counter is under
// ceil(targetCount / divisor), then backfills from the unadmitted remainder
// in score order, ignoring the cap, until targetCount is reached or
// candidates run out. The window bounds only the cap-constrained pass;
// backfill continues past it when the window alone cannot reach
// targetCount, so the result always holds min(targetCount, candidates)
// entries.
func selectDiverse(cfg *SelectionConfig, candidates []ScoredCandidate, targetCount int) []ScoredCandidate {
	if targetCount <= 0 || len(candidates) == 0 {
		return nil
	}

	sortCandidates(candidates)

	window := candidates
	if len(window) > cfg.WindowSize {
		window = window[:cfg.WindowSize]
	}

	maxPerCat := categoryCap(targetCount, cfg.CategoryCapDivisor)
	perCategory := make(map[string]int)
	admitted := make(map[int]struct{}, targetCount)
	selected := make([]ScoredCandidate, 0, targetCount)

	for i := range window {
		if len(selected) >= targetCount {
			break
		}
		cat := strings.ToLower(strings.TrimSpace(window[i].Tool.Category))
		if perCategory[cat] >= maxPerCat {
			continue
		}
		perCategory[cat]++
		admitted[i] = struct{}{}
		selected = append(selected, window[i])
	}

	// Backfill from skipped candidates in score order, cap ignored. Runs
	// over the full sorted list, not just the window, so an oversized
	// target still yields min(targetCount, candidates) entries.
	for i := range candidates {
		if len(selected) >= targetCount {
			break
		}
		if _, ok := admitted[i]; ok {
			continue
		}
		selected = append(selected, candidates[i])
	}

	// Re-sort so backfilled entries interleave by score, not admission order.
	sortCandidates(selected)
	return selected
}

// sortCandidates orders descending by score, ascending by tool ID on ties.
func sortCandidates(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Tool.ID < candidates[j].Tool.ID
	})
}

// categoryCap returns ceil(targetCount / divisor), minimum 1.
func categoryCap(targetCount, divisor int) int {
	c := (targetCount + divisor - 1) / divisor
	if c < 1 {
		c = 1
	}
	return c
}
