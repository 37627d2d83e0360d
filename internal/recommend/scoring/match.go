// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import "strings"

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// containsFold reports whether s contains substr, case-insensitively.
// Empty needles never match.
func containsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyContainsFold reports whether any candidate contains the needle.
func anyContainsFold(candidates []string, needle string) bool {
	for _, c := range candidates {
		if containsFold(c, needle) {
			return true
		}
	}
	return false
}

// hasTagFold reports whether tags contains tag, case-insensitively.
func hasTagFold(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
