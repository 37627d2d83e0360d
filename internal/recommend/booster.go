// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import "strings"

// quickSetupTag marks tools that can be adopted immediately.
const quickSetupTag = "quick-setup"

// contextBoost computes the additive score adjustment from the request
// context: timeline urgency, stated goals, and stated pain points matched
// against the tool's description, tags, and features. The boost is uncapped;
// the caller clamps the combined score.
func contextBoost(cfg *BoosterConfig, tool *ToolRecord, rctx *RecommendationContext) float64 {
	var boost float64

	if strings.EqualFold(rctx.Timeline, TimelineImmediate) && hasTag(tool.Tags, quickSetupTag) {
		boost += cfg.QuickSetup
	}

	for _, goal := range rctx.Goals {
		if matchesText(tool.Description, goal) || matchesAny(tool.Features, goal) {
			boost += cfg.GoalMatch
			break
		}
	}

	for _, pain := range rctx.PainPoints {
		if matchesText(tool.Description, pain) || matchesAny(tool.Tags, pain) {
			boost += cfg.PainPointMatch
			break
		}
	}

	return boost
}

// matchesText reports a case-insensitive substring match. Empty needles
// never match.
func matchesText(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchesAny reports whether any candidate matches the needle.
func matchesAny(candidates []string, needle string) bool {
	for _, c := range candidates {
		if matchesText(c, needle) {
			return true
		}
	}
	return false
}

// hasTag reports an exact case-insensitive tag match.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
