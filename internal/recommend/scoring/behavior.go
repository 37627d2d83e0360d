// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"strings"

	"github.com/toolscout/toolscout/internal/recommend"
)

// Term weights for the behavior-fit scorer.
const (
	behaviorCategoryHoursScale = 0.3
	behaviorFeaturePrefScale   = 0.2
	behaviorSearchMatchStep    = 0.1
	behaviorSearchMatchCap     = 0.3
	behaviorViewedStep         = 0.05
	behaviorViewedCap          = 0.2
)

// BehaviorFit scores how well a tool matches observed requester behavior:
// category browsing time, feature preferences, search history, and
// previously viewed tools in the same category.
type BehaviorFit struct{}

// NewBehaviorFit creates the behavior-fit scorer.
func NewBehaviorFit() *BehaviorFit {
	return &BehaviorFit{}
}

// Name returns the factor identifier.
func (s *BehaviorFit) Name() string { return recommend.FactorBehavior }

// Score returns the behavior-fit sub-score in [0, 1].
func (s *BehaviorFit) Score(tool *recommend.ToolRecord, req *recommend.Request) float64 {
	behavior := &req.Behavior
	var score float64

	if maxHrs := req.MaxCategoryHours(); maxHrs > 0 {
		hrs := categoryHours(behavior.CategoryHours, tool.Category)
		score += behaviorCategoryHoursScale * (hrs / maxHrs)
	}

	if n := len(behavior.FeaturePreferences); n > 0 {
		matched := 0
		for _, pref := range behavior.FeaturePreferences {
			if anyContainsFold(tool.Features, pref) {
				matched++
			}
		}
		score += behaviorFeaturePrefScale * float64(matched) / float64(n)
	}

	var searchBonus float64
	for _, query := range behavior.SearchHistory {
		if containsFold(tool.Name, query) || containsFold(tool.Category, query) || anyContainsFold(tool.Tags, query) {
			searchBonus += behaviorSearchMatchStep
			if searchBonus >= behaviorSearchMatchCap {
				searchBonus = behaviorSearchMatchCap
				break
			}
		}
	}
	score += searchBonus

	viewedBonus := behaviorViewedStep * float64(req.ViewedInCategory(tool.Category))
	if viewedBonus > behaviorViewedCap {
		viewedBonus = behaviorViewedCap
	}
	score += viewedBonus

	return clamp01(score)
}

// categoryHours looks up browsing hours for a category, case-insensitively.
func categoryHours(hours map[string]float64, category string) float64 {
	if h, ok := hours[category]; ok {
		return h
	}
	for cat, h := range hours {
		if strings.EqualFold(cat, category) {
			return h
		}
	}
	return 0
}

var _ recommend.FactorScorer = (*BehaviorFit)(nil)
