// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"github.com/toolscout/toolscout/internal/recommend"
)

// Term weights for the feature-fit scorer.
const (
	featureAlignmentScale  = 0.3
	featureDepartmentScale = 0.3
	featureInnovativeBonus = 0.1
	featurePrefScale       = 0.3

	// featureRichCount is the feature count at which non-beginners see a
	// tool as fully featured.
	featureRichCount = 8
	// featureSimpleCount is the feature count beginners are comfortable up to.
	featureSimpleCount = 3
)

// innovativeTag marks tools that earn the expert novelty bonus.
const innovativeTag = "innovative"

// FeatureFit scores a tool's feature set against the requester: count
// alignment with experience level, overlap with the department's required
// features, a novelty bonus for experts, and overlap with stated feature
// preferences.
type FeatureFit struct {
	kn *recommend.Knowledge
}

// NewFeatureFit creates the feature-fit scorer.
func NewFeatureFit(kn *recommend.Knowledge) *FeatureFit {
	return &FeatureFit{kn: kn}
}

// Name returns the factor identifier.
func (s *FeatureFit) Name() string { return recommend.FactorFeatures }

// Score returns the feature-fit sub-score in [0, 1].
func (s *FeatureFit) Score(tool *recommend.ToolRecord, req *recommend.Request) float64 {
	profile := &req.Profile
	n := len(tool.Features)

	score := featureAlignmentScale * alignmentRatio(profile.Experience, n)

	if required := s.kn.RequiredFeatures(profile.Department); len(required) > 0 {
		matched := 0
		for _, want := range required {
			if anyContainsFold(tool.Features, want) {
				matched++
			}
		}
		score += featureDepartmentScale * float64(matched) / float64(len(required))
	}

	if profile.Experience == recommend.ExperienceExpert && hasTagFold(tool.Tags, innovativeTag) {
		score += featureInnovativeBonus
	}

	if prefs := req.Behavior.FeaturePreferences; len(prefs) > 0 {
		matched := 0
		for _, pref := range prefs {
			if anyContainsFold(tool.Features, pref) {
				matched++
			}
		}
		score += featurePrefScale * float64(matched) / float64(len(prefs))
	}

	return clamp01(score)
}

// alignmentRatio maps a feature count to [0, 1] given experience level.
// Beginners prefer small feature sets and lose credit linearly as the count
// grows past featureSimpleCount; everyone else gains credit linearly up to
// featureRichCount.
func alignmentRatio(level recommend.ExperienceLevel, featureCount int) float64 {
	if level == recommend.ExperienceBeginner {
		over := featureCount - featureSimpleCount
		if over <= 0 {
			return 1
		}
		return clamp01(1 - float64(over)/float64(featureRichCount-featureSimpleCount))
	}
	return clamp01(float64(featureCount) / float64(featureRichCount))
}

var _ recommend.FactorScorer = (*FeatureFit)(nil)
