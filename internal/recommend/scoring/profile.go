// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"github.com/toolscout/toolscout/internal/recommend"
)

// Term weights for the profile-fit scorer.
const (
	profileCategoryScale   = 0.3
	profileIndustryBonus   = 0.2
	profileDepartmentBonus = 0.2
	profileComplexityBonus = 0.15
	profileUseCaseBonus    = 0.15
)

// ProfileFit scores how well a tool matches the requester's profile:
// company-size category relevance, industry preference, department match,
// experience-appropriate complexity, and stated use cases.
type ProfileFit struct {
	kn *recommend.Knowledge
}

// NewProfileFit creates the profile-fit scorer.
func NewProfileFit(kn *recommend.Knowledge) *ProfileFit {
	return &ProfileFit{kn: kn}
}

// Name returns the factor identifier.
func (s *ProfileFit) Name() string { return recommend.FactorProfile }

// Score returns the profile-fit sub-score in [0, 1].
func (s *ProfileFit) Score(tool *recommend.ToolRecord, req *recommend.Request) float64 {
	profile := &req.Profile

	score := s.kn.CategoryWeight(profile.CompanySize, tool.Category) * profileCategoryScale

	if s.kn.IndustryPrefers(profile.Industry, tool.Category, tool.Tags) {
		score += profileIndustryBonus
	}

	if dept := profile.Department; dept != "" {
		if containsFold(tool.Category, dept) || anyContainsFold(tool.Tags, dept) {
			score += profileDepartmentBonus
		}
	}

	if complexityFits(profile.Experience, len(tool.Features)) {
		score += profileComplexityBonus
	}

	for _, useCase := range profile.PrimaryUseCases {
		if containsFold(tool.Description, useCase) || anyContainsFold(tool.Features, useCase) {
			score += profileUseCaseBonus
			break
		}
	}

	return clamp01(score)
}

// complexityFits reports whether the tool's feature count suits the
// requester's experience level. Beginners favor at most 3 features,
// intermediates tolerate up to 7, advanced and expert users any count.
func complexityFits(level recommend.ExperienceLevel, featureCount int) bool {
	switch level {
	case recommend.ExperienceBeginner:
		return featureCount <= 3
	case recommend.ExperienceIntermediate:
		return featureCount <= 7
	default:
		return true
	}
}

var _ recommend.FactorScorer = (*ProfileFit)(nil)
