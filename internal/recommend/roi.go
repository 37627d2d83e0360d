// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import "fmt"

// Effort classification inputs.
const (
	effortFeatureCountThreshold = 8
	productivityGainScale       = 0.3
)

// Weekly time-savings bases in hours, before the company-size multiplier.
const (
	timeSavingsAutomationBase = 5.0
	timeSavingsDefaultBase    = 2.0
)

// neutralValueSignal substitutes for the rating-derived value signal when a
// tool has no ratings yet.
const neutralValueSignal = 0.5

// classifyEffort maps a small ordinal to the implementation-effort enum.
// Feature-rich tools and beginner requesters each add a point.
func classifyEffort(tool *ToolRecord, profile *RequesterProfile) ImplementationEffort {
	points := 0
	if len(tool.Features) > effortFeatureCountThreshold {
		points++
	}
	if profile.Experience == ExperienceBeginner {
		points++
	}
	switch points {
	case 0:
		return EffortSimple
	case 1:
		return EffortModerate
	case 2:
		return EffortComplex
	default:
		return EffortExpertRequired
	}
}

// estimateROI projects the return on adopting a tool.
//
// Time savings use a category-dependent weekly base (higher for automation
// categories) scaled by a company-size multiplier. Cost savings scale the
// size base by the tool's rating-derived value signal. Productivity gain is
// proportional to the combined score, and the confidence level mirrors the
// candidate's confidence.
func estimateROI(kn *Knowledge, cand *ScoredCandidate, profile *RequesterProfile) ExpectedROI {
	size := profile.CompanySize

	base := timeSavingsDefaultBase
	if kn.IsAutomationCategory(cand.Tool.Category) {
		base = timeSavingsAutomationBase
	}
	multiplier := kn.TimeMultiplier[size]
	if multiplier == 0 {
		multiplier = 1
	}
	hours := base * multiplier

	value := neutralValueSignal
	if cand.Tool.Rating > 0 {
		value = cand.Tool.Rating / 5
	}

	return ExpectedROI{
		TimeSavings:      fmt.Sprintf("%.0f-%.0f hours/week", hours, hours*1.5),
		CostSavings:      kn.CostSavingsBase[size] * value,
		ProductivityGain: productivityGainScale * cand.Score,
		ConfidenceLevel:  cand.Confidence,
	}
}
