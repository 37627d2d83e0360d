// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import (
	"fmt"
	"strings"
)

// Thresholds that trigger a reason template, checked in priority order.
const (
	reasonProfileThreshold     = 0.7
	reasonIntegrationThreshold = 0.6
	reasonPriceThreshold       = 0.8
	reasonRatingThreshold      = 4.5
	reasonBehaviorThreshold    = 0.6

	maxReasons = 3
)

// buildReasons emits up to three short explanation strings for a scored
// candidate, in fixed priority order so equal inputs always produce the same
// reasons. Each template interpolates the concrete supporting value. The
// result may be empty when no threshold is met.
func buildReasons(tool *ToolRecord, factors map[string]float64, req *Request) []string {
	reasons := make([]string, 0, maxReasons)

	if factors[FactorProfile] > reasonProfileThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"Strong match for %s %s companies", req.Profile.CompanySize, req.Profile.Industry))
	}
	if len(reasons) < maxReasons && factors[FactorIntegration] > reasonIntegrationThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"Integrates well with the %d tools in your current stack", req.CurrentStackSize()))
	}
	if len(reasons) < maxReasons && factors[FactorPrice] > reasonPriceThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"Fits your budget with %s pricing", tool.Pricing.Kind))
	}
	if len(reasons) < maxReasons && tool.Rating >= reasonRatingThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"Highly rated at %.1f/5 by %d users", tool.Rating, tool.ReviewCount))
	}
	if len(reasons) < maxReasons && factors[FactorBehavior] > reasonBehaviorThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"Matches your recent activity in the %s category", tool.Category))
	}

	return reasons
}

// buildRationale joins the top two reasons into one sentence.
func buildRationale(reasons []string) string {
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return strings.Join(reasons, ". ")
}

// buildUseCaseFit templates a short sentence from the requester's department
// and first stated use case. Missing fields fall back to generic phrasing.
func buildUseCaseFit(tool *ToolRecord, profile *RequesterProfile) string {
	dept := strings.TrimSpace(profile.Department)
	if dept == "" {
		dept = "your team"
	}
	if len(profile.PrimaryUseCases) > 0 {
		return fmt.Sprintf("Well suited for %s teams working on %s",
			dept, profile.PrimaryUseCases[0])
	}
	return fmt.Sprintf("Well suited for %s teams in the %s category", dept, tool.Category)
}
