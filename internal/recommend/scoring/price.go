// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"github.com/toolscout/toolscout/internal/recommend"
)

// Term weights for the price-fit scorer.
const (
	pricePaidScale       = 0.6
	priceUnknownPaidBase = 0.3
	priceFreeSensScale   = 0.2
	priceInsensFlat      = 0.1
	priceQualityScale    = 0.2
)

// PriceFit scores a tool's pricing against the requester's company size and
// price sensitivity: free and freemium tools earn size-dependent bonuses,
// paid tools decay linearly toward zero as the starting price approaches a
// size-dependent budget ceiling, and highly rated tools earn a quality bonus.
type PriceFit struct {
	kn *recommend.Knowledge
}

// NewPriceFit creates the price-fit scorer.
func NewPriceFit(kn *recommend.Knowledge) *PriceFit {
	return &PriceFit{kn: kn}
}

// Name returns the factor identifier.
func (s *PriceFit) Name() string { return recommend.FactorPrice }

// Score returns the price-fit sub-score in [0, 1].
func (s *PriceFit) Score(tool *recommend.ToolRecord, req *recommend.Request) float64 {
	size := req.Profile.CompanySize
	sensitivity := clamp01(req.Behavior.PriceSensitivity)

	var score float64
	switch tool.Pricing.Kind {
	case recommend.PricingFree:
		score = s.kn.FreeBonus[size]
		// Sensitive requesters value free tiers more; the term is linear in
		// sensitivity so the free-tool score never decreases as sensitivity
		// rises.
		score += priceFreeSensScale * sensitivity
	case recommend.PricingFreemium:
		score = s.kn.FreemiumBonus[size]
		score += priceFreeSensScale / 2 * sensitivity
	default:
		score = s.paidBase(tool, size)
	}

	// Insensitive requesters get a flat adjustment regardless of tier.
	score += priceInsensFlat * (1 - sensitivity)

	if tool.Rating > 0 {
		score += priceQualityScale * (tool.Rating / 5)
	}

	return clamp01(score)
}

// paidBase scores a paid tool by how far its starting price sits under the
// size-dependent budget ceiling. Unknown prices contribute a neutral base.
func (s *PriceFit) paidBase(tool *recommend.ToolRecord, size recommend.CompanySize) float64 {
	price := tool.Pricing.StartingPrice
	if price == nil {
		return priceUnknownPaidBase
	}
	ceiling := s.kn.BudgetCeilings[size]
	if ceiling <= 0 || *price >= ceiling {
		return 0
	}
	return pricePaidScale * (1 - *price/ceiling)
}

var _ recommend.FactorScorer = (*PriceFit)(nil)
