// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"github.com/toolscout/toolscout/internal/recommend"
)

// DefaultScorers returns the full factor scorer set in weighting order,
// all sharing the given knowledge tables.
func DefaultScorers(kn *recommend.Knowledge) []recommend.FactorScorer {
	return []recommend.FactorScorer{
		NewProfileFit(kn),
		NewBehaviorFit(),
		NewIntegrationFit(kn),
		NewPriceFit(kn),
		NewFeatureFit(kn),
	}
}
