// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import (
	"fmt"
	"math"
)

// FactorWeights is an explicit, total weight vector over the five factors.
// Intent-specific vectors are complete replacements, never partial overrides,
// and are not required to sum to 1 because the combined score is clamped.
type FactorWeights struct {
	// Profile weights the profile-fit sub-score.
	Profile float64 `json:"profile" koanf:"profile"`

	// Behavior weights the behavior-fit sub-score.
	Behavior float64 `json:"behavior" koanf:"behavior"`

	// Integration weights the integration-fit sub-score.
	Integration float64 `json:"integration" koanf:"integration"`

	// Price weights the price-fit sub-score.
	Price float64 `json:"price" koanf:"price"`

	// Features weights the feature-fit sub-score.
	Features float64 `json:"features" koanf:"features"`
}

// ToMap converts the vector to a factor-name-keyed map for score combination.
func (w FactorWeights) ToMap() map[string]float64 {
	return map[string]float64{
		FactorProfile:     w.Profile,
		FactorBehavior:    w.Behavior,
		FactorIntegration: w.Integration,
		FactorPrice:       w.Price,
		FactorFeatures:    w.Features,
	}
}

// Validate checks that every weight is non-negative and finite.
func (w FactorWeights) Validate() error {
	for name, v := range w.ToMap() {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %f", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %s must be finite, got %f", name, v)
		}
	}
	return nil
}

// BoosterConfig holds the additive context-boost values.
type BoosterConfig struct {
	// QuickSetup is added when the timeline is immediate and the tool is
	// tagged quick-setup.
	QuickSetup float64 `json:"quick_setup" koanf:"quick_setup"`

	// GoalMatch is added when a stated goal matches the tool's description
	// or a feature.
	GoalMatch float64 `json:"goal_match" koanf:"goal_match"`

	// PainPointMatch is added when a stated pain point matches the tool's
	// description or tags.
	PainPointMatch float64 `json:"pain_point_match" koanf:"pain_point_match"`
}

// SelectionConfig bounds the diversity-constrained selection pass.
type SelectionConfig struct {
	// WindowSize is the sorted pre-filter window the selector walks.
	WindowSize int `json:"window_size" koanf:"window_size"`

	// CategoryCapDivisor sets the per-category cap to
	// ceil(target_count / CategoryCapDivisor).
	CategoryCapDivisor int `json:"category_cap_divisor" koanf:"category_cap_divisor"`
}

// LimitsConfig bounds request parameters.
type LimitsConfig struct {
	// DefaultTargetCount is used when a request omits target_count.
	DefaultTargetCount int `json:"default_target_count" koanf:"default_target_count"`

	// MaxTargetCount caps target_count for any single request.
	MaxTargetCount int `json:"max_target_count" koanf:"max_target_count"`

	// ScoringWorkers bounds the per-request scoring fan-out.
	ScoringWorkers int `json:"scoring_workers" koanf:"scoring_workers"`
}

// Config holds all tunable engine parameters.
type Config struct {
	// BaseWeights applies to discover_new and unrecognized intents.
	BaseWeights FactorWeights `json:"base_weights" koanf:"base_weights"`

	// ReplaceWeights applies to the replace_existing intent.
	ReplaceWeights FactorWeights `json:"replace_weights" koanf:"replace_weights"`

	// ConsolidateWeights applies to the consolidate_stack intent.
	ConsolidateWeights FactorWeights `json:"consolidate_weights" koanf:"consolidate_weights"`

	// ScaleWeights applies to the scale_team intent.
	ScaleWeights FactorWeights `json:"scale_weights" koanf:"scale_weights"`

	// OptimizeWeights applies to the optimize_workflow intent.
	OptimizeWeights FactorWeights `json:"optimize_weights" koanf:"optimize_weights"`

	// Booster holds the additive context-boost values.
	Booster BoosterConfig `json:"booster" koanf:"booster"`

	// Selection bounds the diversity selection pass.
	Selection SelectionConfig `json:"selection" koanf:"selection"`

	// Limits bounds request parameters.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// DefaultConfig returns the standard engine configuration.
//
// The intent vectors keep base values for factors the intent does not
// emphasize, so each vector is auditable as a complete 5-tuple.
func DefaultConfig() *Config {
	base := FactorWeights{
		Profile:     0.25,
		Behavior:    0.25,
		Integration: 0.20,
		Price:       0.15,
		Features:    0.15,
	}
	replace := base
	replace.Integration = 0.40
	replace.Behavior = 0.30

	consolidate := base
	consolidate.Integration = 0.50
	consolidate.Price = 0.20

	scale := base
	scale.Profile = 0.40
	scale.Features = 0.20

	optimize := base
	optimize.Behavior = 0.40
	optimize.Integration = 0.30

	return &Config{
		BaseWeights:        base,
		ReplaceWeights:     replace,
		ConsolidateWeights: consolidate,
		ScaleWeights:       scale,
		OptimizeWeights:    optimize,
		Booster: BoosterConfig{
			QuickSetup:     0.10,
			GoalMatch:      0.10,
			PainPointMatch: 0.15,
		},
		Selection: SelectionConfig{
			WindowSize:         50,
			CategoryCapDivisor: 5,
		},
		Limits: LimitsConfig{
			DefaultTargetCount: 20,
			MaxTargetCount:     100,
			ScoringWorkers:     8,
		},
	}
}

// WeightsFor returns the weight vector for an intent. Unrecognized intents
// fall back to the base vector.
func (c *Config) WeightsFor(intent Intent) FactorWeights {
	switch intent {
	case IntentReplaceExisting:
		return c.ReplaceWeights
	case IntentConsolidateStack:
		return c.ConsolidateWeights
	case IntentScaleTeam:
		return c.ScaleWeights
	case IntentOptimizeWorkflow:
		return c.OptimizeWeights
	default:
		return c.BaseWeights
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	vectors := map[string]FactorWeights{
		"base":        c.BaseWeights,
		"replace":     c.ReplaceWeights,
		"consolidate": c.ConsolidateWeights,
		"scale":       c.ScaleWeights,
		"optimize":    c.OptimizeWeights,
	}
	for name, w := range vectors {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%s weights: %w", name, err)
		}
	}

	if c.Booster.QuickSetup < 0 || c.Booster.GoalMatch < 0 || c.Booster.PainPointMatch < 0 {
		return fmt.Errorf("booster values must be non-negative")
	}

	if c.Selection.WindowSize <= 0 {
		return fmt.Errorf("selection window size must be positive, got %d", c.Selection.WindowSize)
	}
	if c.Selection.CategoryCapDivisor <= 0 {
		return fmt.Errorf("category cap divisor must be positive, got %d", c.Selection.CategoryCapDivisor)
	}

	if c.Limits.DefaultTargetCount <= 0 {
		return fmt.Errorf("default target count must be positive, got %d", c.Limits.DefaultTargetCount)
	}
	if c.Limits.MaxTargetCount < c.Limits.DefaultTargetCount {
		return fmt.Errorf("max target count %d must be >= default target count %d",
			c.Limits.MaxTargetCount, c.Limits.DefaultTargetCount)
	}
	if c.Limits.ScoringWorkers <= 0 {
		return fmt.Errorf("scoring workers must be positive, got %d", c.Limits.ScoringWorkers)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
