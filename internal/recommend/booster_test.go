// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import "testing"

func TestContextBoost(t *testing.T) {
	cfg := DefaultConfig().Booster

	tool := ToolRecord{
		ID:          "x",
		Name:        "ToolX",
		Category:    "communication",
		Description: "Automate team updates and reduce meeting overhead",
		Tags:        []string{"quick-setup", "collaboration"},
		Features:    []string{"threaded chat", "status reports"},
	}

	tests := []struct {
		name string
		rctx RecommendationContext
		want float64
	}{
		{
			name: "no context",
			rctx: RecommendationContext{},
			want: 0,
		},
		{
			name: "immediate timeline with quick-setup tag",
			rctx: RecommendationContext{Timeline: TimelineImmediate},
			want: 0.10,
		},
		{
			name: "timeline case-insensitive",
			rctx: RecommendationContext{Timeline: "IMMEDIATE"},
			want: 0.10,
		},
		{
			name: "goal matches description",
			rctx: RecommendationContext{Goals: []string{"automate team updates"}},
			want: 0.10,
		},
		{
			name: "goal matches a feature",
			rctx: RecommendationContext{Goals: []string{"status reports"}},
			want: 0.10,
		},
		{
			name: "pain point matches tags",
			rctx: RecommendationContext{PainPoints: []string{"collaboration"}},
			want: 0.15,
		},
		{
			name: "all three stack additively",
			rctx: RecommendationContext{
				Timeline:   TimelineImmediate,
				Goals:      []string{"reduce meeting overhead"},
				PainPoints: []string{"meeting overhead"},
			},
			want: 0.35,
		},
		{
			name: "multiple goals count once",
			rctx: RecommendationContext{Goals: []string{"automate team updates", "status reports"}},
			want: 0.10,
		},
		{
			name: "empty strings never match",
			rctx: RecommendationContext{Goals: []string{""}, PainPoints: []string{"  "}},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contextBoost(&cfg, &tool, &tt.rctx)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("contextBoost = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContextBoostNoQuickSetupTag(t *testing.T) {
	cfg := DefaultConfig().Booster
	tool := ToolRecord{ID: "y", Name: "ToolY", Tags: []string{"enterprise"}}
	rctx := RecommendationContext{Timeline: TimelineImmediate}

	if got := contextBoost(&cfg, &tool, &rctx); got != 0 {
		t.Errorf("expected no boost without quick-setup tag, got %f", got)
	}
}
