// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package api

import (
	"github.com/toolscout/toolscout/internal/recommend"
)

// RecommendationRequest is the wire shape of a recommendation request.
// Enum fields arrive as strings and are converted to engine types after
// validation; unknown values fall back to each enum's documented default.
type RecommendationRequest struct {
	Profile      ProfileDTO  `json:"profile" validate:"required"`
	Behavior     BehaviorDTO `json:"behavior"`
	Context      ContextDTO  `json:"context" validate:"required"`
	CurrentTools []string    `json:"current_tools" validate:"max=500"`
	TargetCount  int         `json:"target_count" validate:"lte=1000"`
}

// ProfileDTO carries the requester profile fields.
type ProfileDTO struct {
	Industry        string   `json:"industry" validate:"max=100"`
	CompanySize     string   `json:"company_size" validate:"omitempty,oneof=startup small medium large enterprise"`
	JobTitle        string   `json:"job_title" validate:"max=200"`
	Department      string   `json:"department" validate:"max=100"`
	Experience      string   `json:"experience" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	PrimaryUseCases []string `json:"primary_use_cases" validate:"max=50"`
	CurrentStack    []string `json:"current_stack" validate:"max=500"`
}

// BehaviorDTO carries the observed-behavior fields.
type BehaviorDTO struct {
	ViewedTools           []string           `json:"viewed_tools" validate:"max=1000"`
	SavedTools            []string           `json:"saved_tools" validate:"max=1000"`
	SearchHistory         []string           `json:"search_history" validate:"max=1000"`
	CategoryHours         map[string]float64 `json:"category_hours"`
	FeaturePreferences    []string           `json:"feature_preferences" validate:"max=100"`
	PriceSensitivity      float64            `json:"price_sensitivity" validate:"gte=0,lte=1"`
	IntegrationImportance float64            `json:"integration_importance" validate:"gte=0,lte=1"`
}

// ContextDTO carries the stated goals for this request.
type ContextDTO struct {
	Intent      string   `json:"intent" validate:"omitempty,oneof=discover_new replace_existing consolidate_stack scale_team optimize_workflow"`
	Goals       []string `json:"goals" validate:"max=50"`
	PainPoints  []string `json:"pain_points" validate:"max=50"`
	Timeline    string   `json:"timeline" validate:"max=50"`
	BudgetRange string   `json:"budget_range" validate:"max=100"`
}

// ToEngineRequest converts the DTO into an engine request, scoring against
// the given catalog snapshot.
func (r *RecommendationRequest) ToEngineRequest(catalog []recommend.ToolRecord) *recommend.Request {
	return &recommend.Request{
		Profile: recommend.RequesterProfile{
			Industry:        r.Profile.Industry,
			CompanySize:     recommend.ParseCompanySize(r.Profile.CompanySize),
			JobTitle:        r.Profile.JobTitle,
			Department:      r.Profile.Department,
			Experience:      recommend.ParseExperienceLevel(r.Profile.Experience),
			PrimaryUseCases: r.Profile.PrimaryUseCases,
			CurrentStack:    r.Profile.CurrentStack,
		},
		Behavior: recommend.BehaviorSnapshot{
			ViewedTools:           r.Behavior.ViewedTools,
			SavedTools:            r.Behavior.SavedTools,
			SearchHistory:         r.Behavior.SearchHistory,
			CategoryHours:         r.Behavior.CategoryHours,
			FeaturePreferences:    r.Behavior.FeaturePreferences,
			PriceSensitivity:      r.Behavior.PriceSensitivity,
			IntegrationImportance: r.Behavior.IntegrationImportance,
		},
		Context: recommend.RecommendationContext{
			Intent:      recommend.ParseIntent(r.Context.Intent),
			Goals:       r.Context.Goals,
			PainPoints:  r.Context.PainPoints,
			Timeline:    r.Context.Timeline,
			BudgetRange: r.Context.BudgetRange,
		},
		CurrentTools: r.CurrentTools,
		Catalog:      catalog,
		TargetCount:  r.TargetCount,
	}
}
