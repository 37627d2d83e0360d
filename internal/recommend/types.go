// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import (
	"strings"
	"time"
)

// PricingKind classifies a tool's pricing model.
type PricingKind int

const (
	// PricingFree indicates the tool is free to use.
	PricingFree PricingKind = iota
	// PricingFreemium indicates a free tier with paid upgrades.
	PricingFreemium
	// PricingPaid indicates a paid-only tool.
	PricingPaid
)

// String returns a human-readable name for the pricing kind.
func (p PricingKind) String() string {
	switch p {
	case PricingFree:
		return "free"
	case PricingFreemium:
		return "freemium"
	case PricingPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// ParsePricingKind parses a pricing kind from its string form.
// Unrecognized values default to PricingPaid.
func ParsePricingKind(s string) PricingKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return PricingFree
	case "freemium":
		return PricingFreemium
	default:
		return PricingPaid
	}
}

// CompanySize classifies the requester's organization size.
type CompanySize int

const (
	// SizeStartup is a company of roughly 1-10 people.
	SizeStartup CompanySize = iota
	// SizeSmall is a company of roughly 11-50 people.
	SizeSmall
	// SizeMedium is a company of roughly 51-200 people.
	SizeMedium
	// SizeLarge is a company of roughly 201-1000 people.
	SizeLarge
	// SizeEnterprise is a company of more than 1000 people.
	SizeEnterprise
)

// String returns a human-readable name for the company size.
func (c CompanySize) String() string {
	switch c {
	case SizeStartup:
		return "startup"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeEnterprise:
		return "enterprise"
	default:
		return "unknown"
	}
}

// ParseCompanySize parses a company size from its string form.
// Unrecognized values default to SizeSmall.
func ParseCompanySize(s string) CompanySize {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "startup":
		return SizeStartup
	case "small":
		return SizeSmall
	case "medium":
		return SizeMedium
	case "large":
		return SizeLarge
	case "enterprise":
		return SizeEnterprise
	default:
		return SizeSmall
	}
}

// ExperienceLevel classifies the requester's tooling experience.
type ExperienceLevel int

const (
	// ExperienceBeginner prefers simple tools with few features.
	ExperienceBeginner ExperienceLevel = iota
	// ExperienceIntermediate is comfortable with moderately complex tools.
	ExperienceIntermediate
	// ExperienceAdvanced handles feature-rich tools without friction.
	ExperienceAdvanced
	// ExperienceExpert tolerates any complexity and values depth.
	ExperienceExpert
)

// String returns a human-readable name for the experience level.
func (e ExperienceLevel) String() string {
	switch e {
	case ExperienceBeginner:
		return "beginner"
	case ExperienceIntermediate:
		return "intermediate"
	case ExperienceAdvanced:
		return "advanced"
	case ExperienceExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseExperienceLevel parses an experience level from its string form.
// Unrecognized values default to ExperienceIntermediate.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return ExperienceBeginner
	case "advanced":
		return ExperienceAdvanced
	case "expert":
		return ExperienceExpert
	default:
		return ExperienceIntermediate
	}
}

// Intent specifies what the requester is trying to accomplish.
type Intent int

const (
	// IntentDiscoverNew explores tools outside the current stack.
	IntentDiscoverNew Intent = iota
	// IntentReplaceExisting swaps out a tool already in use.
	IntentReplaceExisting
	// IntentConsolidateStack reduces tool count via better-integrated picks.
	IntentConsolidateStack
	// IntentScaleTeam prepares tooling for team growth.
	IntentScaleTeam
	// IntentOptimizeWorkflow improves existing day-to-day workflows.
	IntentOptimizeWorkflow
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentDiscoverNew:
		return "discover_new"
	case IntentReplaceExisting:
		return "replace_existing"
	case IntentConsolidateStack:
		return "consolidate_stack"
	case IntentScaleTeam:
		return "scale_team"
	case IntentOptimizeWorkflow:
		return "optimize_workflow"
	default:
		return "unknown"
	}
}

// ParseIntent parses an intent from its string form.
// Unrecognized values default to IntentDiscoverNew.
func ParseIntent(s string) Intent {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace_existing":
		return IntentReplaceExisting
	case "consolidate_stack":
		return IntentConsolidateStack
	case "scale_team":
		return IntentScaleTeam
	case "optimize_workflow":
		return IntentOptimizeWorkflow
	default:
		return IntentDiscoverNew
	}
}

// ImplementationEffort classifies how hard a tool is to adopt.
type ImplementationEffort int

const (
	// EffortSimple means the tool can be adopted in hours.
	EffortSimple ImplementationEffort = iota
	// EffortModerate means adoption takes days.
	EffortModerate
	// EffortComplex means adoption takes weeks.
	EffortComplex
	// EffortExpertRequired means adoption needs dedicated expertise.
	EffortExpertRequired
)

// String returns a human-readable effort name.
func (e ImplementationEffort) String() string {
	switch e {
	case EffortSimple:
		return "simple"
	case EffortModerate:
		return "moderate"
	case EffortComplex:
		return "complex"
	case EffortExpertRequired:
		return "expert_required"
	default:
		return "unknown"
	}
}

// TimelineImmediate is the timeline value that activates the quick-setup boost.
const TimelineImmediate = "immediate"

// Pricing describes a tool's pricing model.
type Pricing struct {
	// Kind is the pricing tier (free, freemium, paid).
	Kind PricingKind `json:"kind"`

	// StartingPrice is the lowest paid price per billing period.
	// Nil when unknown or not applicable.
	StartingPrice *float64 `json:"starting_price,omitempty"`

	// BillingPeriod is the billing cadence (e.g., "monthly", "yearly").
	BillingPeriod string `json:"billing_period,omitempty"`
}

// ToolRecord is a catalog entry for a single tool.
// Records are treated as immutable during a scoring run.
type ToolRecord struct {
	// ID is the unique catalog identifier.
	ID string `json:"id"`

	// Name is the tool's display name.
	Name string `json:"name"`

	// Category is the tool's primary category (e.g., "communication").
	Category string `json:"category"`

	// Description is a short prose description.
	Description string `json:"description,omitempty"`

	// Tags is a set of free-form labels (e.g., "quick-setup", "innovative").
	Tags []string `json:"tags,omitempty"`

	// Features is the list of notable features.
	Features []string `json:"features,omitempty"`

	// Pricing describes the pricing model.
	Pricing Pricing `json:"pricing"`

	// Rating is the average user rating on a 0-5 scale.
	Rating float64 `json:"rating,omitempty"`

	// ReviewCount is the number of ratings behind Rating.
	ReviewCount int `json:"review_count,omitempty"`
}

// Valid reports whether the record carries the identity fields scoring
// requires. Invalid records are skipped, never fatal.
func (t *ToolRecord) Valid() bool {
	return t.ID != "" && t.Name != ""
}

// RequesterProfile describes who is asking for recommendations.
type RequesterProfile struct {
	// Industry is the requester's industry (e.g., "technology").
	Industry string `json:"industry,omitempty"`

	// CompanySize is the organization size bracket.
	CompanySize CompanySize `json:"company_size"`

	// JobTitle is the requester's role title.
	JobTitle string `json:"job_title,omitempty"`

	// Department is the requester's department (e.g., "engineering").
	Department string `json:"department,omitempty"`

	// Experience is the requester's tooling experience level.
	Experience ExperienceLevel `json:"experience"`

	// PrimaryUseCases is the list of stated use cases.
	PrimaryUseCases []string `json:"primary_use_cases,omitempty"`

	// CurrentStack is the set of tool names already in use.
	// Matching is case-insensitive.
	CurrentStack []string `json:"current_stack,omitempty"`
}

// BehaviorSnapshot captures observed requester behavior.
type BehaviorSnapshot struct {
	// ViewedTools is the list of tool names the requester has viewed.
	ViewedTools []string `json:"viewed_tools,omitempty"`

	// SavedTools is the list of tool names the requester has saved.
	SavedTools []string `json:"saved_tools,omitempty"`

	// SearchHistory is the list of past search queries.
	SearchHistory []string `json:"search_history,omitempty"`

	// CategoryHours maps category name to hours spent browsing it.
	CategoryHours map[string]float64 `json:"category_hours,omitempty"`

	// FeaturePreferences is the list of features the requester favors.
	FeaturePreferences []string `json:"feature_preferences,omitempty"`

	// PriceSensitivity is how price-conscious the requester is (0-1).
	PriceSensitivity float64 `json:"price_sensitivity"`

	// IntegrationImportance is how much integrations matter (0-1).
	IntegrationImportance float64 `json:"integration_importance"`
}

// RecommendationContext carries the requester's stated goals for this request.
type RecommendationContext struct {
	// Intent is what the requester is trying to accomplish.
	Intent Intent `json:"intent"`

	// Goals is the list of stated goals.
	Goals []string `json:"goals,omitempty"`

	// PainPoints is the list of stated pain points.
	PainPoints []string `json:"pain_points,omitempty"`

	// Timeline is the adoption timeline (e.g., "immediate", "this_quarter").
	Timeline string `json:"timeline,omitempty"`

	// BudgetRange is the stated budget range, free-form.
	BudgetRange string `json:"budget_range,omitempty"`
}

// Factor names used to key sub-scores and weights.
const (
	FactorProfile     = "profile"
	FactorBehavior    = "behavior"
	FactorIntegration = "integration"
	FactorPrice       = "price"
	FactorFeatures    = "features"
)

// FactorNames lists all factor names in weighting order.
var FactorNames = []string{FactorProfile, FactorBehavior, FactorIntegration, FactorPrice, FactorFeatures}

// ScoredCandidate is a tool with its computed scores. Candidates are built
// fresh per request and never mutated after scoring.
type ScoredCandidate struct {
	// Tool is the scored catalog entry.
	Tool ToolRecord `json:"tool"`

	// Factors is the per-factor sub-score breakdown, each in [0, 1].
	Factors map[string]float64 `json:"factors"`

	// Score is the combined score in [0, 1].
	Score float64 `json:"score"`

	// Confidence estimates how much behavioral signal backs Score (0-1).
	Confidence float64 `json:"confidence"`

	// Reasons holds up to three short explanation strings.
	Reasons []string `json:"reasons,omitempty"`
}

// ExpectedROI is a rough return-on-investment projection for adopting a tool.
type ExpectedROI struct {
	// TimeSavings is a human-readable weekly time estimate.
	TimeSavings string `json:"time_savings"`

	// CostSavings is an estimated monthly saving in dollars.
	CostSavings float64 `json:"cost_savings"`

	// ProductivityGain is the projected productivity uplift (0-1).
	ProductivityGain float64 `json:"productivity_gain"`

	// ConfidenceLevel mirrors the candidate's confidence (0-1).
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Recommendation is a final ranked output record.
type Recommendation struct {
	// Tool is the recommended catalog entry.
	Tool ToolRecord `json:"tool"`

	// Score is the combined score in [0, 1].
	Score float64 `json:"score"`

	// Rationale is the joined top reasons, possibly empty.
	Rationale string `json:"rationale,omitempty"`

	// UseCaseFit describes how the tool fits the requester's work.
	UseCaseFit string `json:"use_case_fit,omitempty"`

	// Effort classifies the expected implementation effort.
	Effort ImplementationEffort `json:"implementation_effort"`

	// ROI is the projected return on investment.
	ROI ExpectedROI `json:"expected_roi"`
}

// Request is a single recommendation request.
type Request struct {
	// Profile describes the requester.
	Profile RequesterProfile `json:"profile"`

	// Behavior captures the requester's observed behavior.
	Behavior BehaviorSnapshot `json:"behavior"`

	// CurrentTools lists tool names to exclude, case-insensitive.
	// Merged with Profile.CurrentStack.
	CurrentTools []string `json:"current_tools,omitempty"`

	// Context carries the requester's stated goals for this request.
	Context RecommendationContext `json:"context"`

	// Catalog is the snapshot of tools to score against.
	Catalog []ToolRecord `json:"-"`

	// TargetCount is the number of recommendations to return.
	// Zero means use the configured default.
	TargetCount int `json:"target_count,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`

	// Derived lookups, populated once by PrepareDerived.
	currentSet     map[string]struct{}
	viewedByCat    map[string]int
	maxCategoryHrs float64
	prepared       bool
}

// PrepareDerived builds the derived lookups scorers consult.
// The engine calls this once per request; repeated calls are no-ops.
func (r *Request) PrepareDerived() {
	if r.prepared {
		return
	}
	r.prepared = true

	r.currentSet = make(map[string]struct{}, len(r.CurrentTools)+len(r.Profile.CurrentStack))
	for _, name := range r.CurrentTools {
		if n := normalizeName(name); n != "" {
			r.currentSet[n] = struct{}{}
		}
	}
	for _, name := range r.Profile.CurrentStack {
		if n := normalizeName(name); n != "" {
			r.currentSet[n] = struct{}{}
		}
	}

	// Resolve viewed tool names to catalog categories.
	byName := make(map[string]string, len(r.Catalog))
	for i := range r.Catalog {
		byName[normalizeName(r.Catalog[i].Name)] = normalizeName(r.Catalog[i].Category)
	}
	r.viewedByCat = make(map[string]int)
	for _, viewed := range r.Behavior.ViewedTools {
		if cat, ok := byName[normalizeName(viewed)]; ok && cat != "" {
			r.viewedByCat[cat]++
		}
	}

	for _, hrs := range r.Behavior.CategoryHours {
		if hrs > r.maxCategoryHrs {
			r.maxCategoryHrs = hrs
		}
	}
}

// InCurrentStack reports whether the named tool is already in use.
func (r *Request) InCurrentStack(name string) bool {
	_, ok := r.currentSet[normalizeName(name)]
	return ok
}

// CurrentStackSize returns the number of distinct tools already in use.
func (r *Request) CurrentStackSize() int {
	return len(r.currentSet)
}

// CurrentStackNames returns the normalized names of tools already in use.
// Order is unspecified.
func (r *Request) CurrentStackNames() []string {
	names := make([]string, 0, len(r.currentSet))
	for name := range r.currentSet {
		names = append(names, name)
	}
	return names
}

// ViewedInCategory returns how many viewed tools share the given category.
func (r *Request) ViewedInCategory(category string) int {
	return r.viewedByCat[normalizeName(category)]
}

// MaxCategoryHours returns the largest per-category browsing time.
func (r *Request) MaxCategoryHours() float64 {
	return r.maxCategoryHrs
}

// Reason codes attached to empty responses caused by degenerate input.
const (
	// ReasonEmptyCatalog indicates the request carried no catalog.
	ReasonEmptyCatalog = "empty_catalog"
	// ReasonInvalidTargetCount indicates a non-positive target count.
	ReasonInvalidTargetCount = "invalid_target_count"
)

// Response is an ordered recommendation result.
type Response struct {
	// Recommendations is the ordered output, highest score first.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalCandidates is the number of eligible tools that were scored.
	TotalCandidates int `json:"total_candidates"`

	// SkippedTools counts catalog records dropped for missing identity fields.
	SkippedTools int `json:"skipped_tools,omitempty"`

	// ReasonCode explains an empty result caused by degenerate input.
	// Empty for normal results, including genuine "no matches".
	ReasonCode string `json:"reason_code,omitempty"`

	// Metadata carries timing and tracing information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries timing and tracing information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// Intent is the intent the factor weights were selected for.
	Intent string `json:"intent"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// FactorScorer computes one normalized sub-score per tool.
//
// Implementations must be stateless and safe for concurrent use. Missing
// optional tool or profile data contributes neutrally; scorers never fail.
type FactorScorer interface {
	// Name returns the factor identifier (one of the Factor constants).
	Name() string

	// Score returns the sub-score for the tool, clamped to [0, 1].
	Score(tool *ToolRecord, req *Request) float64
}

// normalizeName lowercases and trims a name for case-insensitive matching.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
