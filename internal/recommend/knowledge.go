// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import "strings"

// Knowledge holds the immutable lookup tables the factor scorers consult.
// It is injected at engine construction so tests can substitute fixtures.
// All lookups are keyed by lowercased, trimmed strings.
type Knowledge struct {
	// CategoryRelevance maps company size to per-category base relevance.
	CategoryRelevance map[CompanySize]map[string]float64

	// IndustryCategories maps an industry to its preferred tool categories.
	IndustryCategories map[string][]string

	// DepartmentFeatures maps a department to its required feature keywords.
	DepartmentFeatures map[string][]string

	// Integrations maps a known tool name to its integration partners.
	Integrations map[string][]string

	// GenericIntegrations is assumed for tools absent from Integrations.
	GenericIntegrations []string

	// HubPlatforms are ecosystems whose presence earns the hub bonus.
	HubPlatforms []string

	// FreeBonus and FreemiumBonus are size-dependent price bonuses.
	FreeBonus     map[CompanySize]float64
	FreemiumBonus map[CompanySize]float64

	// BudgetCeilings maps company size to a monthly per-seat budget ceiling
	// for paid tools.
	BudgetCeilings map[CompanySize]float64

	// CostSavingsBase maps company size to a monthly cost-savings base.
	CostSavingsBase map[CompanySize]float64

	// TimeMultiplier maps company size to the time-savings scale factor.
	TimeMultiplier map[CompanySize]float64

	// AutomationCategories are categories that imply workflow automation
	// and earn the higher time-savings base.
	AutomationCategories []string
}

// DefaultKnowledge returns the built-in lookup tables.
func DefaultKnowledge() *Knowledge {
	return &Knowledge{
		CategoryRelevance: map[CompanySize]map[string]float64{
			SizeStartup: {
				"communication":      0.9,
				"project-management": 0.9,
				"development":        0.8,
				"marketing":          0.7,
				"design":             0.6,
				"analytics":          0.5,
				"finance":            0.4,
				"hr":                 0.3,
			},
			SizeSmall: {
				"communication":      0.8,
				"project-management": 0.9,
				"development":        0.7,
				"marketing":          0.8,
				"design":             0.6,
				"analytics":          0.6,
				"finance":            0.6,
				"hr":                 0.5,
			},
			SizeMedium: {
				"communication":      0.7,
				"project-management": 0.8,
				"development":        0.7,
				"marketing":          0.7,
				"design":             0.6,
				"analytics":          0.8,
				"finance":            0.7,
				"hr":                 0.7,
			},
			SizeLarge: {
				"communication":      0.6,
				"project-management": 0.7,
				"development":        0.7,
				"marketing":          0.6,
				"design":             0.5,
				"analytics":          0.9,
				"finance":            0.8,
				"hr":                 0.8,
			},
			SizeEnterprise: {
				"communication":      0.6,
				"project-management": 0.6,
				"development":        0.7,
				"marketing":          0.5,
				"design":             0.5,
				"analytics":          0.9,
				"finance":            0.9,
				"hr":                 0.9,
			},
		},
		IndustryCategories: map[string][]string{
			"technology": {"development", "analytics", "project-management"},
			"marketing":  {"marketing", "analytics", "design"},
			"finance":    {"finance", "analytics", "security"},
			"healthcare": {"hr", "communication", "security"},
			"education":  {"communication", "project-management", "design"},
			"retail":     {"marketing", "analytics", "finance"},
			"consulting": {"project-management", "communication", "analytics"},
		},
		DepartmentFeatures: map[string][]string{
			"engineering": {"api", "version control", "ci/cd", "code review", "automation"},
			"marketing":   {"campaigns", "analytics", "social media", "email", "seo"},
			"sales":       {"crm", "pipeline", "email", "reporting", "forecasting"},
			"design":      {"prototyping", "collaboration", "assets", "feedback"},
			"hr":          {"onboarding", "payroll", "recruiting", "performance"},
			"finance":     {"invoicing", "expenses", "reporting", "budgeting"},
			"operations":  {"automation", "workflows", "reporting", "integrations"},
		},
		Integrations: map[string][]string{
			"slack":      {"google drive", "github", "jira", "zoom", "asana", "zapier"},
			"github":     {"slack", "jira", "vscode", "circleci", "zapier"},
			"jira":       {"slack", "github", "confluence", "bitbucket", "zapier"},
			"notion":     {"slack", "google drive", "zapier", "figma"},
			"figma":      {"slack", "notion", "jira", "zeplin"},
			"zoom":       {"slack", "google calendar", "outlook", "zapier"},
			"salesforce": {"slack", "outlook", "zapier", "docusign"},
			"hubspot":    {"slack", "gmail", "zapier", "salesforce"},
			"asana":      {"slack", "google drive", "zapier", "github"},
			"trello":     {"slack", "google drive", "zapier", "github"},
		},
		GenericIntegrations: []string{"api", "webhook", "zapier"},
		HubPlatforms:        []string{"slack", "zapier", "google workspace", "microsoft teams"},
		FreeBonus: map[CompanySize]float64{
			SizeStartup:    0.5,
			SizeSmall:      0.4,
			SizeMedium:     0.3,
			SizeLarge:      0.2,
			SizeEnterprise: 0.2,
		},
		FreemiumBonus: map[CompanySize]float64{
			SizeStartup:    0.4,
			SizeSmall:      0.35,
			SizeMedium:     0.3,
			SizeLarge:      0.2,
			SizeEnterprise: 0.2,
		},
		BudgetCeilings: map[CompanySize]float64{
			SizeStartup:    25,
			SizeSmall:      50,
			SizeMedium:     100,
			SizeLarge:      250,
			SizeEnterprise: 500,
		},
		CostSavingsBase: map[CompanySize]float64{
			SizeStartup:    200,
			SizeSmall:      500,
			SizeMedium:     1500,
			SizeLarge:      4000,
			SizeEnterprise: 10000,
		},
		TimeMultiplier: map[CompanySize]float64{
			SizeStartup:    1.0,
			SizeSmall:      1.25,
			SizeMedium:     1.5,
			SizeLarge:      2.0,
			SizeEnterprise: 2.5,
		},
		AutomationCategories: []string{"automation", "operations", "development", "analytics"},
	}
}

// CategoryWeight returns the base relevance of a category for a company size,
// or 0.3 when the pair is unknown.
func (k *Knowledge) CategoryWeight(size CompanySize, category string) float64 {
	if table, ok := k.CategoryRelevance[size]; ok {
		if w, ok := table[strings.ToLower(strings.TrimSpace(category))]; ok {
			return w
		}
	}
	return 0.3
}

// IndustryPrefers reports whether the category or any tag matches the
// industry's preferred categories.
func (k *Knowledge) IndustryPrefers(industry, category string, tags []string) bool {
	prefs, ok := k.IndustryCategories[strings.ToLower(strings.TrimSpace(industry))]
	if !ok {
		return false
	}
	cat := strings.ToLower(strings.TrimSpace(category))
	for _, p := range prefs {
		if p == cat {
			return true
		}
		for _, tag := range tags {
			if strings.EqualFold(tag, p) {
				return true
			}
		}
	}
	return false
}

// RequiredFeatures returns the required-feature keywords for a department.
func (k *Knowledge) RequiredFeatures(department string) []string {
	return k.DepartmentFeatures[strings.ToLower(strings.TrimSpace(department))]
}

// IntegrationsOf returns the known integration partners for a tool name,
// falling back to the generic list for unknown tools.
func (k *Knowledge) IntegrationsOf(name string) []string {
	if partners, ok := k.Integrations[strings.ToLower(strings.TrimSpace(name))]; ok {
		return partners
	}
	return k.GenericIntegrations
}

// IsAutomationCategory reports whether the category implies automation.
func (k *Knowledge) IsAutomationCategory(category string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	for _, c := range k.AutomationCategories {
		if c == cat {
			return true
		}
	}
	return false
}
