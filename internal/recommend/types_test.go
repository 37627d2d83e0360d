// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package recommend

import "testing"

func TestParseEnums(t *testing.T) {
	if ParsePricingKind("Free") != PricingFree {
		t.Error("ParsePricingKind should be case-insensitive")
	}
	if ParsePricingKind("unknown-tier") != PricingPaid {
		t.Error("unknown pricing should default to paid")
	}
	if ParseCompanySize("enterprise") != SizeEnterprise {
		t.Error("ParseCompanySize failed for enterprise")
	}
	if ParseCompanySize("") != SizeSmall {
		t.Error("unknown size should default to small")
	}
	if ParseExperienceLevel("expert") != ExperienceExpert {
		t.Error("ParseExperienceLevel failed for expert")
	}
	if ParseExperienceLevel("whatever") != ExperienceIntermediate {
		t.Error("unknown experience should default to intermediate")
	}
	if ParseIntent("consolidate_stack") != IntentConsolidateStack {
		t.Error("ParseIntent failed for consolidate_stack")
	}
	if ParseIntent("???") != IntentDiscoverNew {
		t.Error("unknown intent should default to discover_new")
	}
}

func TestEnumStringRoundTrip(t *testing.T) {
	intents := []Intent{
		IntentDiscoverNew, IntentReplaceExisting, IntentConsolidateStack,
		IntentScaleTeam, IntentOptimizeWorkflow,
	}
	for _, intent := range intents {
		if ParseIntent(intent.String()) != intent {
			t.Errorf("intent %v does not round-trip through String", intent)
		}
	}
	sizes := []CompanySize{SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise}
	for _, size := range sizes {
		if ParseCompanySize(size.String()) != size {
			t.Errorf("size %v does not round-trip through String", size)
		}
	}
}

func TestToolRecordValid(t *testing.T) {
	tests := []struct {
		name string
		tool ToolRecord
		want bool
	}{
		{"complete", ToolRecord{ID: "a", Name: "A"}, true},
		{"missing id", ToolRecord{Name: "A"}, false},
		{"missing name", ToolRecord{ID: "a"}, false},
		{"empty", ToolRecord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tool.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepareDerivedMergesStacks(t *testing.T) {
	req := Request{
		Profile:      RequesterProfile{CurrentStack: []string{"Slack", "GitHub"}},
		CurrentTools: []string{"slack", "Figma", "  "},
	}
	req.PrepareDerived()

	if !req.InCurrentStack("SLACK") {
		t.Error("stack lookup must be case-insensitive")
	}
	if !req.InCurrentStack("figma") || !req.InCurrentStack("github") {
		t.Error("both sources must be merged into the stack set")
	}
	if req.CurrentStackSize() != 3 {
		t.Errorf("expected 3 distinct stack tools, got %d", req.CurrentStackSize())
	}
}

func TestPrepareDerivedViewedCategories(t *testing.T) {
	req := Request{
		Catalog: []ToolRecord{
			{ID: "a", Name: "Figma", Category: "Design"},
			{ID: "b", Name: "Sketch", Category: "design"},
			{ID: "c", Name: "Slack", Category: "communication"},
		},
		Behavior: BehaviorSnapshot{
			ViewedTools:   []string{"figma", "SKETCH", "not-in-catalog"},
			CategoryHours: map[string]float64{"design": 12, "communication": 3},
		},
	}
	req.PrepareDerived()

	if got := req.ViewedInCategory("DESIGN"); got != 2 {
		t.Errorf("expected 2 viewed design tools, got %d", got)
	}
	if got := req.ViewedInCategory("communication"); got != 0 {
		t.Errorf("expected 0 viewed communication tools, got %d", got)
	}
	if req.MaxCategoryHours() != 12 {
		t.Errorf("expected max category hours 12, got %f", req.MaxCategoryHours())
	}
}

func TestPrepareDerivedIdempotent(t *testing.T) {
	req := Request{CurrentTools: []string{"a"}}
	req.PrepareDerived()
	req.CurrentTools = append(req.CurrentTools, "b")
	req.PrepareDerived()

	if req.InCurrentStack("b") {
		t.Error("second PrepareDerived call must be a no-op")
	}
}
