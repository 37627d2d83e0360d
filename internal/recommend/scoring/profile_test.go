// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"testing"

	"github.com/toolscout/toolscout/internal/recommend"
)

func prepared(req recommend.Request) *recommend.Request {
	req.PrepareDerived()
	return &req
}

func TestProfileFitCategoryRelevance(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	tool := recommend.ToolRecord{ID: "t", Name: "T", Category: "development"}

	req := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeStartup,
			Experience:  recommend.ExperienceAdvanced,
		},
	})
	// startup x development relevance 0.8 scaled by 0.3, plus the advanced
	// complexity bonus 0.15.
	want := 0.8*0.3 + 0.15
	got := scorer.Score(&tool, req)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %f, want %f", got, want)
	}
}

func TestProfileFitUnknownCategoryDefault(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	tool := recommend.ToolRecord{ID: "t", Name: "T", Category: "quantum-farming"}

	req := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeMedium,
			Experience:  recommend.ExperienceExpert,
		},
	})
	want := 0.3*0.3 + 0.15
	got := scorer.Score(&tool, req)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("unknown category should use the 0.3 default: got %f, want %f", got, want)
	}
}

func TestProfileFitIndustryAndDepartment(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	tool := recommend.ToolRecord{
		ID:       "t",
		Name:     "T",
		Category: "development",
		Tags:     []string{"engineering"},
	}
	base := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeStartup,
			Experience:  recommend.ExperienceAdvanced,
		},
	})
	withBoth := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeStartup,
			Experience:  recommend.ExperienceAdvanced,
			Industry:    "technology",
			Department:  "engineering",
		},
	})

	diff := scorer.Score(&tool, withBoth) - scorer.Score(&tool, base)
	want := 0.2 + 0.2
	if d := diff - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("industry+department bonus = %f, want %f", diff, want)
	}
}

func TestProfileFitComplexityByExperience(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	richTool := recommend.ToolRecord{
		ID:       "t",
		Name:     "T",
		Category: "development",
		Features: make([]string, 10),
	}
	simpleTool := recommend.ToolRecord{
		ID:       "s",
		Name:     "S",
		Category: "development",
		Features: make([]string, 2),
	}

	beginner := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeStartup,
			Experience:  recommend.ExperienceBeginner,
		},
	})

	if scorer.Score(&simpleTool, beginner) <= scorer.Score(&richTool, beginner) {
		t.Error("beginners should prefer simple tools over feature-rich ones")
	}

	expert := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize: recommend.SizeStartup,
			Experience:  recommend.ExperienceExpert,
		},
	})
	if scorer.Score(&richTool, expert) != scorer.Score(&simpleTool, expert) {
		t.Error("experts tolerate any feature count, scores should match")
	}
}

func TestProfileFitUseCaseMatch(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	tool := recommend.ToolRecord{
		ID:          "t",
		Name:        "T",
		Category:    "development",
		Description: "Continuous integration for monorepos",
		Features:    []string{"pipeline caching"},
	}

	without := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{CompanySize: recommend.SizeSmall},
	})
	withMatch := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize:     recommend.SizeSmall,
			PrimaryUseCases: []string{"continuous integration"},
		},
	})

	diff := scorer.Score(&tool, withMatch) - scorer.Score(&tool, without)
	if d := diff - 0.15; d > 1e-9 || d < -1e-9 {
		t.Errorf("use case bonus = %f, want 0.15", diff)
	}
}

func TestProfileFitBounded(t *testing.T) {
	scorer := NewProfileFit(recommend.DefaultKnowledge())
	// Every bonus active at once must still clamp to 1.
	tool := recommend.ToolRecord{
		ID:          "t",
		Name:        "T",
		Category:    "development",
		Tags:        []string{"engineering"},
		Description: "code review automation",
	}
	req := prepared(recommend.Request{
		Profile: recommend.RequesterProfile{
			CompanySize:     recommend.SizeStartup,
			Industry:        "technology",
			Department:      "engineering",
			Experience:      recommend.ExperienceExpert,
			PrimaryUseCases: []string{"code review"},
		},
	})
	got := scorer.Score(&tool, req)
	if got < 0 || got > 1 {
		t.Errorf("score %f outside [0,1]", got)
	}
}
