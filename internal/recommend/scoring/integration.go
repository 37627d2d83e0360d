// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package scoring

import (
	"strings"

	"github.com/toolscout/toolscout/internal/recommend"
)

// Term weights for the integration-fit scorer.
const (
	integrationNeutralPrior = 0.5
	integrationStackScale   = 0.7
	integrationHubBonus     = 0.3
)

// IntegrationFit scores how well a tool connects to the requester's current
// stack. Requesters with no stack get a neutral prior; otherwise the score
// combines the fraction of stack tools the candidate connects to with a hub
// ecosystem bonus.
type IntegrationFit struct {
	kn *recommend.Knowledge
}

// NewIntegrationFit creates the integration-fit scorer.
func NewIntegrationFit(kn *recommend.Knowledge) *IntegrationFit {
	return &IntegrationFit{kn: kn}
}

// Name returns the factor identifier.
func (s *IntegrationFit) Name() string { return recommend.FactorIntegration }

// Score returns the integration-fit sub-score in [0, 1].
func (s *IntegrationFit) Score(tool *recommend.ToolRecord, req *recommend.Request) float64 {
	stack := req.CurrentStackNames()
	if len(stack) == 0 {
		return integrationNeutralPrior
	}

	toolPartners := s.kn.IntegrationsOf(tool.Name)
	connected := 0
	for _, owned := range stack {
		if s.connects(tool.Name, toolPartners, owned) {
			connected++
		}
	}
	score := integrationStackScale * float64(connected) / float64(len(stack))

	for _, hub := range s.kn.HubPlatforms {
		if referencesFold(toolPartners, hub) || strings.EqualFold(tool.Name, hub) {
			score += integrationHubBonus
			break
		}
	}

	return clamp01(score)
}

// connects reports whether the candidate and an owned tool reference each
// other in the known-integrations tables, in either direction.
func (s *IntegrationFit) connects(toolName string, toolPartners []string, owned string) bool {
	if referencesFold(toolPartners, owned) {
		return true
	}
	return referencesFold(s.kn.IntegrationsOf(owned), toolName)
}

// referencesFold reports whether partners contains name, case-insensitively.
func referencesFold(partners []string, name string) bool {
	for _, p := range partners {
		if strings.EqualFold(strings.TrimSpace(p), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

var _ recommend.FactorScorer = (*IntegrationFit)(nil)
