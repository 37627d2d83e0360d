// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toolscout/toolscout/internal/recommend"
)

// seedFile is the YAML shape of a catalog seed file.
type seedFile struct {
	Tools []seedTool `yaml:"tools"`
}

type seedTool struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Category    string      `yaml:"category"`
	Description string      `yaml:"description"`
	Tags        []string    `yaml:"tags"`
	Features    []string    `yaml:"features"`
	Pricing     seedPricing `yaml:"pricing"`
	Rating      float64     `yaml:"rating"`
	ReviewCount int         `yaml:"review_count"`
}

type seedPricing struct {
	Kind          string   `yaml:"kind"`
	StartingPrice *float64 `yaml:"starting_price"`
	BillingPeriod string   `yaml:"billing_period"`
}

// LoadSeed reads a YAML seed file into tool records. Validation of identity
// fields happens in Store.Replace, not here, so one malformed entry cannot
// abort the load.
func LoadSeed(path string) ([]recommend.ToolRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML into tool records.
func ParseSeed(data []byte) ([]recommend.ToolRecord, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	tools := make([]recommend.ToolRecord, 0, len(file.Tools))
	for _, t := range file.Tools {
		tools = append(tools, recommend.ToolRecord{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Tags:        t.Tags,
			Features:    t.Features,
			Pricing: recommend.Pricing{
				Kind:          recommend.ParsePricingKind(t.Pricing.Kind),
				StartingPrice: t.Pricing.StartingPrice,
				BillingPeriod: t.Pricing.BillingPeriod,
			},
			Rating:      t.Rating,
			ReviewCount: t.ReviewCount,
		})
	}
	return tools, nil
}
