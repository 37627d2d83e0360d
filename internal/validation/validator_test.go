// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Intent      string  `validate:"omitempty,oneof=discover_new replace_existing consolidate_stack scale_team optimize_workflow"`
	TargetCount int     `validate:"gte=0,lte=100"`
	Sensitivity float64 `validate:"gte=0,lte=1"`
	Industry    string  `validate:"omitempty,max=100"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Intent: "discover_new", TargetCount: 20, Sensitivity: 0.5}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestValidateStructReportsAllFields(t *testing.T) {
	req := sampleRequest{Intent: "invent_everything", TargetCount: 500, Sensitivity: 2}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Fields()) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(err.Fields()))
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("oneof translation missing from %q", err.Error())
	}
	if !strings.Contains(err.Error(), "less than or equal to 100") {
		t.Errorf("lte translation missing from %q", err.Error())
	}
}

func TestValidateStructDetails(t *testing.T) {
	req := sampleRequest{TargetCount: -1}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	details := err.Details()
	fields, ok := details["fields"].([]map[string]interface{})
	if !ok || len(fields) == 0 {
		t.Fatalf("expected field breakdown in details, got %+v", details)
	}
	if fields[0]["field"] != "TargetCount" {
		t.Errorf("expected TargetCount in details, got %v", fields[0]["field"])
	}
}

func TestValidatorSingleton(t *testing.T) {
	if Validator() != Validator() {
		t.Error("Validator must return the same instance")
	}
}
