// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/toolscout/toolscout/internal/recommend"
)

func testTools() []recommend.ToolRecord {
	return []recommend.ToolRecord{
		{ID: "slack", Name: "Slack", Category: "communication"},
		{ID: "figma", Name: "Figma", Category: "design"},
		{ID: "", Name: "Broken", Category: "design"},
		{ID: "no-name", Name: "", Category: "design"},
	}
}

func TestStoreReplaceDropsMalformed(t *testing.T) {
	store := NewStore(zerolog.Nop())

	accepted, skipped := store.Replace(testTools())
	if accepted != 2 {
		t.Errorf("accepted = %d, want 2", accepted)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if store.Size() != 2 {
		t.Errorf("size = %d, want 2", store.Size())
	}
}

func TestStoreByNameCaseInsensitive(t *testing.T) {
	store := NewStore(zerolog.Nop())
	store.Replace(testTools())

	tool, ok := store.ByName("SLACK")
	if !ok {
		t.Fatal("expected to find Slack by uppercase name")
	}
	if tool.ID != "slack" {
		t.Errorf("got tool %s, want slack", tool.ID)
	}
	if _, ok := store.ByName("nonexistent"); ok {
		t.Error("unexpected hit for unknown name")
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore(zerolog.Nop())
	store.Replace(testTools())

	snapshot := store.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("snapshot size = %d, want 2", len(snapshot))
	}
	snapshot[0].Name = "Mutated"

	tool, ok := store.ByName("slack")
	if !ok || tool.Name != "Slack" {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestStoreReplaceSwapsWholesale(t *testing.T) {
	store := NewStore(zerolog.Nop())
	store.Replace(testTools())

	store.Replace([]recommend.ToolRecord{
		{ID: "notion", Name: "Notion", Category: "productivity"},
	})

	if store.Size() != 1 {
		t.Errorf("size after replace = %d, want 1", store.Size())
	}
	if _, ok := store.ByName("slack"); ok {
		t.Error("old catalog entries must be gone after replace")
	}
}

func TestStoreEmptySnapshot(t *testing.T) {
	store := NewStore(zerolog.Nop())
	if snapshot := store.Snapshot(); len(snapshot) != 0 {
		t.Errorf("expected empty snapshot, got %d", len(snapshot))
	}
}
