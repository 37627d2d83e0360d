// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package catalog

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/toolscout/toolscout/internal/recommend"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close badger: %v", err)
		}
	})
	return db
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := NewSnapshotStore(openTestDB(t))

	tools := []recommend.ToolRecord{
		{ID: "slack", Name: "Slack", Category: "communication", Rating: 4.6},
		{ID: "figma", Name: "Figma", Category: "design"},
	}
	if err := store.Save(tools); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d tools, want 2", len(loaded))
	}
	if loaded[0].ID != "slack" || loaded[0].Rating != 4.6 {
		t.Errorf("loaded tool mismatch: %+v", loaded[0])
	}
}

func TestSnapshotStoreLoadEmpty(t *testing.T) {
	store := NewSnapshotStore(openTestDB(t))

	_, err := store.Load()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSnapshotStoreOverwrite(t *testing.T) {
	store := NewSnapshotStore(openTestDB(t))

	if err := store.Save([]recommend.ToolRecord{{ID: "a", Name: "A"}}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save([]recommend.ToolRecord{{ID: "b", Name: "B"}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b" {
		t.Errorf("expected latest snapshot only, got %+v", loaded)
	}
}
