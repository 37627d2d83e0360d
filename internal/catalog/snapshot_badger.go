// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/toolscout/toolscout/internal/recommend"
)

// Key for the persisted catalog snapshot.
const snapshotKey = "catalog:snapshot"

// ErrNoSnapshot indicates no catalog snapshot has been persisted yet.
var ErrNoSnapshot = errors.New("no catalog snapshot stored")

// persistedSnapshot is the stored snapshot envelope.
type persistedSnapshot struct {
	SavedAt time.Time              `json:"saved_at"`
	Tools   []recommend.ToolRecord `json:"tools"`
}

// SnapshotStore persists the last-known catalog in BadgerDB so a restart can
// serve recommendations before the next ingest arrives.
type SnapshotStore struct {
	db *badger.DB
}

// NewSnapshotStore creates a badger-backed snapshot store.
func NewSnapshotStore(db *badger.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save persists the catalog snapshot, replacing any previous one.
func (s *SnapshotStore) Save(tools []recommend.ToolRecord) error {
	data, err := json.Marshal(persistedSnapshot{
		SavedAt: time.Now().UTC(),
		Tools:   tools,
	})
	if err != nil {
		return fmt.Errorf("marshal catalog snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(snapshotKey), data); err != nil {
			return fmt.Errorf("set catalog snapshot: %w", err)
		}
		return nil
	})
}

// Load returns the persisted catalog snapshot, or ErrNoSnapshot when none
// has been saved.
func (s *SnapshotStore) Load() ([]recommend.ToolRecord, error) {
	var snapshot persistedSnapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("get catalog snapshot: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snapshot)
		})
	})
	if err != nil {
		return nil, err
	}

	return snapshot.Tools, nil
}
