package store

import (
	"encoding/json"
	"fmt"

	"github.com/kdfca/academy/internal/model"
)

// snapshotVersion is written into every persisted blob.
// Blobs with any other version are ignored at rehydrate.
const snapshotVersion = 1

// itemsSnapshot is the persisted form of a record collection.
// Status and error are transient and never written.
type itemsSnapshot[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

type counterSnapshot struct {
	Version int `json:"version"`
	Value   int `json:"value"`
}

func encodeItems[T any](items []T) ([]byte, error) {
	return json.Marshal(itemsSnapshot[T]{Version: snapshotVersion, Items: items})
}

func decodeItems[T any](blob []byte) ([]T, error) {
	if err := checkVersion(blob); err != nil {
		return nil, err
	}
	var snap itemsSnapshot[T]
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, err
	}
	if snap.Items == nil {
		snap.Items = []T{}
	}
	return snap.Items, nil
}

func encodeCounter(value int) ([]byte, error) {
	return json.Marshal(counterSnapshot{Version: snapshotVersion, Value: value})
}

func decodeCounter(blob []byte) (int, error) {
	if err := checkVersion(blob); err != nil {
		return 0, err
	}
	var snap counterSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return 0, err
	}
	return snap.Value, nil
}

func checkVersion(blob []byte) error {
	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(blob, &header); err != nil {
		return err
	}
	if header.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", header.Version)
	}
	return nil
}

// encodeLocked serializes the persisted part of one collection.
// Callers must hold s.mu.
func (s *Store) encodeLocked(kind model.CollectionKind) ([]byte, error) {
	switch kind {
	case model.KindRegistrations:
		return encodeItems(s.registrations.Items)
	case model.KindCoaches:
		return encodeItems(s.coaches.Items)
	case model.KindAuth:
		return encodeItems(s.auth.Items)
	case model.KindTodo:
		return encodeItems(s.todos.Items)
	case model.KindCounter:
		return encodeCounter(s.counter)
	}
	return nil, fmt.Errorf("%w: %s", model.ErrUnknownCollection, kind)
}

// restore applies a persisted blob to one collection, leaving transient fields at their defaults
func (s *Store) restore(kind model.CollectionKind, blob []byte) error {
	switch kind {
	case model.KindRegistrations:
		items, err := decodeItems[model.PlayerRegistration](blob)
		if err != nil {
			return err
		}
		s.registrations.Items = items
		for _, r := range items {
			s.ids.Observe(r.ID)
		}
	case model.KindCoaches:
		items, err := decodeItems[model.CoachApplication](blob)
		if err != nil {
			return err
		}
		s.coaches.Items = items
		for _, c := range items {
			s.ids.Observe(c.ID)
		}
	case model.KindAuth:
		items, err := decodeItems[model.UserAccount](blob)
		if err != nil {
			return err
		}
		s.auth.Items = items
		for _, u := range items {
			s.ids.Observe(u.ID)
		}
	case model.KindTodo:
		items, err := decodeItems[model.TodoItem](blob)
		if err != nil {
			return err
		}
		s.todos.Items = items
		for _, t := range items {
			s.ids.Observe(t.ID)
		}
	case model.KindCounter:
		value, err := decodeCounter(blob)
		if err != nil {
			return err
		}
		s.counter = value
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownCollection, kind)
	}
	return nil
}
