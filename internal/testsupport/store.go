package testsupport

import (
	"context"
	"testing"

	"grocer/internal/config"
	"grocer/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewList creates a list for tests using the provided store.
func NewList(t testing.TB, st *store.Store, name string) *store.List {
	t.Helper()

	list, err := st.CreateList(context.Background(), name)
	if err != nil {
		t.Fatalf("store.CreateList: %v", err)
	}
	return list
}

// NewItem adds an item for tests using the provided store.
func NewItem(t testing.TB, st *store.Store, listID int64, name, quantity string) *store.Item {
	t.Helper()

	item, err := st.AddItem(context.Background(), listID, name, quantity)
	if err != nil {
		t.Fatalf("store.AddItem: %v", err)
	}
	return item
}
