package main

import (
	"errors"
	"strings"
	"testing"

	"grocer/internal/store"
)

func TestItemsLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "items", "add", "Milk", "--quantity", "1 gallon")
	requireContains(t, out, `Added "Milk" to Grocery`)

	mustRunCLI(t, env, "items", "add", "Eggs")

	out = mustRunCLI(t, env, "items", "list")
	requireContains(t, out, "Milk")
	requireContains(t, out, "1 gallon")
	requireContains(t, out, "Eggs")

	out = mustRunCLI(t, env, "items", "check", "milk")
	requireContains(t, out, `Checked off "Milk" on Grocery`)

	out = mustRunCLI(t, env, "items", "uncheck", "milk")
	requireContains(t, out, `Unchecked "Milk" on Grocery`)

	out = mustRunCLI(t, env, "items", "remove", "eggs")
	requireContains(t, out, `Removed "Eggs" from Grocery`)
}

func TestItemsClearChecked(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "items", "add", "Milk")
	mustRunCLI(t, env, "items", "add", "Bread")
	mustRunCLI(t, env, "items", "check", "milk")

	out := mustRunCLI(t, env, "items", "clear-checked")
	requireContains(t, out, "Cleared 1 checked item(s) from Grocery")

	out = mustRunCLI(t, env, "items", "list")
	requireContains(t, out, "Bread")
	if strings.Contains(out, "Milk") {
		t.Fatalf("expected milk to be cleared, got:\n%s", out)
	}
}

func TestItemsAmbiguousNameFails(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "items", "add", "Whole Milk")
	mustRunCLI(t, env, "items", "add", "Oat Milk")

	_, _, err := runCLI(t, env, "items", "check", "milk")
	if err == nil {
		t.Fatal("expected ambiguity error")
	}
	requireContains(t, err.Error(), "matches multiple items")
}

func TestItemsCheckUnknownFails(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "items", "add", "Milk")

	_, _, err := runCLI(t, env, "items", "check", "bread")
	if !errors.Is(err, store.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemsListUnknownListFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "items", "list", "--list", "Nope")
	if !errors.Is(err, store.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
