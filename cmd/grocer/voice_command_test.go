package main

import (
	"encoding/json"
	"errors"
	"testing"

	"grocer/internal/apply"
)

func TestVoiceDryRunPrintsSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "voice", "--dry-run", "add milk and eggs")
	requireContains(t, out, "Added Milk, Eggs")
}

func TestVoiceDryRunJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "voice", "--dry-run", "--json", "add 2 cans of soup to my costco list")

	var view parsedCommandView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("unmarshal: %v\noutput: %s", err, out)
	}
	if view.Action != "add" {
		t.Fatalf("unexpected action: %q", view.Action)
	}
	if view.TargetList != "costco" {
		t.Fatalf("unexpected target list: %q", view.TargetList)
	}
	if len(view.Items) != 1 || view.Items[0].Name != "Soup" {
		t.Fatalf("unexpected items: %+v", view.Items)
	}
	if view.Items[0].Quantity != 2 || view.Items[0].Unit != "cans" {
		t.Fatalf("unexpected quantity: %+v", view.Items[0])
	}
}

func TestVoiceAddAppliesToDefaultList(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "voice", "add 2 cans of soup and bread")
	requireContains(t, out, "Added 2 cans of Soup, Bread")
	requireContains(t, out, "(Grocery)")

	out = mustRunCLI(t, env, "items", "list")
	requireContains(t, out, "Soup")
	requireContains(t, out, "2 cans")
	requireContains(t, out, "Bread")
}

func TestVoiceCheckOffWithoutMatchFails(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "voice", "add milk")

	_, _, err := runCLI(t, env, "voice", "check off bread")
	if !errors.Is(err, apply.ErrNoMatchingItems) {
		t.Fatalf("expected ErrNoMatchingItems, got %v", err)
	}
}

func TestVoiceListOverrideWins(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "lists", "create", "Costco")
	out := mustRunCLI(t, env, "voice", "--list", "Costco", "add paper towels to my hardware list")
	requireContains(t, out, "(Costco)")

	out = mustRunCLI(t, env, "items", "list", "--list", "Costco")
	requireContains(t, out, "Paper Towels")
}

func TestVoiceRoundTripThroughHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "voice", "add milk and eggs")
	mustRunCLI(t, env, "voice", "check off milk")

	out := mustRunCLI(t, env, "history")
	requireContains(t, out, "Added Milk, Eggs")
	requireContains(t, out, "Checked off Milk")
}
