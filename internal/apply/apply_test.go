package apply_test

import (
	"context"
	"errors"
	"testing"

	"grocer/internal/apply"
	"grocer/internal/testsupport"
	"grocer/internal/voice"
)

func TestApplyAddToDefaultList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	outcome, err := applier.Apply(ctx, voice.Parse("add milk and 2 cans of soup"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.List == nil || outcome.List.Name != cfg.Voice.DefaultList {
		t.Fatalf("expected default list, got %#v", outcome.List)
	}
	if outcome.Matched != 2 {
		t.Fatalf("expected 2 added items, got %d", outcome.Matched)
	}
	if outcome.Summary != "Added Milk, 2 cans of Soup" {
		t.Fatalf("unexpected summary: %q", outcome.Summary)
	}

	items, err := st.ItemsForList(ctx, outcome.List.ID)
	if err != nil {
		t.Fatalf("ItemsForList failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(items))
	}
	if items[1].Name != "Soup" || items[1].Quantity != "2 cans" {
		t.Fatalf("unexpected stored item: %#v", items[1])
	}
}

func TestApplyAddCreatesSpokenList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	outcome, err := applier.Apply(ctx, voice.Parse("add milk to costco list"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.List.Name != "costco" {
		t.Fatalf("expected costco list, got %q", outcome.List.Name)
	}

	// A later command resolves the same list case-insensitively.
	outcome, err = applier.Apply(ctx, voice.Parse("add eggs to Costco list"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	items, err := st.ItemsForList(ctx, outcome.List.ID)
	if err != nil {
		t.Fatalf("ItemsForList failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both items on costco list, got %d", len(items))
	}
}

func TestApplyCompleteMatchesSubstring(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	list := testsupport.NewList(t, st, cfg.Voice.DefaultList)
	whole := testsupport.NewItem(t, st, list.ID, "Whole Milk", "")
	choc := testsupport.NewItem(t, st, list.ID, "Milk Chocolate", "")
	eggs := testsupport.NewItem(t, st, list.ID, "Eggs", "")

	outcome, err := applier.Apply(ctx, voice.Parse("check off milk"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.Matched != 2 {
		t.Fatalf("expected 2 matched items, got %d", outcome.Matched)
	}

	for _, id := range []int64{whole.ID, choc.ID} {
		item, err := st.GetItem(ctx, id)
		if err != nil || item == nil || !item.Checked {
			t.Fatalf("expected item %d checked, got %#v err=%v", id, item, err)
		}
	}
	item, err := st.GetItem(ctx, eggs.ID)
	if err != nil || item == nil || item.Checked {
		t.Fatalf("expected eggs unchecked, got %#v err=%v", item, err)
	}
}

func TestApplyUncompleteAndRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	list := testsupport.NewList(t, st, cfg.Voice.DefaultList)
	bread := testsupport.NewItem(t, st, list.ID, "Bread", "")
	testsupport.NewItem(t, st, list.ID, "Cheese", "")

	if _, err := applier.Apply(ctx, voice.Parse("check off bread"), apply.Options{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := applier.Apply(ctx, voice.Parse("uncheck bread"), apply.Options{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	item, err := st.GetItem(ctx, bread.ID)
	if err != nil || item == nil || item.Checked {
		t.Fatalf("expected bread unchecked, got %#v err=%v", item, err)
	}

	outcome, err := applier.Apply(ctx, voice.Parse("remove cheese"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.Matched != 1 {
		t.Fatalf("expected 1 removed item, got %d", outcome.Matched)
	}
	items, err := st.ItemsForList(ctx, list.ID)
	if err != nil {
		t.Fatalf("ItemsForList failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Bread" {
		t.Fatalf("unexpected remaining items: %#v", items)
	}
}

func TestApplyNoMatchingItems(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)

	testsupport.NewList(t, st, cfg.Voice.DefaultList)

	_, err := applier.Apply(context.Background(), voice.Parse("check off caviar"), apply.Options{})
	if !errors.Is(err, apply.ErrNoMatchingItems) {
		t.Fatalf("expected ErrNoMatchingItems, got %v", err)
	}
}

func TestApplyUnknownListForRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)

	_, err := applier.Apply(context.Background(), voice.Parse("remove milk from the pantry on my pantry list"), apply.Options{})
	if !errors.Is(err, apply.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestApplyListOverride(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	costco := testsupport.NewList(t, st, "Costco")

	outcome, err := applier.Apply(ctx, voice.Parse("add milk to my weekend list"), apply.Options{ListOverride: "costco"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.List.ID != costco.ID {
		t.Fatalf("override should win over parsed target, got %#v", outcome.List)
	}

	if _, err := applier.Apply(ctx, voice.Parse("add milk"), apply.Options{ListOverride: "nope"}); !errors.Is(err, apply.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound for unknown override, got %v", err)
	}
}

func TestApplyRecordsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	applier := apply.New(st, cfg, nil)
	ctx := context.Background()

	outcome, err := applier.Apply(ctx, voice.Parse("add milk"), apply.Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if outcome.CommandID == "" {
		t.Fatal("expected a command ID")
	}

	records, err := st.RecentVoiceCommands(ctx, 5)
	if err != nil {
		t.Fatalf("RecentVoiceCommands failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != outcome.CommandID || rec.Action != "add" || rec.Summary != "Added Milk" {
		t.Fatalf("unexpected record: %#v", rec)
	}
}
