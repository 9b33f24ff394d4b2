package apply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"grocer/internal/config"
	"grocer/internal/logging"
	"grocer/internal/store"
	"grocer/internal/voice"
)

// ErrNoMatchingItems indicates a complete/uncomplete/remove command matched
// nothing on the resolved list.
var ErrNoMatchingItems = errors.New("no matching items found")

// ErrListNotFound indicates the transcript named a list that could not be
// resolved against the store.
var ErrListNotFound = errors.New("list not found")

// Options adjusts how a command is applied.
type Options struct {
	// ListOverride names the target list explicitly, bypassing the parsed
	// target. It must resolve; unlike spoken fragments it is not created
	// on demand.
	ListOverride string
}

// ItemResult reports what happened to a single parsed item.
type ItemResult struct {
	Item voice.Item
	// Affected is how many stored items the operation touched: 1 for an
	// add, the match count otherwise.
	Affected int
}

// Outcome summarizes one applied command.
type Outcome struct {
	CommandID string
	Action    voice.Action
	List      *store.List
	Results   []ItemResult
	Matched   int
	Missed    int
	Summary   string
}

// Applier resolves target lists and applies parsed commands to the store.
type Applier struct {
	store  *store.Store
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs an Applier. A nil logger is replaced with a no-op logger.
func New(st *store.Store, cfg *config.Config, logger *slog.Logger) *Applier {
	return &Applier{
		store:  st,
		cfg:    cfg,
		logger: logging.OrNop(logger),
	}
}

// Apply executes a parsed command and records it to the voice history.
func (a *Applier) Apply(ctx context.Context, cmd voice.Command, opts Options) (*Outcome, error) {
	commandID := uuid.NewString()
	logger := a.logger.With(
		slog.String("command_id", commandID),
		slog.String("action", string(cmd.Action)),
	)

	list, err := a.resolveList(ctx, cmd, opts)
	if err != nil {
		return nil, err
	}
	logger = logger.With(slog.String("list", list.Name))

	outcome := &Outcome{
		CommandID: commandID,
		Action:    cmd.Action,
		List:      list,
		Summary:   voice.FormatSummary(cmd),
	}

	switch cmd.Action {
	case voice.ActionAdd:
		err = a.applyAdd(ctx, list, cmd.Items, outcome)
	case voice.ActionComplete:
		err = a.applyChecked(ctx, list, cmd.Items, true, outcome)
	case voice.ActionUncomplete:
		err = a.applyChecked(ctx, list, cmd.Items, false, outcome)
	case voice.ActionRemove:
		err = a.applyRemove(ctx, list, cmd.Items, outcome)
	default:
		err = fmt.Errorf("unsupported action %q", cmd.Action)
	}
	if err != nil {
		return nil, err
	}

	if outcome.Matched == 0 && cmd.Action != voice.ActionAdd {
		return nil, fmt.Errorf("%w on %s", ErrNoMatchingItems, list.Name)
	}

	record := store.VoiceRecord{
		ID:       commandID,
		Raw:      cmd.Raw,
		Action:   string(cmd.Action),
		ListID:   list.ID,
		ListName: list.Name,
		Summary:  outcome.Summary,
		Matched:  outcome.Matched,
		Missed:   outcome.Missed,
	}
	if err := a.store.RecordVoiceCommand(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("applied voice command",
		slog.Int("matched", outcome.Matched),
		slog.Int("missed", outcome.Missed),
	)
	return outcome, nil
}

// resolveList picks the target list: an explicit override must already
// exist; a spoken fragment is fuzzy-matched and created when nothing
// resolves; otherwise the configured default list is used, created on first
// use.
func (a *Applier) resolveList(ctx context.Context, cmd voice.Command, opts Options) (*store.List, error) {
	if opts.ListOverride != "" {
		list, err := a.store.ResolveList(ctx, opts.ListOverride, a.cfg.Voice.MinListSimilarity)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, opts.ListOverride)
		}
		return list, nil
	}

	if cmd.TargetList != "" {
		list, err := a.store.ResolveList(ctx, cmd.TargetList, a.cfg.Voice.MinListSimilarity)
		if err != nil {
			return nil, err
		}
		if list != nil {
			return list, nil
		}
		if cmd.Action == voice.ActionAdd {
			// Adding to an unknown list creates it rather than failing;
			// the other actions need existing items anyway.
			return a.store.EnsureList(ctx, cmd.TargetList)
		}
		return nil, fmt.Errorf("%w: %s", ErrListNotFound, cmd.TargetList)
	}

	return a.store.EnsureList(ctx, a.cfg.Voice.DefaultList)
}

func (a *Applier) applyAdd(ctx context.Context, list *store.List, items []voice.Item, outcome *Outcome) error {
	for _, item := range items {
		if item.Name == "" {
			outcome.Results = append(outcome.Results, ItemResult{Item: item})
			outcome.Missed++
			continue
		}
		if _, err := a.store.AddItem(ctx, list.ID, item.Name, item.DisplayQuantity()); err != nil {
			return err
		}
		outcome.Results = append(outcome.Results, ItemResult{Item: item, Affected: 1})
		outcome.Matched++
	}
	return nil
}

func (a *Applier) applyChecked(ctx context.Context, list *store.List, items []voice.Item, checked bool, outcome *Outcome) error {
	for _, item := range items {
		matched, err := a.store.MatchItems(ctx, list.ID, item.Name)
		if err != nil {
			return err
		}
		for _, match := range matched {
			if err := a.store.SetItemChecked(ctx, match.ID, checked); err != nil {
				return err
			}
		}
		a.tally(item, len(matched), outcome)
	}
	return nil
}

func (a *Applier) applyRemove(ctx context.Context, list *store.List, items []voice.Item, outcome *Outcome) error {
	for _, item := range items {
		matched, err := a.store.MatchItems(ctx, list.ID, item.Name)
		if err != nil {
			return err
		}
		for _, match := range matched {
			if err := a.store.RemoveItem(ctx, match.ID); err != nil {
				return err
			}
		}
		a.tally(item, len(matched), outcome)
	}
	return nil
}

func (a *Applier) tally(item voice.Item, affected int, outcome *Outcome) {
	outcome.Results = append(outcome.Results, ItemResult{Item: item, Affected: affected})
	if affected > 0 {
		outcome.Matched += affected
	} else {
		outcome.Missed++
	}
}
