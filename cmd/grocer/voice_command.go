package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grocer/internal/apply"
	"grocer/internal/config"
	"grocer/internal/store"
	"grocer/internal/voice"
)

type parsedItemView struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	OriginalText string  `json:"original_text"`
}

type parsedCommandView struct {
	Action     string           `json:"action"`
	Items      []parsedItemView `json:"items"`
	TargetList string           `json:"target_list,omitempty"`
	Raw        string           `json:"raw"`
	Summary    string           `json:"summary"`
}

type voiceOutcomeView struct {
	Command   parsedCommandView `json:"command"`
	CommandID string            `json:"command_id"`
	List      string            `json:"list"`
	Matched   int               `json:"matched"`
	Missed    int               `json:"missed"`
}

func newVoiceCommand(ctx *commandContext) *cobra.Command {
	var listFlag string
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "voice <transcript>",
		Short: "Apply a spoken command to a grocery list",
		Long: `Parse a speech transcript into a structured command and apply it.

Examples:
  grocer voice "add milk and eggs"
  grocer voice "add 2 cans of soup to my costco list"
  grocer voice "check off bread"
  grocer voice --dry-run "remove cheese and crackers"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript := voice.CleanTranscript(strings.Join(args, " "))
			parsed := voice.Parse(transcript)

			if dryRun {
				if jsonOut {
					return writeJSON(cmd, commandView(parsed))
				}
				fmt.Fprintln(cmd.OutOrStdout(), voice.FormatSummary(parsed))
				return nil
			}

			return ctx.withApplier(func(cfg *config.Config, st *store.Store, applier *apply.Applier) error {
				outcome, err := applier.Apply(cmd.Context(), parsed, apply.Options{ListOverride: listFlag})
				if err != nil {
					if errors.Is(err, apply.ErrNoMatchingItems) || errors.Is(err, apply.ErrListNotFound) {
						return err
					}
					return fmt.Errorf("apply voice command: %w", err)
				}

				if jsonOut {
					return writeJSON(cmd, voiceOutcomeView{
						Command:   commandView(parsed),
						CommandID: outcome.CommandID,
						List:      outcome.List.Name,
						Matched:   outcome.Matched,
						Missed:    outcome.Missed,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", outcome.Summary, outcome.List.Name)
				if outcome.Missed > 0 {
					fmt.Fprintf(out, "%d item(s) had no match\n", outcome.Missed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "Target list name (overrides the spoken list)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse the transcript without touching the store")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the parsed command and outcome as JSON")

	return cmd
}

func commandView(parsed voice.Command) parsedCommandView {
	items := make([]parsedItemView, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, parsedItemView{
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			OriginalText: item.OriginalText,
		})
	}
	return parsedCommandView{
		Action:     string(parsed.Action),
		Items:      items,
		TargetList: parsed.TargetList,
		Raw:        parsed.Raw,
		Summary:    voice.FormatSummary(parsed),
	}
}
