package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"grocer/internal/config"
	"grocer/internal/store"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently applied voice commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				effective := limit
				if effective <= 0 {
					effective = cfg.Voice.HistoryLimit
				}
				records, err := st.RecentVoiceCommands(cmd.Context(), effective)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No voice commands recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						rec.CreatedAt.Local().Format("2006-01-02 15:04"),
						rec.Action,
						rec.ListName,
						rec.Summary,
						strconv.Itoa(rec.Matched),
						strconv.Itoa(rec.Missed),
					})
				}
				out := renderTable(
					[]string{"When", "Action", "List", "Summary", "Matched", "Missed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to show (defaults to the configured limit)")

	return cmd
}
