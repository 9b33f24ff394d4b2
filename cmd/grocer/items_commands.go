package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"grocer/internal/config"
	"grocer/internal/store"
)

func newItemsCommand(ctx *commandContext) *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items on a list",
	}

	itemsCmd.AddCommand(newItemsShowCommand(ctx))
	itemsCmd.AddCommand(newItemsAddCommand(ctx))
	itemsCmd.AddCommand(newItemsCheckCommand(ctx, true))
	itemsCmd.AddCommand(newItemsCheckCommand(ctx, false))
	itemsCmd.AddCommand(newItemsRemoveCommand(ctx))
	itemsCmd.AddCommand(newItemsClearCheckedCommand(ctx))

	return itemsCmd
}

func newItemsShowCommand(ctx *commandContext) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the items on a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := lookupTargetList(cmd.Context(), st, cfg, listFlag, false)
				if err != nil {
					return err
				}
				items, err := st.ItemsForList(cmd.Context(), list.ID)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is empty\n", list.Name)
					return nil
				}

				rows := make([][]string, 0, len(items))
				for _, item := range items {
					mark := ""
					if item.Checked {
						mark = "x"
					}
					rows = append(rows, []string{
						strconv.FormatInt(item.ID, 10),
						mark,
						item.Name,
						item.Quantity,
					})
				}
				out := renderTable(
					[]string{"ID", "Done", "Name", "Quantity"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "List name (defaults to the configured default list)")

	return cmd
}

func newItemsAddCommand(ctx *commandContext) *cobra.Command {
	var listFlag string
	var quantity string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := lookupTargetList(cmd.Context(), st, cfg, listFlag, true)
				if err != nil {
					return err
				}
				name := strings.TrimSpace(strings.Join(args, " "))
				item, err := st.AddItem(cmd.Context(), list.ID, name, strings.TrimSpace(quantity))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s (id %d)\n", item.Name, list.Name, item.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "List name (defaults to the configured default list)")
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "", "Quantity display string, e.g. \"2 cans\"")

	return cmd
}

func newItemsCheckCommand(ctx *commandContext, checked bool) *cobra.Command {
	use := "check <item>"
	short := "Mark an item as done"
	verb := "Checked off"
	if !checked {
		use = "uncheck <item>"
		short = "Mark an item as not done"
		verb = "Unchecked"
	}

	var listFlag string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := lookupTargetList(cmd.Context(), st, cfg, listFlag, false)
				if err != nil {
					return err
				}
				item, err := resolveItemArg(cmd.Context(), st, list, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if err := st.SetItemChecked(cmd.Context(), item.ID, checked); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q on %s\n", verb, item.Name, list.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "List name (defaults to the configured default list)")

	return cmd
}

func newItemsRemoveCommand(ctx *commandContext) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "remove <item>",
		Short: "Remove an item from a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := lookupTargetList(cmd.Context(), st, cfg, listFlag, false)
				if err != nil {
					return err
				}
				item, err := resolveItemArg(cmd.Context(), st, list, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if err := st.RemoveItem(cmd.Context(), item.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", item.Name, list.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "List name (defaults to the configured default list)")

	return cmd
}

func newItemsClearCheckedCommand(ctx *commandContext) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "clear-checked",
		Short: "Remove every checked item from a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := lookupTargetList(cmd.Context(), st, cfg, listFlag, false)
				if err != nil {
					return err
				}
				removed, err := st.ClearChecked(cmd.Context(), list.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d checked item(s) from %s\n", removed, list.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "List name (defaults to the configured default list)")

	return cmd
}

// lookupTargetList resolves the --list flag, falling back to the configured
// default list. createIfMissing controls whether a missing list is created
// (adds) or reported as an error (everything else).
func lookupTargetList(ctx context.Context, st *store.Store, cfg *config.Config, name string, createIfMissing bool) (*store.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = cfg.Voice.DefaultList
	}
	if createIfMissing {
		return st.EnsureList(ctx, name)
	}
	list, err := st.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrListNotFound, name)
	}
	return list, nil
}

// resolveItemArg accepts either a numeric item ID or an item name. Name
// matches must be unambiguous within the list.
func resolveItemArg(ctx context.Context, st *store.Store, list *store.List, arg string) (*store.Item, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("item name or id is required")
	}
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		item, err := st.GetItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil || item.ListID != list.ID {
			return nil, fmt.Errorf("%w: id %d on %s", store.ErrItemNotFound, id, list.Name)
		}
		return item, nil
	}
	matches, err := st.MatchItems(ctx, list.ID, arg)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q on %s", store.ErrItemNotFound, arg, list.Name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, match := range matches {
			names = append(names, fmt.Sprintf("%s (id %d)", match.Name, match.ID))
		}
		return nil, fmt.Errorf("%q matches multiple items on %s: %s", arg, list.Name, strings.Join(names, ", "))
	}
}
