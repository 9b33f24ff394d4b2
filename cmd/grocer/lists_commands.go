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

func newListsCommand(ctx *commandContext) *cobra.Command {
	listsCmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage grocery lists",
	}

	listsCmd.AddCommand(newListsShowCommand(ctx))
	listsCmd.AddCommand(newListsCreateCommand(ctx))
	listsCmd.AddCommand(newListsRenameCommand(ctx))
	listsCmd.AddCommand(newListsDeleteCommand(ctx))

	return listsCmd
}

func newListsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every list with its item counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				lists, err := st.Lists(cmd.Context())
				if err != nil {
					return err
				}
				if len(lists) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No lists yet")
					return nil
				}

				rows := make([][]string, 0, len(lists))
				for _, list := range lists {
					items, err := st.ItemsForList(cmd.Context(), list.ID)
					if err != nil {
						return err
					}
					checked := 0
					for _, item := range items {
						if item.Checked {
							checked++
						}
					}
					rows = append(rows, []string{
						strconv.FormatInt(list.ID, 10),
						list.Name,
						strconv.Itoa(len(items)),
						strconv.Itoa(checked),
					})
				}
				out := renderTable(
					[]string{"ID", "Name", "Items", "Checked"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func newListsCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := st.CreateList(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created list %q (id %d)\n", list.Name, list.ID)
				return nil
			})
		},
	}
}

func newListsRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <list> <new-name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := resolveListArg(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				if err := st.RenameList(cmd.Context(), list.ID, strings.TrimSpace(args[1])); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", list.Name, strings.TrimSpace(args[1]))
				return nil
			})
		},
	}
}

func newListsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list>",
		Short: "Delete a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				list, err := resolveListArg(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				if err := st.DeleteList(cmd.Context(), list.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted list %q\n", list.Name)
				return nil
			})
		},
	}
}

// resolveListArg accepts either a numeric list ID or a list name.
func resolveListArg(ctx context.Context, st *store.Store, arg string) (*store.List, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("list name or id is required")
	}
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		list, err := st.GetList(ctx, id)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, fmt.Errorf("%w: id %d", store.ErrListNotFound, id)
		}
		return list, nil
	}
	list, err := st.ListByName(ctx, arg)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrListNotFound, arg)
	}
	return list, nil
}
