package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List records of a resource",
		Long:  "List one page of a resource collection.\nResources: " + strings.Join(resourceNames(), ", "),
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAdmin(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookupBinding(args[0])
			if err != nil {
				return err
			}
			return b.list(cmd.Context(), a, f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&f.page, "page", 1, "page to show")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search term")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "sort field")
	cmd.Flags().StringVar(&f.order, "order", "asc", "sort direction (asc or desc)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Show one record as JSON",
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAdmin(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookupBinding(args[0])
			if err != nil {
				return err
			}
			return b.get(cmd.Context(), a, args[1], cmd.OutOrStdout())
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <resource> <id> [id...]",
		Short: "Delete one or more records",
		Args:  cobra.MinimumNArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAdmin(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookupBinding(args[0])
			if err != nil {
				return err
			}

			confirm := newTerminalConfirmer(cmd, yes)
			if err := b.remove(cmd.Context(), a, args[1:], confirm); err != nil {
				return err
			}
			if confirm.declined {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled; nothing deleted.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
