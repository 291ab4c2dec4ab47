package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openlearn-labs/lms-console/pkg/storage"
)

func newArtifactStore(a *app) (*storage.ArtifactStore, error) {
	return storage.NewArtifactStore(a.cfg.Export.Dir)
}

func newExportCmd(a *app) *cobra.Command {
	var f listFlags
	var format string

	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Export one page of a resource to CSV or PDF",
		Long:  "Export the requested list page to a file under the export directory.\nResources: " + strings.Join(resourceNames(), ", "),
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Export.Enabled {
				return fmt.Errorf("exports are disabled (set EXPORT_ENABLED=true)")
			}
			return requireAdmin(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookupBinding(args[0])
			if err != nil {
				return err
			}
			path, err := b.export(cmd.Context(), a, f, strings.ToLower(format))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv or pdf)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to export")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search term")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "sort field")
	cmd.Flags().StringVar(&f.order, "order", "asc", "sort direction (asc or desc)")
	return cmd
}
