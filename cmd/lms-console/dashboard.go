package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/openlearn-labs/lms-console/internal/dashboard"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the analytics dashboard",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Dashboard.Enabled {
				return fmt.Errorf("the dashboard is disabled (set DASHBOARD_ENABLED=true)")
			}
			return requireAdmin(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := dashboard.New(a.client, a.logger)
			if err := ctl.Load(cmd.Context()); err != nil {
				return err
			}
			state := ctl.Snapshot()
			out := cmd.OutOrStdout()
			if state.Summary == nil {
				fmt.Fprintln(out, "No dashboard data available.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Metric", "Count"})
			t.AppendRow(table.Row{"Courses", state.Summary.TotalCourses})
			t.AppendRow(table.Row{"Topics", state.Summary.TotalTopics})
			t.AppendRow(table.Row{"Certifications", state.Summary.TotalCertifications})
			t.AppendRow(table.Row{"Jobs", state.Summary.TotalJobs})
			t.AppendRow(table.Row{"Organizations", state.Summary.TotalOrganizations})
			t.AppendRow(table.Row{"Active students", state.Summary.ActiveStudents})
			t.Render()

			if len(state.Activity) == 0 {
				fmt.Fprintln(out, "No recent activity.")
				return nil
			}
			fmt.Fprintln(out, "Recent activity:")
			for _, entry := range state.Activity {
				fmt.Fprintf(out, "  %s  %s %s %s\n",
					entry.OccurredAt.Format("2006-01-02 15:04"),
					entry.Actor, entry.Action, entry.Resource)
			}
			return nil
		},
	}
}
