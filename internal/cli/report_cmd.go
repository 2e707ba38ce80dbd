package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halmaawali/rollbook/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate attendance reports",
	}
	cmd.AddCommand(newReportSummaryCmd(a), newReportSessionCmd(a))
	return cmd
}

func newReportSummaryCmd(a *app) *cobra.Command {
	var htmlPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Attendance matrix over the most recent sessions",
		Long: fmt.Sprintf("Builds the grouped attendance matrix over the %d most recent "+
			"sessions and prints it, or writes a printable HTML document with --html.",
			report.SummarySessionCap),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			summary := report.BuildSummary(
				a.store.GetMembers(ctx),
				a.store.GetGroups(ctx),
				a.store.GetSessions(ctx),
			)

			if htmlPath == "" {
				return report.RenderSummaryText(cmd.OutOrStdout(), summary)
			}

			// Export failures touch no persisted data; rerunning is safe.
			file, err := os.Create(htmlPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", htmlPath, err)
			}
			defer file.Close()
			if err := report.RenderSummaryHTML(file, summary, a.settings.Get(ctx), timeNow()); err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", htmlPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write a printable HTML report to this path")
	return cmd
}

func newReportSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session ID",
		Short: "Present, absent and excused lists for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lists := report.BuildSessionLists(
				a.store.GetMembers(ctx),
				a.store.GetSessions(ctx),
				args[0],
			)
			report.RenderSessionListsText(cmd.OutOrStdout(), lists)
			return nil
		},
	}
}
