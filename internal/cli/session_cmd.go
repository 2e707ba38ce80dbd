package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/halmaawali/rollbook/internal/calculator"
	"github.com/halmaawali/rollbook/internal/models"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and browse attendance sessions",
	}
	cmd.AddCommand(
		newSessionRecordCmd(a),
		newSessionListCmd(a),
		newSessionRemoveCmd(a),
	)
	return cmd
}

func newSessionRecordCmd(a *app) *cobra.Command {
	var (
		dateFlag string
		topic    string
		absent   []string
		excused  []string
		skip     []string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record attendance for one session",
		Long: "Saves a session covering the whole roster. Every member is marked " +
			"present unless listed via --absent, --excused or --skip (no record). " +
			"Members may be referenced by id or by exact name.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			date := models.DateOf(timeNow())
			if dateFlag != "" {
				parsed, err := models.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				date = parsed
			}

			members := a.store.GetMembers(ctx)
			if len(members) == 0 {
				return fmt.Errorf("the roster is empty; add members first")
			}

			statusByID := make(map[string]models.AttendanceStatus, len(members))
			for _, member := range members {
				statusByID[member.ID] = models.StatusPresent
			}
			for _, ref := range absent {
				id, err := resolveMember(members, ref)
				if err != nil {
					return err
				}
				statusByID[id] = models.StatusAbsent
			}
			for _, ref := range excused {
				id, err := resolveMember(members, ref)
				if err != nil {
					return err
				}
				statusByID[id] = models.StatusExcused
			}
			for _, ref := range skip {
				id, err := resolveMember(members, ref)
				if err != nil {
					return err
				}
				delete(statusByID, id)
			}

			// Keep roster order so saved records are deterministic.
			records := make([]models.AttendanceRecord, 0, len(statusByID))
			for _, member := range members {
				status, ok := statusByID[member.ID]
				if !ok {
					continue
				}
				records = append(records, models.AttendanceRecord{
					MemberID: member.ID,
					Status:   status,
				})
			}

			session, err := a.sessions.RecordSession(ctx, date, topic, records)
			if err != nil {
				return err
			}

			stats := calculator.SessionStats(session)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded session %s for %s: %d present, %d absent, %d excused\n",
				session.ID, session.Date, stats.TotalPresent, stats.TotalAbsent, stats.TotalExcused)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Session date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&topic, "topic", "", "Optional session topic")
	cmd.Flags().StringSliceVar(&absent, "absent", nil, "Members (id or name) to mark absent")
	cmd.Flags().StringSliceVar(&excused, "excused", nil, "Members (id or name) to mark excused")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Members (id or name) to leave without a record")
	return cmd
}

func newSessionListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions := a.sessions.Sessions(cmd.Context())
			sort.SliceStable(sessions, func(i, j int) bool {
				return sessions[i].Date.After(sessions[j].Date.Time)
			})

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions recorded")
				return nil
			}
			avg := calculator.AverageAttendance(sessions)
			for _, session := range sessions {
				topic := session.Topic
				if topic == "" {
					topic = "-"
				}
				fmt.Fprintf(out, "%s  %s  %s  %d/%d present (%d%%)\n",
					session.ID, session.Date, topic,
					calculator.PresentCount(session), len(session.Records),
					calculator.AttendancePercentage(session))
			}
			fmt.Fprintf(out, "%d sessions, average attendance %d%%\n", len(sessions), avg)
			return nil
		},
	}
}

func newSessionRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete one session permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.DeleteSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session removed")
			return nil
		},
	}
}

// resolveMember maps an id or exact name to a member id. Names shared by
// several members are rejected as ambiguous.
func resolveMember(members []models.Member, ref string) (string, error) {
	var matches []string
	for _, member := range members {
		if member.ID == ref {
			return member.ID, nil
		}
		if member.Name == ref {
			matches = append(matches, member.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no roster member matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d members, use an id", ref, len(matches))
	}
}
