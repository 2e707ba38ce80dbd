// Package report turns the roster, groups and a window of sessions into
// tabular layouts for terminal display, printing and export.
//
// Two modes exist: a summary matrix over the most recent sessions, and
// per-status name lists for a single session. Builders are stateless
// functions of their inputs and never fail on stale references or unknown
// ids; the worst case is an empty report.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/halmaawali/rollbook/internal/calculator"
	"github.com/halmaawali/rollbook/internal/models"
)

// SummarySessionCap bounds the summary report to the most recent sessions
// so the printed table fits one landscape page.
const SummarySessionCap = 10

// UnassignedLabel heads the block of members without a group.
const UnassignedLabel = "غير منضمين لمجموعة"

// statusGlyphs is the single source of truth for rendering a status in
// any report surface.
var statusGlyphs = map[models.AttendanceStatus]string{
	models.StatusPresent:  "✓",
	models.StatusAbsent:   "✕",
	models.StatusExcused:  "ع",
	calculator.StatusNone: "-",
}

// Glyph returns the display symbol for a status. Unknown values render
// the same as "no record".
func Glyph(status models.AttendanceStatus) string {
	if glyph, ok := statusGlyphs[status]; ok {
		return glyph
	}
	return statusGlyphs[calculator.StatusNone]
}

// arabicWeekdays maps time.Weekday to its Arabic abbreviation.
var arabicWeekdays = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// SessionColumn is the header metadata of one session column. The three
// display pieces (weekday, topic, month/day) are carried separately so
// consumers can re-render them.
type SessionColumn struct {
	SessionID string
	Date      models.Date
	Weekday   string
	MonthDay  string
	Topic     string
}

// MemberRow is one member's line in the summary matrix. Cells align with
// the report's Columns; Number runs continuously across all blocks.
type MemberRow struct {
	Number       int
	MemberID     string
	Name         string
	Cells        []models.AttendanceStatus
	PresentCount int
	Percentage   int
}

// GroupBlock is a labelled run of member rows. GroupID is empty for the
// trailing unassigned block.
type GroupBlock struct {
	GroupID string
	Label   string
	Rows    []MemberRow
}

// Summary is the full summary-mode report.
type Summary struct {
	Columns []SessionColumn
	Blocks  []GroupBlock
}

// SessionLists is the single-session report: member names per status,
// each list ordered as the session's records and numbered from 1 by the
// renderer. Records for members no longer on the roster are dropped.
type SessionLists struct {
	SessionID string
	Date      models.Date
	Topic     string
	Present   []string
	Absent    []string
	Excused   []string
}

// newColumn derives the header metadata for one session.
func newColumn(session models.MeetingSession) SessionColumn {
	date := session.Date
	return SessionColumn{
		SessionID: session.ID,
		Date:      date,
		Weekday:   arabicWeekdays[date.Weekday()],
		MonthDay:  fmt.Sprintf("%d/%d", date.Day(), int(date.Month())),
		Topic:     session.Topic,
	}
}

// recentSessions returns up to SummarySessionCap sessions ordered by date
// descending. Ties keep their input order so the result is deterministic.
func recentSessions(sessions []models.MeetingSession) []models.MeetingSession {
	sorted := make([]models.MeetingSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	if len(sorted) > SummarySessionCap {
		sorted = sorted[:SummarySessionCap]
	}
	return sorted
}

// BuildSummary lays out the summary matrix: one column per included
// session, one block per group in stored order plus a final unassigned
// block, rows in roster order with continuous numbering. Per-row counts
// cover exactly the included session window, not full history.
func BuildSummary(members []models.Member, groups []models.Group, sessions []models.MeetingSession) Summary {
	included := recentSessions(sessions)

	columns := make([]SessionColumn, len(included))
	for i, session := range included {
		columns[i] = newColumn(session)
	}

	known := make(map[string]bool, len(groups))
	for _, group := range groups {
		known[group.ID] = true
	}

	// Members with no group, or whose group no longer exists, fall into
	// the unassigned block.
	byGroup := make(map[string][]models.Member)
	var unassigned []models.Member
	for _, member := range members {
		if member.GroupID != "" && known[member.GroupID] {
			byGroup[member.GroupID] = append(byGroup[member.GroupID], member)
		} else {
			unassigned = append(unassigned, member)
		}
	}

	summary := Summary{Columns: columns}
	number := 0

	appendBlock := func(groupID, label string, blockMembers []models.Member) {
		if len(blockMembers) == 0 {
			return
		}
		block := GroupBlock{GroupID: groupID, Label: label}
		for _, member := range blockMembers {
			number++
			row := MemberRow{
				Number:   number,
				MemberID: member.ID,
				Name:     member.Name,
				Cells:    make([]models.AttendanceStatus, len(included)),
			}
			for i, session := range included {
				status := calculator.StatusOf(session, member.ID)
				row.Cells[i] = status
				if status == models.StatusPresent {
					row.PresentCount++
				}
			}
			if len(included) > 0 {
				row.Percentage = calculator.MemberAttendanceRate(member.ID, included)
			}
			block.Rows = append(block.Rows, row)
		}
		summary.Blocks = append(summary.Blocks, block)
	}

	for _, group := range groups {
		appendBlock(group.ID, group.Name, byGroup[group.ID])
	}
	appendBlock("", UnassignedLabel, unassigned)

	return summary
}

// BuildSessionLists files the session's records into per-status name
// lists. An unknown session id yields an empty report, not an error.
func BuildSessionLists(members []models.Member, sessions []models.MeetingSession, sessionID string) SessionLists {
	var session models.MeetingSession
	found := false
	for _, candidate := range sessions {
		if candidate.ID == sessionID {
			session = candidate
			found = true
			break
		}
	}
	if !found {
		return SessionLists{}
	}

	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	lists := SessionLists{
		SessionID: session.ID,
		Date:      session.Date,
		Topic:     session.Topic,
	}
	seen := make(map[string]bool, len(session.Records))
	for _, record := range session.Records {
		if seen[record.MemberID] {
			continue
		}
		seen[record.MemberID] = true
		name, onRoster := names[record.MemberID]
		if !onRoster {
			continue
		}
		switch record.Status {
		case models.StatusPresent:
			lists.Present = append(lists.Present, name)
		case models.StatusAbsent:
			lists.Absent = append(lists.Absent, name)
		case models.StatusExcused:
			lists.Excused = append(lists.Excused, name)
		}
	}
	return lists
}

// GeneratedAt formats the report generation moment for headers.
func GeneratedAt(now time.Time) string {
	return now.Format("2006-01-02")
}
