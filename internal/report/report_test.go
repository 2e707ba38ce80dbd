package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/halmaawali/rollbook/internal/calculator"
	"github.com/halmaawali/rollbook/internal/models"
)

func member(id, name, groupID string) models.Member {
	return models.Member{ID: id, Name: name, GroupID: groupID}
}

func TestBuildSummaryCapsAtTenMostRecent(t *testing.T) {
	// 12 sessions on consecutive days, created oldest first.
	var sessions []models.MeetingSession
	for day := 1; day <= 12; day++ {
		sessions = append(sessions, models.MeetingSession{
			ID:    fmt.Sprintf("s%d", day),
			Date:  models.NewDate(2025, time.March, day),
			Topic: fmt.Sprintf("topic %d", day),
			Records: []models.AttendanceRecord{
				{MemberID: "m1", Status: models.StatusPresent},
			},
		})
	}
	members := []models.Member{member("m1", "Ali", "")}

	summary := BuildSummary(members, nil, sessions)

	if len(summary.Columns) != SummarySessionCap {
		t.Fatalf("got %d columns, want %d", len(summary.Columns), SummarySessionCap)
	}
	// Date descending: March 12 down to March 3.
	for i, column := range summary.Columns {
		wantDay := 12 - i
		if column.Date.Day() != wantDay {
			t.Errorf("column %d date day = %d, want %d", i, column.Date.Day(), wantDay)
		}
		if want := fmt.Sprintf("s%d", wantDay); column.SessionID != want {
			t.Errorf("column %d session = %s, want %s", i, column.SessionID, want)
		}
		if want := fmt.Sprintf("topic %d", wantDay); column.Topic != want {
			t.Errorf("column %d topic = %q, want %q", i, column.Topic, want)
		}
		if want := fmt.Sprintf("%d/3", wantDay); column.MonthDay != want {
			t.Errorf("column %d monthDay = %q, want %q", i, column.MonthDay, want)
		}
	}

	// 2025-03-12 is a Wednesday.
	if summary.Columns[0].Weekday != "الأربعاء" {
		t.Errorf("column 0 weekday = %q, want الأربعاء", summary.Columns[0].Weekday)
	}
}

func TestBuildSummaryGroupBlocks(t *testing.T) {
	groups := []models.Group{
		{ID: "g1", Name: "الرهط الأول"},
		{ID: "g2", Name: "الرهط الثاني"},
	}
	members := []models.Member{
		member("m1", "Ali", "g1"),
		member("m2", "Omar", "g2"),
		member("m3", "Said", "g1"),
		member("m4", "Khalid", ""),
		member("m5", "Nasser", "gone-group"),
	}
	sessions := []models.MeetingSession{
		{
			ID:   "s1",
			Date: models.NewDate(2025, time.January, 5),
			Records: []models.AttendanceRecord{
				{MemberID: "m1", Status: models.StatusPresent},
				{MemberID: "m2", Status: models.StatusAbsent},
				{MemberID: "m3", Status: models.StatusExcused},
			},
		},
	}

	summary := BuildSummary(members, groups, sessions)

	if len(summary.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(summary.Blocks))
	}
	if summary.Blocks[0].Label != "الرهط الأول" || summary.Blocks[1].Label != "الرهط الثاني" {
		t.Errorf("group blocks out of stored order: %q, %q",
			summary.Blocks[0].Label, summary.Blocks[1].Label)
	}
	if summary.Blocks[2].Label != UnassignedLabel {
		t.Errorf("last block label = %q, want %q", summary.Blocks[2].Label, UnassignedLabel)
	}

	// Unassigned block holds both the groupless member and the one whose
	// group was deleted.
	unassigned := summary.Blocks[2].Rows
	if len(unassigned) != 2 {
		t.Fatalf("unassigned rows = %d, want 2", len(unassigned))
	}
	if unassigned[0].Name != "Khalid" || unassigned[1].Name != "Nasser" {
		t.Errorf("unassigned rows = %q, %q", unassigned[0].Name, unassigned[1].Name)
	}

	// Numbering runs continuously across blocks.
	var numbers []int
	for _, block := range summary.Blocks {
		for _, row := range block.Rows {
			numbers = append(numbers, row.Number)
		}
	}
	for i, n := range numbers {
		if n != i+1 {
			t.Fatalf("row numbers not continuous: %v", numbers)
		}
	}

	// Row statistics cover the included window.
	ali := summary.Blocks[0].Rows[0]
	if ali.PresentCount != 1 || ali.Percentage != 100 {
		t.Errorf("Ali present=%d percent=%d, want 1 and 100", ali.PresentCount, ali.Percentage)
	}
	if ali.Cells[0] != models.StatusPresent {
		t.Errorf("Ali cell = %v, want present", ali.Cells[0])
	}
}

func TestBuildSummaryWindowStatsExcludeOlderSessions(t *testing.T) {
	// m1 is present only in the oldest of 11 sessions; that session falls
	// outside the window, so the row shows zero attendance.
	var sessions []models.MeetingSession
	for day := 1; day <= 11; day++ {
		status := models.StatusAbsent
		if day == 1 {
			status = models.StatusPresent
		}
		sessions = append(sessions, models.MeetingSession{
			ID:      fmt.Sprintf("s%d", day),
			Date:    models.NewDate(2025, time.May, day),
			Records: []models.AttendanceRecord{{MemberID: "m1", Status: status}},
		})
	}

	summary := BuildSummary([]models.Member{member("m1", "Ali", "")}, nil, sessions)
	row := summary.Blocks[0].Rows[0]
	if row.PresentCount != 0 || row.Percentage != 0 {
		t.Errorf("window stats leaked history: present=%d percent=%d", row.PresentCount, row.Percentage)
	}
}

func TestBuildSummaryEmptyInputs(t *testing.T) {
	summary := BuildSummary(nil, nil, nil)
	if len(summary.Columns) != 0 || len(summary.Blocks) != 0 {
		t.Errorf("empty inputs produced columns=%d blocks=%d", len(summary.Columns), len(summary.Blocks))
	}
}

func TestBuildSummaryToleratesStaleRecordReferences(t *testing.T) {
	sessions := []models.MeetingSession{
		{
			ID:   "s1",
			Date: models.NewDate(2025, time.January, 1),
			Records: []models.AttendanceRecord{
				{MemberID: "deleted", Status: models.StatusPresent},
				{MemberID: "m1", Status: models.StatusAbsent},
			},
		},
	}

	summary := BuildSummary([]models.Member{member("m1", "Ali", "")}, nil, sessions)
	if len(summary.Blocks) != 1 || len(summary.Blocks[0].Rows) != 1 {
		t.Fatalf("unexpected layout: %+v", summary.Blocks)
	}
	// The deleted member simply has no row; Ali's row is unaffected.
	if summary.Blocks[0].Rows[0].Cells[0] != models.StatusAbsent {
		t.Errorf("cell = %v, want absent", summary.Blocks[0].Rows[0].Cells[0])
	}
}

func TestBuildSessionLists(t *testing.T) {
	members := []models.Member{
		member("m1", "Ali", ""),
		member("m2", "Omar", ""),
	}
	sessions := []models.MeetingSession{
		{
			ID:   "s1",
			Date: models.NewDate(2025, time.January, 1),
			Records: []models.AttendanceRecord{
				{MemberID: "m1", Status: models.StatusPresent},
				{MemberID: "m2", Status: models.StatusAbsent},
				{MemberID: "deleted", Status: models.StatusExcused},
			},
		},
	}

	lists := BuildSessionLists(members, sessions, "s1")

	if len(lists.Present) != 1 || lists.Present[0] != "Ali" {
		t.Errorf("present = %v, want [Ali]", lists.Present)
	}
	if len(lists.Absent) != 1 || lists.Absent[0] != "Omar" {
		t.Errorf("absent = %v, want [Omar]", lists.Absent)
	}
	// The stale record is dropped rather than surfaced as an error.
	if len(lists.Excused) != 0 {
		t.Errorf("excused = %v, want empty", lists.Excused)
	}
}

func TestBuildSessionListsUnknownID(t *testing.T) {
	sessions := []models.MeetingSession{
		{ID: "s1", Date: models.NewDate(2025, time.January, 1)},
	}

	lists := BuildSessionLists(nil, sessions, "missing")
	if lists.SessionID != "" || lists.Present != nil || lists.Absent != nil || lists.Excused != nil {
		t.Errorf("unknown id should yield an empty report, got %+v", lists)
	}
}

func TestBuildSessionListsDuplicateRecordsFirstWins(t *testing.T) {
	members := []models.Member{member("m1", "Ali", "")}
	sessions := []models.MeetingSession{
		{
			ID:   "s1",
			Date: models.NewDate(2025, time.January, 1),
			Records: []models.AttendanceRecord{
				{MemberID: "m1", Status: models.StatusExcused},
				{MemberID: "m1", Status: models.StatusPresent},
			},
		},
	}

	lists := BuildSessionLists(members, sessions, "s1")
	if len(lists.Excused) != 1 || len(lists.Present) != 0 {
		t.Errorf("duplicate handling not first-wins: %+v", lists)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		status models.AttendanceStatus
		want   string
	}{
		{models.StatusPresent, "✓"},
		{models.StatusAbsent, "✕"},
		{models.StatusExcused, "ع"},
		{calculator.StatusNone, "-"},
		{"garbage", "-"},
	}
	for _, tt := range tests {
		if got := Glyph(tt.status); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
