// Package calculator computes attendance statistics from sessions and the
// roster. Everything here is pure: no mutation, no I/O, and no errors for
// predictable conditions such as empty sessions or stale member references.
package calculator

import (
	"math"

	"github.com/halmaawali/rollbook/internal/models"
)

// StatusNone is the derived state for a member with no record in a
// session. It is a lookup result only and is never persisted.
const StatusNone models.AttendanceStatus = "none"

// StatusOf returns the recorded status for memberID within the session,
// or StatusNone when no record exists. When malformed data carries more
// than one record for the same member, the first match wins.
func StatusOf(session models.MeetingSession, memberID string) models.AttendanceStatus {
	for _, record := range session.Records {
		if record.MemberID == memberID {
			return record.Status
		}
	}
	return StatusNone
}

// PresentCount returns the number of records marked present.
func PresentCount(session models.MeetingSession) int {
	count := 0
	for _, record := range session.Records {
		if record.Status == models.StatusPresent {
			count++
		}
	}
	return count
}

// AttendancePercentage returns the session's present share as a 0..100
// integer, 0 when the session has no records.
func AttendancePercentage(session models.MeetingSession) int {
	if len(session.Records) == 0 {
		return 0
	}
	return percent(PresentCount(session), len(session.Records))
}

// AverageAttendance returns the mean per-session attendance percentage
// across sessions, rounded to the nearest integer. Empty input and
// record-less sessions contribute 0 instead of dividing by zero.
func AverageAttendance(sessions []models.MeetingSession) int {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, session := range sessions {
		if len(session.Records) == 0 {
			continue
		}
		sum += float64(PresentCount(session)) / float64(len(session.Records)) * 100
	}
	return int(math.Round(sum / float64(len(sessions))))
}

// MemberAttendanceRate returns the share of sessions in which the member
// was marked present, as a 0..100 integer. 0 when sessions is empty.
func MemberAttendanceRate(memberID string, sessions []models.MeetingSession) int {
	if len(sessions) == 0 {
		return 0
	}
	present := 0
	for _, session := range sessions {
		if StatusOf(session, memberID) == models.StatusPresent {
			present++
		}
	}
	return percent(present, len(sessions))
}

// Stats holds the per-status totals of one session.
type Stats struct {
	TotalPresent int
	TotalAbsent  int
	TotalExcused int
	Percentage   int
}

// SessionStats tallies a session's records by status.
func SessionStats(session models.MeetingSession) Stats {
	stats := Stats{}
	for _, record := range session.Records {
		switch record.Status {
		case models.StatusPresent:
			stats.TotalPresent++
		case models.StatusAbsent:
			stats.TotalAbsent++
		case models.StatusExcused:
			stats.TotalExcused++
		}
	}
	stats.Percentage = AttendancePercentage(session)
	return stats
}

// percent rounds part/whole to the nearest integer percentage.
// Callers guarantee whole > 0.
func percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
