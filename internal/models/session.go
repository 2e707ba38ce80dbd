package models

import (
	"fmt"
	"strings"
	"time"
)

// AttendanceStatus is the closed set of recorded attendance states.
// The absence of a record for a member is a distinct "no record" state;
// see calculator.StatusNone. It is never persisted.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusExcused AttendanceStatus = "excused"
)

// Valid reports whether s is one of the three recordable statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// AttendanceRecord is a single member's status within one session.
type AttendanceRecord struct {
	// MemberID references a Member. The member is not required to still
	// exist when the record is read.
	MemberID string `json:"memberId"`

	// Status is one of present, absent or excused.
	Status AttendanceStatus `json:"status"`
}

// MeetingSession is one saved attendance round. Sessions are created as a
// full unit and never partially updated; the only mutation is deletion.
type MeetingSession struct {
	// ID is the unique identifier for the session (UUID format).
	ID string `json:"id"`

	// Date is the calendar date the attendance was taken, distinct from
	// the moment the session was saved.
	Date Date `json:"date"`

	// Topic is an optional free-text label for the session.
	Topic string `json:"topic,omitempty"`

	// Records holds the attendance statuses taken during this session,
	// at most one per member. Duplicates are not structurally prevented;
	// readers take the first match per member.
	Records []AttendanceRecord `json:"records"`
}

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. It marshals as
// "2006-01-02" and additionally accepts RFC 3339 timestamps when
// unmarshalling, which older snapshot files contain.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" or RFC 3339 string.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date in the wire layout.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted date string in either accepted layout.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
