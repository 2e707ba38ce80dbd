package service

import "errors"

// Predictable failures reported to callers as values, never panics.
var (
	// ErrEmptyName rejects blank member or group names before mutation.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrGroupNotFound is returned when a referenced group id does not
	// exist at mutation time. Stale references inside stored data are
	// tolerated; only new input is checked.
	ErrGroupNotFound = errors.New("group not found")

	// ErrMemberNotFound is returned when deleting an unknown member id.
	ErrMemberNotFound = errors.New("member not found")

	// ErrSessionNotFound is returned when an unknown session id is
	// deleted or fetched directly.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidStatus rejects attendance statuses outside the enum.
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrDuplicateRecord rejects two records for the same member within
	// one session at save time.
	ErrDuplicateRecord = errors.New("duplicate attendance record for member")
)
