package models

import "time"

// Member represents one person on the troop roster.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	// Assigned at creation and never reused after deletion.
	ID string `json:"id"`

	// Name is the member's display name. Never empty.
	Name string `json:"name"`

	// JoinDate is the timestamp when the member was added to the roster.
	// Set at creation, immutable.
	JoinDate time.Time `json:"joinDate"`

	// GroupID links the member to a Group. Empty means "unassigned".
	// The referenced group is not guaranteed to still exist; readers
	// treat a dangling GroupID the same as unassigned.
	GroupID string `json:"groupId,omitempty"`
}

// Group represents a named subdivision of the roster.
// Deleting a group never deletes its members; the caller unlinks them.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group. Never empty.
	Name string `json:"name"`
}
