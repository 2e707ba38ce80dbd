// Package models defines the core domain models for Rollbook.
//
// # Models
//
//   - Member: A person on the troop roster, optionally linked to a Group
//   - Group: A named subdivision of the roster
//   - MeetingSession: One attendance round, saved as an immutable whole
//   - AttendanceRecord: A single member's status within a session
//   - AppSettings: The singleton troop configuration record
//
// # Design Principles
//
//  1. **ID strings, not pointers**: Relationships are expressed as ID
//     references so that collections serialize cleanly and stale references
//     degrade instead of breaking an object graph.
//  2. **Stale references are normal**: A session record may point at a
//     deleted member, and a member may point at a deleted group. Every
//     reader must skip or degrade, never fail.
//  3. **Snapshot-stable JSON**: Field tags match the backup snapshot format
//     (camelCase) so exported files stay interchangeable across versions.
//  4. **Defaults at the read boundary**: AppSettings grows over time; old
//     persisted copies are backfilled via WithDefaults rather than migrated
//     in place.
package models
