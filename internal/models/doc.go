// Package models defines the core domain models for Notre Cocon.
//
// # Models
//
//   - Event: a named date range, or the single evergreen "Daily Life" space
//   - DailyLog: one day of shared entries for an event, keyed by LogKey
//   - Note: a single note inside a DailyLog, written by one role
//   - BucketListItem: an entry on the shared bucket list (not scoped to an event)
//   - AppSettings: the hashed access codes for the two roles
//
// There are no user accounts. The two people using the app are identified by
// their Role, which is assigned when a shared access code matches.
//
// # Design Principles
//
//  1. Dates are calendar dates in "2006-01-02" form, never timestamps
//  2. Relationships use ID strings, never pointers
//  3. Per-role fields live in RoleSlots so both roles are handled symmetrically
//  4. Validation rules shared by the server and the client live here
package models
