package models

import "fmt"

// Role identifies which of the two people is acting.
type Role string

const (
	// RoleEditor is the person who owns the journal: manages events and can clear entries.
	RoleEditor Role = "editor"
	// RolePartner is the person the journal is shared with.
	RolePartner Role = "partner"
)

// Roles lists both roles in display order.
var Roles = []Role{RoleEditor, RolePartner}

// ParseRole converts a stored or transmitted role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEditor, RolePartner:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleEditor || r == RolePartner
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == RoleEditor {
		return RolePartner
	}
	return RoleEditor
}

func (r Role) String() string {
	return string(r)
}

// RequireEditor returns ErrPermissionDenied unless role is the editor.
func RequireEditor(role Role) error {
	if role != RoleEditor {
		return fmt.Errorf("%w: only the editor can do this", ErrPermissionDenied)
	}
	return nil
}

// RoleSlots holds one optional value per role, e.g. each person's mood for the day.
// A nil slot means the role has not set a value.
type RoleSlots[T any] struct {
	Editor  *T
	Partner *T
}

// Get returns the slot for role.
func (s RoleSlots[T]) Get(role Role) *T {
	if role == RoleEditor {
		return s.Editor
	}
	return s.Partner
}

// Set replaces the slot for role. Passing nil clears it.
func (s *RoleSlots[T]) Set(role Role, v *T) {
	if role == RoleEditor {
		s.Editor = v
		return
	}
	s.Partner = v
}

// IsEmpty reports whether neither role has a value.
func (s RoleSlots[T]) IsEmpty() bool {
	return s.Editor == nil && s.Partner == nil
}
