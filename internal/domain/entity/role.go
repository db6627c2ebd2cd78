package entity

import "strings"

// Role is the role string the backend assigns to a staff account.
type Role string

const (
	// RoleWaiter is the only role allowed into the waiter shell.
	RoleWaiter Role = "WAITER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsZero reports whether no role was recorded.
func (r Role) IsZero() bool {
	return r == ""
}

// Label renders the role for the footer badge. Unknown roles show as Guest.
func (r Role) Label() string {
	switch strings.ToUpper(string(r)) {
	case "WAITER":
		return "Waiter"
	case "ADMIN":
		return "Admin"
	case "CHEF":
		return "Chef"
	default:
		return "Guest"
	}
}
