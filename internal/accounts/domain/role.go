package domain

import "slices"

const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RoleList is an ordered list of role names, least privileged first. A user
// with a role at index i satisfies any requirement at index <= i.
type RoleList []string

// DefaultRoles returns the built-in role ordering.
func DefaultRoles() RoleList {
	return RoleList{RoleGuest, RoleUser, RoleAdmin}
}

// Index returns the privilege rank of the role, or -1 if unknown.
func (rl RoleList) Index(role string) int {
	return slices.Index(rl, role)
}

// Contains reports whether the role name is part of the list.
func (rl RoleList) Contains(role string) bool {
	return rl.Index(role) >= 0
}

// AtLeast reports whether have grants at least the privilege of want.
// Unknown roles never satisfy any requirement.
func (rl RoleList) AtLeast(have, want string) bool {
	hi := rl.Index(have)
	wi := rl.Index(want)
	if hi < 0 || wi < 0 {
		return false
	}
	return hi >= wi
}

// Default returns the role assigned to self-registered accounts.
func (rl RoleList) Default() string {
	if rl.Contains(RoleUser) {
		return RoleUser
	}
	if len(rl) > 0 {
		return rl[0]
	}
	return RoleUser
}
