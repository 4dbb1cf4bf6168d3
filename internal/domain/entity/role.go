// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"proximity/internal/domain/constants"
)

// Role represents the type of role a caller can have in the system.
type Role string

const (
	// RoleVendor indicates a field sales agent whose conversations are recorded.
	RoleVendor Role = constants.RoleVendor
	// RoleManager indicates a manager who maintains zones and reviews sessions.
	RoleManager Role = constants.RoleManager
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleVendor, RoleManager:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts token claims to Roles. Matching ignores case and
// surrounding spaces; unknown roles and duplicates are dropped.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}

// CanReviewAllVendors reports whether the caller may read other vendors'
// sessions and events.
func (rs Roles) CanReviewAllVendors() bool {
	return rs.Contains(RoleManager)
}
