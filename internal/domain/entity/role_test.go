package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want Roles
	}{
		{name: "vendor", in: []string{"vendor"}, want: Roles{RoleVendor}},
		{name: "normalizes case and spaces", in: []string{" Manager ", "VENDOR"}, want: Roles{RoleManager, RoleVendor}},
		{name: "drops unknown and duplicates", in: []string{"admin", "vendor", "vendor"}, want: Roles{RoleVendor}},
		{name: "empty", in: nil, want: Roles{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RolesFromStrings(tt.in))
		})
	}
}

func TestRoles_CanReviewAllVendors(t *testing.T) {
	assert.True(t, Roles{RoleVendor, RoleManager}.CanReviewAllVendors())
	assert.False(t, Roles{RoleVendor}.CanReviewAllVendors())
	assert.Equal(t, []string{"vendor", "manager"}, Roles{RoleVendor, RoleManager}.ToStrings())
}
