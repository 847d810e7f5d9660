package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "hiring_manager", "recruiter", "jobseeker"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Role(valid), role)
	}

	for _, invalid := range []string{"", "Admin", "superuser", "hiring-manager"} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestRoleIn(t *testing.T) {
	staff := []Role{RoleAdmin, RoleHiringManager, RoleRecruiter}

	assert.True(t, RoleRecruiter.In(staff))
	assert.False(t, RoleJobSeeker.In(staff))
	assert.True(t, RoleJobSeeker.In(nil), "empty set leaves the route open")
}

func TestResources_DeterministicAndDisjoint(t *testing.T) {
	first := Resources()
	second := Resources()

	assert.Equal(t, len(first), len(second))

	seen := make(map[string]bool)
	for i, res := range first {
		assert.Equal(t, res.Prefix, second[i].Prefix, "registration order must be stable")
		assert.False(t, seen[res.Prefix], "prefixes must be disjoint")
		seen[res.Prefix] = true
	}
}
