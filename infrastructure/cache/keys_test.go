package cache

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDeterministic(t *testing.T) {
	assert.Equal(t, Key("users", "list", "all:1:25"), Key("users", "list", "all:1:25"))
	assert.Equal(t, "user-profile:u1", UserProfileKey("u1"))
	assert.Equal(t, "user-permissions:u1", UserPermissionsKey("u1"))
	assert.Equal(t, "users:list:active:1:25", UsersListKey("active:1:25"))
	assert.Equal(t, "group:g1", GroupKey("g1"))
	assert.Equal(t, "groups:list", GroupsListKey())
	assert.Equal(t, "dashboard:stats", DashboardKey("stats"))
	assert.Equal(t, "notifications:u1:unread", NotificationsKey("u1", "unread"))
}

func TestKeyWithoutParts(t *testing.T) {
	assert.Equal(t, "groups", Key("groups"))
}

func TestPatternsScopeTheirOwnPrefix(t *testing.T) {
	cases := []struct {
		pattern string
		match   string
		miss    string
	}{
		{UserPermissionsPattern(), UserPermissionsKey("u1"), UserProfileKey("u1")},
		{UsersListPattern(), UsersListKey("all:1:25"), GroupsListKey()},
		{DashboardPattern(), DashboardKey("stats"), UsersListKey("all:1:25")},
		{NotificationsPattern("u1"), NotificationsKey("u1", "all"), NotificationsKey("u2", "all")},
	}

	for _, tc := range cases {
		matched, err := path.Match(tc.pattern, tc.match)
		require.NoError(t, err)
		assert.True(t, matched, "%s should match %s", tc.pattern, tc.match)

		matched, err = path.Match(tc.pattern, tc.miss)
		require.NoError(t, err)
		assert.False(t, matched, "%s should not match %s", tc.pattern, tc.miss)
	}
}

func TestDistinctPrefixesNeverCollide(t *testing.T) {
	// Same raw id under two prefixes must produce two keys.
	assert.NotEqual(t, UserProfileKey("x"), UserPermissionsKey("x"))
	assert.NotEqual(t, GroupKey("x"), UserProfileKey("x"))
}

func TestTTLTableResolve(t *testing.T) {
	table := DefaultTTLTable()

	assert.Equal(t, table[Short], table.Resolve(Short))
	assert.Equal(t, table[VeryLong], table.Resolve(VeryLong))

	// Unknown classes fall back to Short instead of caching forever.
	assert.Equal(t, table[Short], table.Resolve(Duration("bogus")))
}
