package cache

import "strings"

// Key prefixes namespace the shared key space. Distinct logical resources get
// distinct prefixes so keys from different domains can never collide.
const (
	PrefixUserProfile     = "user-profile"
	PrefixUserPermissions = "user-permissions"
	PrefixUsers           = "users"
	PrefixGroup           = "group"
	PrefixGroups          = "groups"
	PrefixDashboard       = "dashboard"
	PrefixNotifications   = "notifications"
)

// Key builds a deterministic cache key from a prefix and identifier parts,
// joined with ":". Identical inputs always yield the identical key. A
// malformed id simply produces a key that misses on lookup.
func Key(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// Pattern builds a wildcard match string covering every key under the given
// prefix and parts. The trailing "*" is the only wildcard; prefixes are chosen
// so a pattern never matches keys from an unrelated domain.
func Pattern(prefix string, parts ...string) string {
	return Key(prefix, parts...) + ":*"
}

// Named key builders for the resources the invalidator and query handlers
// share. Keeping them here means a rename cannot desynchronize the read path
// from the invalidation path.

func UserProfileKey(userID string) string     { return Key(PrefixUserProfile, userID) }
func UserPermissionsKey(userID string) string { return Key(PrefixUserPermissions, userID) }
func UsersListKey(qualifier string) string    { return Key(PrefixUsers, "list", qualifier) }
func GroupKey(groupID string) string          { return Key(PrefixGroup, groupID) }
func GroupsListKey() string                   { return Key(PrefixGroups, "list") }
func DashboardKey(section string) string      { return Key(PrefixDashboard, section) }

func NotificationsKey(userID, qualifier string) string {
	return Key(PrefixNotifications, userID, qualifier)
}

func UserPermissionsPattern() string            { return Pattern(PrefixUserPermissions) }
func UsersListPattern() string                  { return Pattern(PrefixUsers, "list") }
func DashboardPattern() string                  { return Pattern(PrefixDashboard) }
func NotificationsPattern(userID string) string { return Pattern(PrefixNotifications, userID) }
