package entities

import "time"

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"
)

// User is an account as the dashboard presents it. The struct is JSON-cached
// as-is, so field tags are part of the cache entry format.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	Status    UserStatus `json:"status"`
	GroupIDs  []string   `json:"groupIds"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// IsActive reports whether the account may act in the system.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
