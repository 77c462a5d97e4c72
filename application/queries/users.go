package queries

import (
	"errors"
	"fmt"

	"opsboard-backend/application/ports"
	"opsboard-backend/domain/core/entities"
)

// GetUserProfileQuery requests one user's profile. Refresh carries the
// request-level signal to bypass the cache read path while still repopulating
// the entry.
type GetUserProfileQuery struct {
	UserID  string
	Refresh bool
}

// Validate validates the query.
func (q GetUserProfileQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}

// GetUserPermissionsQuery requests the permission codes a user's groups grant.
type GetUserPermissionsQuery struct {
	UserID  string
	Refresh bool
}

// Validate validates the query.
func (q GetUserPermissionsQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}

// UserPermissionsResult is the cached shape of a permissions lookup.
type UserPermissionsResult struct {
	UserID      string   `json:"userId"`
	Permissions []string `json:"permissions"`
}

// ListUsersQuery requests a page of users.
type ListUsersQuery struct {
	Filter  ports.ListUsersFilter
	Refresh bool
}

// Validate validates the query.
func (q ListUsersQuery) Validate() error {
	switch q.Filter.Status {
	case "", string(entities.UserStatusActive), string(entities.UserStatusSuspended), string(entities.UserStatusDeleted):
		return nil
	default:
		return fmt.Errorf("unknown status %q", q.Filter.Status)
	}
}

// CacheQualifier is the key suffix that makes each distinct listing its own
// cache entry. Identical filters always produce the identical qualifier.
func (q ListUsersQuery) CacheQualifier() string {
	f := q.Filter.Normalize()
	status := f.Status
	if status == "" {
		status = "all"
	}
	return fmt.Sprintf("%s:%d:%d", status, f.Page, f.PageSize)
}

// ListUsersResult is the cached shape of a user listing page.
type ListUsersResult struct {
	Users    []*entities.User `json:"users"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}
