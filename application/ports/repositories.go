package ports

import (
	"context"

	"opsboard-backend/domain/core/entities"
)

// UserRepository is the port for account persistence. Implementations query
// the authoritative store; the cache layer wraps these calls, it never lives
// inside them.
type UserRepository interface {
	// GetByID retrieves one user.
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// List retrieves users matching the filter, most recent first.
	List(ctx context.Context, filter ListUsersFilter) ([]*entities.User, error)

	// Update persists profile changes for an existing user.
	Update(ctx context.Context, user *entities.User) error

	// Permissions returns the distinct permission codes the user's groups
	// grant, sorted.
	Permissions(ctx context.Context, userID string) ([]string, error)
}

// GroupRepository is the port for group persistence.
type GroupRepository interface {
	// GetByID retrieves one group with its permission set.
	GetByID(ctx context.Context, id string) (*entities.Group, error)

	// List retrieves all groups, by name.
	List(ctx context.Context) ([]*entities.Group, error)

	// UpdatePermissions replaces a group's permission set.
	UpdatePermissions(ctx context.Context, groupID string, permissions []string) error
}

// NotificationRepository is the port for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entities.Notification) error

	// ListByUser retrieves a user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entities.Notification, error)

	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// DashboardRepository computes the dashboard aggregates from the source
// tables.
type DashboardRepository interface {
	// Stats recomputes the aggregate counters.
	Stats(ctx context.Context) (*entities.DashboardStats, error)
}

// ListUsersFilter narrows and pages a user listing. The zero value lists the
// first page of every status.
type ListUsersFilter struct {
	Status   string
	Page     int
	PageSize int
}

// Normalize clamps paging to sane bounds.
func (f ListUsersFilter) Normalize() ListUsersFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 25
	}
	return f
}
