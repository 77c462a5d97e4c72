package queries

import (
	"errors"

	"opsboard-backend/domain/core/entities"
)

// ListNotificationsQuery requests a user's notifications.
type ListNotificationsQuery struct {
	UserID     string
	UnreadOnly bool
	Refresh    bool
}

// Validate validates the query.
func (q ListNotificationsQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}

// ListNotificationsResult is the cached shape of a notification listing.
type ListNotificationsResult struct {
	Notifications []*entities.Notification `json:"notifications"`
	Unread        int                      `json:"unread"`
}
