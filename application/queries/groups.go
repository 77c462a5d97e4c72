package queries

import "errors"

// GetGroupQuery requests one group with its permission set.
type GetGroupQuery struct {
	GroupID string
	Refresh bool
}

// Validate validates the query.
func (q GetGroupQuery) Validate() error {
	if q.GroupID == "" {
		return errors.New("group ID is required")
	}
	return nil
}

// ListGroupsQuery requests all groups.
type ListGroupsQuery struct {
	Refresh bool
}
