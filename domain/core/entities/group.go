package entities

import "time"

// Group is a named permission set users belong to.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasPermission reports whether the group grants the given permission code.
func (g *Group) HasPermission(code string) bool {
	for _, p := range g.Permissions {
		if p == code {
			return true
		}
	}
	return false
}
