package entities

import "time"

// DashboardStats are the aggregate counters shown on the admin dashboard.
// They are derived data: recomputable from the source tables at any time,
// which is what makes their caches safe to invalidate wholesale.
type DashboardStats struct {
	TotalUsers          int          `json:"totalUsers"`
	ActiveUsers         int          `json:"activeUsers"`
	TotalGroups         int          `json:"totalGroups"`
	UnreadNotifications int          `json:"unreadNotifications"`
	Signups             []DailyCount `json:"signups"`
	GeneratedAt         time.Time    `json:"generatedAt"`
}

// DailyCount is one day's value in a time series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
