package queries

// GetDashboardStatsQuery requests the dashboard aggregates.
type GetDashboardStatsQuery struct {
	Refresh bool
}
