package postgres

import (
	"context"
	"time"

	"opsboard-backend/domain/core/entities"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// DashboardRepository computes the dashboard aggregates straight from the
// source tables. The queries are deliberately simple; the cache layer is what
// keeps them off the hot path.
type DashboardRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewDashboardRepository creates a dashboard repository over a shared
// connection pool.
func NewDashboardRepository(pool *pgxpool.Pool, logger *zap.Logger) *DashboardRepository {
	return &DashboardRepository{
		pool:   pool,
		logger: logger,
	}
}

// Stats recomputes the aggregate counters and the 30-day signup series.
func (r *DashboardRepository) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	const countsQuery = `
		SELECT
			(SELECT count(*) FROM users WHERE status <> 'deleted'),
			(SELECT count(*) FROM users WHERE status = 'active'),
			(SELECT count(*) FROM groups),
			(SELECT count(*) FROM notifications WHERE NOT read)`

	stats := &entities.DashboardStats{GeneratedAt: time.Now().UTC()}
	if err := r.pool.QueryRow(ctx, countsQuery).Scan(
		&stats.TotalUsers,
		&stats.ActiveUsers,
		&stats.TotalGroups,
		&stats.UnreadNotifications,
	); err != nil {
		return nil, apperrors.NewDatabaseError("dashboard counts", err)
	}

	const signupsQuery = `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'), count(*)
		FROM users
		WHERE created_at >= now() - interval '30 days'
		GROUP BY created_at::date
		ORDER BY created_at::date`

	rows, err := r.pool.Query(ctx, signupsQuery)
	if err != nil {
		return nil, apperrors.NewDatabaseError("dashboard signups", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc entities.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, apperrors.NewDatabaseError("scan signup count", err)
		}
		stats.Signups = append(stats.Signups, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("dashboard signups", err)
	}
	return stats, nil
}
