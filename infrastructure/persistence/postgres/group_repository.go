package postgres

import (
	"context"
	"errors"

	"opsboard-backend/domain/core/entities"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// GroupRepository is the PostgreSQL implementation of ports.GroupRepository.
type GroupRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewGroupRepository creates a group repository over a shared connection pool.
func NewGroupRepository(pool *pgxpool.Pool, logger *zap.Logger) *GroupRepository {
	return &GroupRepository{
		pool:   pool,
		logger: logger,
	}
}

const groupSelect = `
	SELECT g.id, g.name, COALESCE(g.description, ''),
	       COALESCE(array_agg(DISTINCT gp.permission) FILTER (WHERE gp.permission IS NOT NULL), '{}'),
	       (SELECT count(*) FROM group_members gm WHERE gm.group_id = g.id),
	       g.created_at, g.updated_at
	FROM groups g
	LEFT JOIN group_permissions gp ON gp.group_id = g.id`

// GetByID retrieves one group with its permission set and member count.
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*entities.Group, error) {
	query := groupSelect + `
	WHERE g.id = $1
	GROUP BY g.id`

	group, err := scanGroup(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("group")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("get group", err)
	}
	return group, nil
}

// List retrieves all groups ordered by name.
func (r *GroupRepository) List(ctx context.Context) ([]*entities.Group, error) {
	query := groupSelect + `
	GROUP BY g.id
	ORDER BY g.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list groups", err)
	}
	defer rows.Close()

	var groups []*entities.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan group", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list groups", err)
	}
	return groups, nil
}

// UpdatePermissions replaces the group's permission set atomically.
func (r *GroupRepository) UpdatePermissions(ctx context.Context, groupID string, permissions []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("begin", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE groups SET updated_at = now() WHERE id = $1`, groupID)
	if err != nil {
		return apperrors.NewDatabaseError("touch group", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("group")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM group_permissions WHERE group_id = $1`, groupID); err != nil {
		return apperrors.NewDatabaseError("clear group permissions", err)
	}
	for _, p := range permissions {
		if _, err := tx.Exec(ctx,
			`INSERT INTO group_permissions (group_id, permission) VALUES ($1, $2)`,
			groupID, p,
		); err != nil {
			return apperrors.NewDatabaseError("insert group permission", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewDatabaseError("commit", err)
	}
	return nil
}

func scanGroup(row pgx.Row) (*entities.Group, error) {
	var group entities.Group
	if err := row.Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.Permissions,
		&group.MemberCount,
		&group.CreatedAt,
		&group.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &group, nil
}
