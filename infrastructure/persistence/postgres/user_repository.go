package postgres

import (
	"context"
	"errors"

	"opsboard-backend/application/ports"
	"opsboard-backend/domain/core/entities"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// UserRepository is the PostgreSQL implementation of ports.UserRepository.
// These queries are the authoritative fetchers the cache layer wraps.
type UserRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewUserRepository creates a user repository over a shared connection pool.
func NewUserRepository(pool *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		pool:   pool,
		logger: logger,
	}
}

// GetByID retrieves one user with their group memberships.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	const query = `
		SELECT u.id, u.email, u.name, COALESCE(u.avatar_url, ''), u.status,
		       COALESCE(array_agg(gm.group_id) FILTER (WHERE gm.group_id IS NOT NULL), '{}'),
		       u.created_at, u.updated_at
		FROM users u
		LEFT JOIN group_members gm ON gm.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("get user", err)
	}
	return user, nil
}

// List retrieves a page of users, newest first.
func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*entities.User, error) {
	filter = filter.Normalize()

	const query = `
		SELECT u.id, u.email, u.name, COALESCE(u.avatar_url, ''), u.status,
		       COALESCE(array_agg(gm.group_id) FILTER (WHERE gm.group_id IS NOT NULL), '{}'),
		       u.created_at, u.updated_at
		FROM users u
		LEFT JOIN group_members gm ON gm.user_id = u.id
		WHERE ($1 = '' OR u.status = $1)
		GROUP BY u.id
		ORDER BY u.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query,
		filter.Status,
		filter.PageSize,
		(filter.Page-1)*filter.PageSize,
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}
	return users, nil
}

// Update persists profile changes.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	const query = `
		UPDATE users
		SET name = $2, avatar_url = NULLIF($3, ''), status = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.AvatarURL,
		string(user.Status),
		user.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDatabaseError("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}

// Permissions returns the distinct permission codes granted through the
// user's groups.
func (r *UserRepository) Permissions(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT DISTINCT gp.permission
		FROM group_permissions gp
		JOIN group_members gm ON gm.group_id = gp.group_id
		WHERE gm.user_id = $1
		ORDER BY gp.permission`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("user permissions", err)
	}
	defer rows.Close()

	permissions := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, apperrors.NewDatabaseError("scan permission", err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("user permissions", err)
	}
	return permissions, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var status string
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&status,
		&user.GroupIDs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.Status = entities.UserStatus(status)
	return &user, nil
}
