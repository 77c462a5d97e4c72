package services

import (
	"context"
	"time"

	"opsboard-backend/application/ports"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// UserService owns user mutations. Every successful write ends with cache
// invalidation; invalidation failures never fail the write.
type UserService struct {
	users       ports.UserRepository
	invalidator *cache.Invalidator
	logger      *zap.Logger
}

// NewUserService creates the user service.
func NewUserService(users ports.UserRepository, invalidator *cache.Invalidator, logger *zap.Logger) *UserService {
	return &UserService{
		users:       users,
		invalidator: invalidator,
		logger:      logger,
	}
}

// UpdateProfileCommand carries the mutable profile fields. Nil means "leave
// unchanged".
type UpdateProfileCommand struct {
	UserID    string
	Name      *string
	AvatarURL *string
	Status    *string
}

// UpdateProfile applies profile changes and invalidates the user's caches.
func (s *UserService) UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*entities.User, error) {
	if cmd.UserID == "" {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	user, err := s.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		user.Name = *cmd.Name
	}
	if cmd.AvatarURL != nil {
		user.AvatarURL = *cmd.AvatarURL
	}
	if cmd.Status != nil {
		switch entities.UserStatus(*cmd.Status) {
		case entities.UserStatusActive, entities.UserStatusSuspended, entities.UserStatusDeleted:
			user.Status = entities.UserStatus(*cmd.Status)
		default:
			return nil, apperrors.NewValidationError("unknown status " + *cmd.Status)
		}
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	// The write is already durable; invalidation is fire-and-forget from the
	// caller's point of view.
	s.invalidator.InvalidateUser(ctx, user.ID)

	s.logger.Info("user profile updated", zap.String("userId", user.ID))
	return user, nil
}
