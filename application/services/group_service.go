package services

import (
	"context"

	"opsboard-backend/application/ports"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// GroupService owns group mutations.
type GroupService struct {
	groups      ports.GroupRepository
	invalidator *cache.Invalidator
	logger      *zap.Logger
}

// NewGroupService creates the group service.
func NewGroupService(groups ports.GroupRepository, invalidator *cache.Invalidator, logger *zap.Logger) *GroupService {
	return &GroupService{
		groups:      groups,
		invalidator: invalidator,
		logger:      logger,
	}
}

// UpdatePermissions replaces a group's permission set. A group's permissions
// feed every member's permission cache, so the invalidation here is the wide
// one.
func (s *GroupService) UpdatePermissions(ctx context.Context, groupID string, permissions []string) error {
	if groupID == "" {
		return apperrors.NewValidationError("group ID is required")
	}
	for _, p := range permissions {
		if p == "" {
			return apperrors.NewValidationError("permission codes must be non-empty")
		}
	}

	if err := s.groups.UpdatePermissions(ctx, groupID, permissions); err != nil {
		return err
	}

	s.invalidator.InvalidateGroup(ctx, groupID)

	s.logger.Info("group permissions updated",
		zap.String("groupId", groupID),
		zap.Int("permissions", len(permissions)),
	)
	return nil
}
