package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/infrastructure/cache"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// MarkAllAsReadUseCase marks every notification currently visible to the
// user as read. Only documents the viewer can actually see are touched, so
// a guard cannot "read" notifications scoped away from them.
type MarkAllAsReadUseCase struct {
	repo   NotificationRepository
	list   *ListNotificationsUseCase
	cache  Cache
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(
	repo NotificationRepository,
	list *ListNotificationsUseCase,
	cache Cache,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		list:   list,
		cache:  cache,
		logger: logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, companyID, userID uint) error {
	visible, err := uc.list.visibleForUser(ctx, companyID, userID)
	if err != nil {
		return err
	}

	for _, n := range visible {
		if n.IsReadBy(userID) {
			continue
		}
		if err := uc.repo.AddReadBy(ctx, n.ID(), userID); err != nil {
			uc.logger.Errorw("failed to mark notification as read", "id", n.ID(), "user_id", userID, "error", err)
			return fmt.Errorf("failed to mark all notifications as read: %w", err)
		}
	}

	key := cache.UnreadCountKey(companyID, userID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to invalidate unread count cache", "key", key, "error", err)
	}

	uc.logger.Infow("marked all notifications as read", "company_id", companyID, "user_id", userID)
	return nil
}
