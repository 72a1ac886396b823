package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/infrastructure/cache"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// MarkAsReadUseCase unions the user into the document's readBy set. The
// write touches only that set: other eligible readers keep their own state
// on the same shared row.
type MarkAsReadUseCase struct {
	repo   NotificationRepository
	cache  Cache
	logger logger.Interface
}

func NewMarkAsReadUseCase(
	repo NotificationRepository,
	cache Cache,
	logger logger.Interface,
) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, id, companyID, userID uint) error {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("notification not found", "id", id, "error", err)
		return errors.NewNotFoundError("notification not found")
	}
	if n.CompanyID() != companyID {
		uc.logger.Warnw("cross-tenant notification access denied", "id", id, "company_id", companyID)
		return errors.NewForbiddenError("notification does not belong to this company")
	}

	if n.IsReadBy(userID) {
		return nil
	}

	if err := uc.repo.AddReadBy(ctx, id, userID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "id", id, "user_id", userID, "error", err)
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	uc.invalidateUnreadCount(ctx, companyID, userID)
	return nil
}

func (uc *MarkAsReadUseCase) invalidateUnreadCount(ctx context.Context, companyID, userID uint) {
	key := cache.UnreadCountKey(companyID, userID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to invalidate unread count cache", "key", key, "error", err)
	}
}
