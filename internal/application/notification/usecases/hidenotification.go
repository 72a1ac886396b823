package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// HideNotificationUseCase unions the user into the document's hiddenBy set.
// The document stays in place for everyone else; this is a per-user
// tombstone, not a delete.
type HideNotificationUseCase struct {
	repo   NotificationRepository
	logger logger.Interface
}

func NewHideNotificationUseCase(
	repo NotificationRepository,
	logger logger.Interface,
) *HideNotificationUseCase {
	return &HideNotificationUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *HideNotificationUseCase) Execute(ctx context.Context, id, companyID, userID uint) error {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("notification not found", "id", id, "error", err)
		return errors.NewNotFoundError("notification not found")
	}
	if n.CompanyID() != companyID {
		uc.logger.Warnw("cross-tenant notification access denied", "id", id, "company_id", companyID)
		return errors.NewForbiddenError("notification does not belong to this company")
	}

	if n.IsHiddenFor(userID) {
		return nil
	}

	if err := uc.repo.AddHiddenBy(ctx, id, userID); err != nil {
		uc.logger.Errorw("failed to hide notification", "id", id, "user_id", userID, "error", err)
		return fmt.Errorf("failed to hide notification: %w", err)
	}

	uc.logger.Infow("notification hidden for user", "id", id, "user_id", userID)
	return nil
}
