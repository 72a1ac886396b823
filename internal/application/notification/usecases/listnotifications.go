package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// ListNotificationsUseCase builds one user's feed. The query pulls the
// tenant's recent notifications without any per-user predicate; visibility
// is decided in memory against the viewer's identity, role, and site/plant
// assignments.
type ListNotificationsUseCase struct {
	repo      NotificationRepository
	userRepo  UserRepository
	feedLimit int
	logger    logger.Interface
}

func NewListNotificationsUseCase(
	repo NotificationRepository,
	userRepo UserRepository,
	feedLimit int,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:      repo,
		userRepo:  userRepo,
		feedLimit: feedLimit,
		logger:    logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, companyID, userID uint) (*dto.ListResponse, error) {
	visible, err := uc.visibleForUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ListResponse{
		Notifications: dto.ToNotificationResponses(visible, userID),
		Total:         len(visible),
	}, nil
}

func (uc *ListNotificationsUseCase) visibleForUser(ctx context.Context, companyID, userID uint) ([]*notification.Notification, error) {
	viewer, err := uc.buildViewer(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	list, err := uc.repo.ListRecentByCompany(ctx, companyID, uc.feedLimit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notification.FilterVisible(list, viewer, time.Now()), nil
}

func (uc *ListNotificationsUseCase) buildViewer(ctx context.Context, companyID, userID uint) (notification.Viewer, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("viewer not found", "user_id", userID, "error", err)
		return notification.Viewer{}, errors.NewNotFoundError("user not found")
	}
	if u.CompanyID() != companyID {
		return notification.Viewer{}, errors.NewForbiddenError("user does not belong to this company")
	}

	return notification.Viewer{
		UserID:   u.ID(),
		Role:     u.Role(),
		SiteIDs:  u.SiteIDs(),
		PlantIDs: u.PlantIDs(),
	}, nil
}
