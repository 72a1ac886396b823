package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/domain/notification"
	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/utils"
)

// CreateNotificationUseCase writes one shared notification document and
// pushes it to its audience. Push delivery is best effort; a gateway failure
// is logged and the creation still succeeds.
type CreateNotificationUseCase struct {
	repo     NotificationRepository
	userRepo UserRepository
	push     PushSender
	logger   logger.Interface
}

func NewCreateNotificationUseCase(
	repo NotificationRepository,
	userRepo UserRepository,
	push PushSender,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		repo:     repo,
		userRepo: userRepo,
		push:     push,
		logger:   logger,
	}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	uc.logger.Infow("creating notification", "company_id", req.CompanyID, "type", req.Type, "title", req.Title)

	notifType := vo.NotificationType(req.Type)
	roles, ok := uservo.ParseRoles(req.Roles)
	if !ok {
		return nil, errors.NewValidationError("invalid role in role list")
	}

	// Nil metadata values are dropped and loosely typed timestamp entries
	// are normalized before anything downstream sees them, so the stored
	// document and the push payload never carry nulls or ambiguous dates.
	metadata := vo.MetadataFromMap(utils.NormalizeTimestamps(utils.StripNilValues(req.Metadata)))

	n, err := notification.NewNotification(req.CompanyID, notifType, req.Title, req.Message, notification.Params{
		UserID:    req.UserID,
		ActionURL: req.ActionURL,
		Roles:     roles,
		Metadata:  metadata,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		uc.logger.Warnw("rejected notification", "company_id", req.CompanyID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification", "company_id", req.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	uc.sendPush(ctx, n)

	uc.logger.Infow("notification created", "id", n.ID(), "company_id", req.CompanyID)
	viewerID := uint(0)
	if req.UserID != nil {
		viewerID = *req.UserID
	}
	return dto.ToNotificationResponse(n, viewerID), nil
}

func (uc *CreateNotificationUseCase) sendPush(ctx context.Context, n *notification.Notification) {
	userIDs, err := uc.resolveAudience(ctx, n)
	if err != nil {
		uc.logger.Warnw("failed to resolve push audience", "notification_id", n.ID(), "error", err)
		return
	}
	if len(userIDs) == 0 {
		return
	}

	if err := uc.push.Send(ctx, userIDs, n.Title(), n.Message(), n.Metadata().ToMap()); err != nil {
		uc.logger.Warnw("push delivery failed", "notification_id", n.ID(), "error", err)
	}
}

func (uc *CreateNotificationUseCase) resolveAudience(ctx context.Context, n *notification.Notification) ([]uint, error) {
	if target := n.UserID(); target != nil {
		return []uint{*target}, nil
	}

	roles := n.Roles()
	if len(roles) == 0 {
		roles = uservo.CompanyRoles()
	}
	users, err := uc.userRepo.ListByCompanyAndRoles(ctx, n.CompanyID(), roles)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		if u.IsActive() {
			ids = append(ids, u.ID())
		}
	}
	return ids, nil
}
