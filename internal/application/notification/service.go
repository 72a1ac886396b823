package notification

import (
	"context"
	"time"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/application/notification/usecases"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// Service is the notification application facade the HTTP layer talks to.
type Service struct {
	logger logger.Interface

	create      *usecases.CreateNotificationUseCase
	list        *usecases.ListNotificationsUseCase
	unreadCount *usecases.GetUnreadCountUseCase
	markAsRead  *usecases.MarkAsReadUseCase
	markAll     *usecases.MarkAllAsReadUseCase
	hide        *usecases.HideNotificationUseCase
}

func NewService(
	repo usecases.NotificationRepository,
	userRepo usecases.UserRepository,
	cache usecases.Cache,
	push usecases.PushSender,
	feedLimit int,
	cacheTTL time.Duration,
	logger logger.Interface,
) *Service {
	create := usecases.NewCreateNotificationUseCase(repo, userRepo, push, logger)
	list := usecases.NewListNotificationsUseCase(repo, userRepo, feedLimit, logger)

	return &Service{
		logger:      logger,
		create:      create,
		list:        list,
		unreadCount: usecases.NewGetUnreadCountUseCase(list, cache, cacheTTL, logger),
		markAsRead:  usecases.NewMarkAsReadUseCase(repo, cache, logger),
		markAll:     usecases.NewMarkAllAsReadUseCase(repo, list, cache, logger),
		hide:        usecases.NewHideNotificationUseCase(repo, logger),
	}
}

// CreateUseCase exposes the create path for the event fan-out helpers.
func (s *Service) CreateUseCase() *usecases.CreateNotificationUseCase {
	return s.create
}

func (s *Service) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	return s.create.Execute(ctx, req)
}

func (s *Service) ListNotifications(ctx context.Context, companyID, userID uint) (*dto.ListResponse, error) {
	return s.list.Execute(ctx, companyID, userID)
}

func (s *Service) GetUnreadCount(ctx context.Context, companyID, userID uint) (*dto.UnreadCountResponse, error) {
	return s.unreadCount.Execute(ctx, companyID, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, companyID, userID uint) error {
	return s.markAsRead.Execute(ctx, id, companyID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, companyID, userID uint) error {
	return s.markAll.Execute(ctx, companyID, userID)
}

func (s *Service) HideNotification(ctx context.Context, id, companyID, userID uint) error {
	return s.hide.Execute(ctx, id, companyID, userID)
}
