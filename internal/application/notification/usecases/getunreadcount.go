package usecases

import (
	"context"
	"time"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/infrastructure/cache"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// GetUnreadCountUseCase counts the viewer's visible-and-unread
// notifications. The count sits behind a short-TTL advisory cache; cache
// failures fall through to the repository.
type GetUnreadCountUseCase struct {
	list     *ListNotificationsUseCase
	cache    Cache
	cacheTTL time.Duration
	logger   logger.Interface
}

func NewGetUnreadCountUseCase(
	list *ListNotificationsUseCase,
	cache Cache,
	cacheTTL time.Duration,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		list:     list,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, companyID, userID uint) (*dto.UnreadCountResponse, error) {
	key := cache.UnreadCountKey(companyID, userID)

	var cached int
	if hit, err := uc.cache.Get(ctx, key, &cached); err != nil {
		uc.logger.Warnw("unread count cache read failed", "key", key, "error", err)
	} else if hit {
		return &dto.UnreadCountResponse{Count: cached}, nil
	}

	visible, err := uc.list.visibleForUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, n := range visible {
		if !n.IsReadBy(userID) {
			count++
		}
	}

	if err := uc.cache.Set(ctx, key, count, uc.cacheTTL); err != nil {
		uc.logger.Warnw("unread count cache write failed", "key", key, "error", err)
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}
