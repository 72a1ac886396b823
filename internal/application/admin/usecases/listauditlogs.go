package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/application/admin/dto"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

const defaultAuditPageSize = 50

// ListAuditLogsUseCase pages the platform audit trail for the console.
type ListAuditLogsUseCase struct {
	reader AuditLogReader
	logger logger.Interface
}

func NewListAuditLogsUseCase(reader AuditLogReader, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{reader: reader, logger: logger}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := uc.reader.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	out := make([]dto.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogEntry{
			ActorID:         e.Actor.ID,
			ActorEmail:      e.Actor.Email,
			ActorName:       e.Actor.Name,
			Action:          e.Action,
			Resource:        e.Resource,
			ResourceID:      e.ResourceID,
			TargetCompanyID: e.TargetCompanyID,
			Details:         e.Details,
			Severity:        string(e.Severity),
			Success:         e.Success,
			CreatedAt:       e.CreatedAt,
		})
	}

	return &dto.AuditLogListResponse{Entries: out, Total: total}, nil
}
