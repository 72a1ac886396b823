// Package admin holds the platform-operator flows: tenant offboarding and
// its read-only preview. These endpoints are gated to the platform_admin
// role at the HTTP layer.
package admin

import (
	"context"

	"github.com/heliox-inc/heliox/internal/application/admin/dto"
	"github.com/heliox-inc/heliox/internal/application/admin/usecases"
	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/infrastructure/storage"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	deleteCompany      *usecases.DeleteCompanyUseCase
	getDeletionSummary *usecases.GetDeletionSummaryUseCase
	listAuditLogs      *usecases.ListAuditLogsUseCase
}

func NewService(
	purge usecases.TenantPurgeStore,
	companyRepo usecases.CompanyRepository,
	blobs storage.BlobStore,
	auditWriter audit.Writer,
	auditReader usecases.AuditLogReader,
	logger logger.Interface,
) *Service {
	return &Service{
		logger:             logger,
		deleteCompany:      usecases.NewDeleteCompanyUseCase(purge, companyRepo, blobs, auditWriter, logger),
		getDeletionSummary: usecases.NewGetDeletionSummaryUseCase(purge, companyRepo, blobs, logger),
		listAuditLogs:      usecases.NewListAuditLogsUseCase(auditReader, logger),
	}
}

func (s *Service) DeleteCompany(ctx context.Context, companyID uint, actor audit.Actor) (*dto.DeletionResult, error) {
	return s.deleteCompany.Execute(ctx, companyID, actor)
}

func (s *Service) GetCompanyDeletionSummary(ctx context.Context, companyID uint) (*dto.DeletionSummary, error) {
	return s.getDeletionSummary.Execute(ctx, companyID)
}

func (s *Service) ListAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error) {
	return s.listAuditLogs.Execute(ctx, limit, offset)
}
