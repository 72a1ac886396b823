package usecases

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/application/admin/dto"
	"github.com/heliox-inc/heliox/internal/infrastructure/storage"
	"github.com/heliox-inc/heliox/internal/shared/constants"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// GetDeletionSummaryUseCase previews an offboarding run without deleting
// anything. It reuses the purge store's filters, so the numbers here are
// the numbers a run started now would delete.
type GetDeletionSummaryUseCase struct {
	purge       TenantPurgeStore
	companyRepo CompanyRepository
	blobs       storage.BlobStore
	logger      logger.Interface
}

func NewGetDeletionSummaryUseCase(
	purge TenantPurgeStore,
	companyRepo CompanyRepository,
	blobs storage.BlobStore,
	logger logger.Interface,
) *GetDeletionSummaryUseCase {
	return &GetDeletionSummaryUseCase{
		purge:       purge,
		companyRepo: companyRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (uc *GetDeletionSummaryUseCase) Execute(ctx context.Context, companyID uint) (*dto.DeletionSummary, error) {
	c, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		uc.logger.Warnw("company not found for deletion summary", "company_id", companyID, "error", err)
		return nil, errors.NewNotFoundError("company not found")
	}

	counts := make(map[string]int64)
	for _, collection := range uc.purge.Collections() {
		count, err := uc.purge.CountByCompany(ctx, collection, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", collection, err)
		}
		counts[collection] = count
	}

	nested, err := uc.purge.CountNested(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for name, count := range nested {
		counts[name] = count
	}

	siteIDs, err := uc.purge.SiteIDsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	plantIDs, err := uc.purge.PlantIDsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	legacyIDs, err := uc.purge.LegacyInventoryIDs(ctx, siteIDs, plantIDs)
	if err != nil {
		return nil, err
	}
	counts[legacyInventoryKey] = int64(len(legacyIDs))

	auditCount, err := uc.purge.CountAuditLogsTargeting(ctx, companyID)
	if err != nil {
		return nil, err
	}
	counts[constants.TableAuditLogs] = auditCount

	blobObjects, err := storage.CountTree(ctx, uc.blobs, storage.CompanyPrefix(companyID))
	if err != nil {
		uc.logger.Warnw("failed to count blob tree", "company_id", companyID, "error", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return &dto.DeletionSummary{
		CompanyID:   companyID,
		CompanyName: c.Name(),
		Counts:      counts,
		BlobObjects: blobObjects,
		TotalRows:   total,
	}, nil
}
