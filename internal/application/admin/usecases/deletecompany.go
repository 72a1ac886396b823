package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/heliox-inc/heliox/internal/application/admin/dto"
	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/infrastructure/storage"
	"github.com/heliox-inc/heliox/internal/shared/constants"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

// legacyInventoryKey labels the fallback pass over inventory rows that
// predate tenant scoping.
const legacyInventoryKey = "inventory_items_legacy"

// DeleteCompanyUseCase runs the tenant offboarding cascade. Each collection
// is purged independently: a failure is recorded and the run moves on, so
// one broken collection cannot strand the rest of the tenant's data. The
// root company row goes last, and only its deletion decides Success — a
// rerun after a partial failure picks up whatever is left.
type DeleteCompanyUseCase struct {
	purge       TenantPurgeStore
	companyRepo CompanyRepository
	blobs       storage.BlobStore
	auditWriter audit.Writer
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(
	purge TenantPurgeStore,
	companyRepo CompanyRepository,
	blobs storage.BlobStore,
	auditWriter audit.Writer,
	logger logger.Interface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		purge:       purge,
		companyRepo: companyRepo,
		blobs:       blobs,
		auditWriter: auditWriter,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, companyID uint, actor audit.Actor) (*dto.DeletionResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		uc.logger.Warnw("company not found for deletion", "company_id", companyID, "error", err)
		return nil, errors.NewNotFoundError("company not found")
	}

	uc.logger.Infow("starting company deletion", "company_id", companyID, "company_name", c.Name(), "actor_id", actor.ID)

	result := &dto.DeletionResult{
		CompanyID: companyID,
		Deleted:   make(map[string]int64),
	}

	// Advisory only: a failure to mark the company as deleting does not
	// block the purge, it just loses the status breadcrumb.
	c.BeginDeletion()
	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.recordError(result, "failed to mark company as deleting", err)
	}

	for _, collection := range uc.purge.Collections() {
		if collection == constants.TableInventoryItems {
			// Legacy rows need the site/plant lists, captured before the
			// site and plant collections are purged below.
			uc.purgeInventory(ctx, companyID, result)
			continue
		}
		deleted, err := uc.purge.DeleteByCompany(ctx, collection, companyID)
		result.Deleted[collection] = deleted
		if err != nil {
			uc.recordError(result, fmt.Sprintf("failed to purge %s", collection), err)
		}
	}

	feedback, likes, err := uc.purge.DeleteFeedbackWithLikes(ctx, companyID)
	result.Deleted[constants.TableFeedback] = feedback
	result.Deleted[constants.TableFeedbackLikes] = likes
	if err != nil {
		uc.recordError(result, "failed to purge feedback", err)
	}

	backups, backupLogs, err := uc.purge.DeleteBackupsWithLogs(ctx, companyID)
	result.Deleted[constants.TableBackups] = backups
	result.Deleted[constants.TableBackupLogs] = backupLogs
	if err != nil {
		uc.recordError(result, "failed to purge backups", err)
	}

	plants, production, err := uc.purge.DeletePlantsWithProduction(ctx, companyID)
	result.Deleted[constants.TablePlants] = plants
	result.Deleted[constants.TablePlantMonthlyProduction] = production
	if err != nil {
		uc.recordError(result, "failed to purge plants", err)
	}

	sites, err := uc.purge.DeleteSites(ctx, companyID)
	result.Deleted[constants.TableSites] = sites
	if err != nil {
		uc.recordError(result, "failed to purge sites", err)
	}

	auditLogs, err := uc.purge.DeleteAuditLogsTargeting(ctx, companyID)
	result.Deleted[constants.TableAuditLogs] = auditLogs
	if err != nil {
		uc.recordError(result, "failed to purge audit logs", err)
	}

	blobsDeleted, blobErrs := storage.DeleteTree(ctx, uc.blobs, storage.CompanyPrefix(companyID))
	result.BlobsDeleted = blobsDeleted
	for _, blobErr := range blobErrs {
		uc.recordError(result, "failed to purge blob tree", blobErr)
	}

	// Fire and forget: the offboarding record is written before the root
	// goes, and a failed write never blocks the deletion.
	uc.writeAuditEntry(ctx, companyID, c.Name(), actor, result)

	// The root row goes last so a crashed run leaves the company resolvable
	// and the deletion retriable. Unlike the sub-collection passes, a root
	// delete failure is fatal: the tenant still resolves, so the caller must
	// not take the run for a completed offboarding.
	var rootErr error
	if err := uc.purge.DeleteCompanyRow(ctx, companyID); err != nil {
		uc.recordError(result, "failed to delete company row", err)
		rootErr = errors.NewInternalError(fmt.Sprintf("company %d not offboarded: root row not deleted", companyID))
	} else {
		result.Success = true
	}

	uc.logger.Infow("company deletion finished",
		"company_id", companyID,
		"success", result.Success,
		"errors", len(result.Errors),
		"blobs_deleted", result.BlobsDeleted,
	)
	return result, rootErr
}

// purgeInventory removes the primary company_id-scoped rows, then sweeps
// legacy rows whose only tenant link is a site or plant reference.
func (uc *DeleteCompanyUseCase) purgeInventory(ctx context.Context, companyID uint, result *dto.DeletionResult) {
	siteIDs, err := uc.purge.SiteIDsByCompany(ctx, companyID)
	if err != nil {
		uc.recordError(result, "failed to collect site ids for legacy inventory", err)
	}
	plantIDs, err := uc.purge.PlantIDsByCompany(ctx, companyID)
	if err != nil {
		uc.recordError(result, "failed to collect plant ids for legacy inventory", err)
	}

	deleted, err := uc.purge.DeleteByCompany(ctx, constants.TableInventoryItems, companyID)
	result.Deleted[constants.TableInventoryItems] = deleted
	if err != nil {
		uc.recordError(result, "failed to purge inventory items", err)
	}

	legacyIDs, err := uc.purge.LegacyInventoryIDs(ctx, siteIDs, plantIDs)
	if err != nil {
		uc.recordError(result, "failed to find legacy inventory items", err)
		result.Deleted[legacyInventoryKey] = 0
		return
	}
	legacyDeleted, err := uc.purge.DeleteInventoryByIDs(ctx, legacyIDs)
	result.Deleted[legacyInventoryKey] = legacyDeleted
	if err != nil {
		uc.recordError(result, "failed to purge legacy inventory items", err)
	}
}

func (uc *DeleteCompanyUseCase) writeAuditEntry(ctx context.Context, companyID uint, companyName string, actor audit.Actor, result *dto.DeletionResult) {
	var total int64
	for _, n := range result.Deleted {
		total += n
	}

	entry := audit.Entry{
		Actor:           actor,
		Action:          audit.ActionCompanyDeleted,
		Resource:        "company",
		ResourceID:      fmt.Sprintf("%d", companyID),
		TargetCompanyID: &companyID,
		Details:         fmt.Sprintf("deleted %q: %d rows, %d blobs, %d errors", companyName, total, result.BlobsDeleted, len(result.Errors)),
		Severity:        audit.SeverityCritical,
		Success:         len(result.Errors) == 0,
		CreatedAt:       time.Now(),
	}
	if err := uc.auditWriter.Write(ctx, entry); err != nil {
		uc.logger.Warnw("failed to write deletion audit entry", "company_id", companyID, "error", err)
	}
}

func (uc *DeleteCompanyUseCase) recordError(result *dto.DeletionResult, msg string, err error) {
	uc.logger.Errorw(msg, "company_id", result.CompanyID, "error", err)
	result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", msg, err))
}
