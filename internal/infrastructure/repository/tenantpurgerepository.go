package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/shared/constants"
	"github.com/heliox-inc/heliox/internal/shared/utils/setutil"
)

// DefaultMaxBatchSize caps how many rows one delete chunk may carry. The
// store's batch write API rejects larger groups, so a filled chunk is
// committed immediately and a fresh one started.
const DefaultMaxBatchSize = 450

// legacyInChunkSize bounds "value IN (...)" membership queries used by the
// legacy-inventory fallback.
const legacyInChunkSize = 10

// purgeTarget binds a logical collection name to its model and tenant filter
// column. The offboarding path iterates these in order; the read-only summary
// reuses the exact same filters so both always agree on what belongs to a
// tenant.
type purgeTarget struct {
	name   string
	model  func() interface{}
	column string
}

func companyScopedTargets() []purgeTarget {
	byCompany := func(name string, model func() interface{}) purgeTarget {
		return purgeTarget{name: name, model: model, column: "company_id"}
	}
	return []purgeTarget{
		byCompany(constants.TableUsers, func() interface{} { return &models.UserModel{} }),
		byCompany(constants.TableFaults, func() interface{} { return &models.FaultModel{} }),
		byCompany(constants.TableElectricalMaintenance, func() interface{} { return &models.ElectricalMaintenanceModel{} }),
		byCompany(constants.TableMechanicalMaintenance, func() interface{} { return &models.MechanicalMaintenanceModel{} }),
		byCompany(constants.TableStockItems, func() interface{} { return &models.StockItemModel{} }),
		byCompany(constants.TableStockMovements, func() interface{} { return &models.StockMovementModel{} }),
		byCompany(constants.TableShiftReports, func() interface{} { return &models.ShiftReportModel{} }),
		byCompany(constants.TableCustomers, func() interface{} { return &models.CustomerModel{} }),
		byCompany(constants.TableProductionRecords, func() interface{} { return &models.ProductionRecordModel{} }),
		byCompany(constants.TablePowerOutages, func() interface{} { return &models.PowerOutageModel{} }),
		byCompany(constants.TableInventoryItems, func() interface{} { return &models.InventoryItemModel{} }),
		byCompany(constants.TableWorkRecords, func() interface{} { return &models.WorkRecordModel{} }),
		byCompany(constants.TableNotifications, func() interface{} { return &models.NotificationModel{} }),
		byCompany(constants.TableSubscriptions, func() interface{} { return &models.SubscriptionModel{} }),
		byCompany(constants.TableUpgradeRequests, func() interface{} { return &models.UpgradeRequestModel{} }),
		byCompany(constants.TableLeaveRequests, func() interface{} { return &models.LeaveRequestModel{} }),
	}
}

type TenantPurgeRepositoryImpl struct {
	db           *gorm.DB
	maxBatchSize int
	targets      []purgeTarget
}

func NewTenantPurgeRepository(db *gorm.DB, maxBatchSize int) *TenantPurgeRepositoryImpl {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &TenantPurgeRepositoryImpl{
		db:           db,
		maxBatchSize: maxBatchSize,
		targets:      companyScopedTargets(),
	}
}

// Collections returns the ordered logical names of the simple
// company-scoped collections.
func (r *TenantPurgeRepositoryImpl) Collections() []string {
	names := make([]string, len(r.targets))
	for i, t := range r.targets {
		names[i] = t.name
	}
	return names
}

func (r *TenantPurgeRepositoryImpl) target(collection string) (purgeTarget, error) {
	for _, t := range r.targets {
		if t.name == collection {
			return t, nil
		}
	}
	return purgeTarget{}, fmt.Errorf("unknown purge collection: %s", collection)
}

func (r *TenantPurgeRepositoryImpl) CountByCompany(ctx context.Context, collection string, companyID uint) (int64, error) {
	t, err := r.target(collection)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(t.model()).
		Where(fmt.Sprintf("%s = ?", t.column), companyID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}

func (r *TenantPurgeRepositoryImpl) DeleteByCompany(ctx context.Context, collection string, companyID uint) (int64, error) {
	t, err := r.target(collection)
	if err != nil {
		return 0, err
	}
	return r.chunkedDelete(ctx, t.model, fmt.Sprintf("%s = ?", t.column), companyID)
}

// chunkedDelete removes every row matching the condition, committing one
// chunk of at most maxBatchSize primary keys at a time. An empty first chunk
// is not an error: purging an already-clean collection deletes nothing.
func (r *TenantPurgeRepositoryImpl) chunkedDelete(ctx context.Context, model func() interface{}, cond string, args ...interface{}) (int64, error) {
	var total int64
	for {
		var ids []uint
		if err := r.db.WithContext(ctx).
			Model(model()).
			Where(cond, args...).
			Limit(r.maxBatchSize).
			Pluck("id", &ids).Error; err != nil {
			return total, fmt.Errorf("failed to collect ids: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}

		result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(model())
		if result.Error != nil {
			return total, fmt.Errorf("failed to delete chunk: %w", result.Error)
		}
		total += result.RowsAffected

		if len(ids) < r.maxBatchSize {
			return total, nil
		}
	}
}

func (r *TenantPurgeRepositoryImpl) SiteIDsByCompany(ctx context.Context, companyID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.SiteModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to collect site ids: %w", err)
	}
	return ids, nil
}

func (r *TenantPurgeRepositoryImpl) PlantIDsByCompany(ctx context.Context, companyID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PlantModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to collect plant ids: %w", err)
	}
	return ids, nil
}

// DeleteSites removes the company's site rows.
func (r *TenantPurgeRepositoryImpl) DeleteSites(ctx context.Context, companyID uint) (int64, error) {
	return r.chunkedDelete(ctx, func() interface{} { return &models.SiteModel{} }, "company_id = ?", companyID)
}

// DeletePlantsWithProduction removes the company's plants together with
// their nested monthly-production rows. Children go first so a failure
// between the passes cannot orphan them.
func (r *TenantPurgeRepositoryImpl) DeletePlantsWithProduction(ctx context.Context, companyID uint) (plants int64, production int64, err error) {
	plantIDs, err := r.PlantIDsByCompany(ctx, companyID)
	if err != nil {
		return 0, 0, err
	}

	if len(plantIDs) > 0 {
		production, err = r.chunkedDelete(ctx,
			func() interface{} { return &models.PlantMonthlyProductionModel{} },
			"plant_id IN ?", plantIDs)
		if err != nil {
			return 0, production, err
		}
	}

	plants, err = r.chunkedDelete(ctx, func() interface{} { return &models.PlantModel{} }, "company_id = ?", companyID)
	return plants, production, err
}

// DeleteFeedbackWithLikes removes feedback entries and their nested likes.
func (r *TenantPurgeRepositoryImpl) DeleteFeedbackWithLikes(ctx context.Context, companyID uint) (feedback int64, likes int64, err error) {
	var feedbackIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &feedbackIDs).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to collect feedback ids: %w", err)
	}

	if len(feedbackIDs) > 0 {
		likes, err = r.chunkedDelete(ctx,
			func() interface{} { return &models.FeedbackLikeModel{} },
			"feedback_id IN ?", feedbackIDs)
		if err != nil {
			return 0, likes, err
		}
	}

	feedback, err = r.chunkedDelete(ctx, func() interface{} { return &models.FeedbackModel{} }, "company_id = ?", companyID)
	return feedback, likes, err
}

// DeleteBackupsWithLogs removes backup runs and their nested log rows.
func (r *TenantPurgeRepositoryImpl) DeleteBackupsWithLogs(ctx context.Context, companyID uint) (backups int64, logs int64, err error) {
	var backupIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.BackupModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &backupIDs).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to collect backup ids: %w", err)
	}

	if len(backupIDs) > 0 {
		logs, err = r.chunkedDelete(ctx,
			func() interface{} { return &models.BackupLogModel{} },
			"backup_id IN ?", backupIDs)
		if err != nil {
			return 0, logs, err
		}
	}

	backups, err = r.chunkedDelete(ctx, func() interface{} { return &models.BackupModel{} }, "company_id = ?", companyID)
	return backups, logs, err
}

// LegacyInventoryIDs finds inventory rows that predate tenant scoping: no
// company_id, but a site or plant belonging to the offboarding company.
// Membership queries run in chunks of at most legacyInChunkSize values, and
// rows matched through both a site and a plant are deduplicated by primary
// key.
func (r *TenantPurgeRepositoryImpl) LegacyInventoryIDs(ctx context.Context, siteIDs, plantIDs []uint) ([]uint, error) {
	seen := setutil.NewUintSet()

	collect := func(column string, parentIDs []uint) error {
		for _, chunk := range chunkIDs(parentIDs, legacyInChunkSize) {
			var ids []uint
			if err := r.db.WithContext(ctx).
				Model(&models.InventoryItemModel{}).
				Where(fmt.Sprintf("company_id IS NULL AND %s IN ?", column), chunk).
				Pluck("id", &ids).Error; err != nil {
				return fmt.Errorf("failed to query legacy inventory by %s: %w", column, err)
			}
			seen.AddAll(ids)
		}
		return nil
	}

	if err := collect("site_id", siteIDs); err != nil {
		return nil, err
	}
	if err := collect("plant_id", plantIDs); err != nil {
		return nil, err
	}

	return seen.ToSlice(), nil
}

// DeleteInventoryByIDs removes the given inventory rows in chunks.
func (r *TenantPurgeRepositoryImpl) DeleteInventoryByIDs(ctx context.Context, ids []uint) (int64, error) {
	var total int64
	for _, chunk := range chunkIDs(ids, r.maxBatchSize) {
		result := r.db.WithContext(ctx).
			Where("id IN ?", chunk).
			Delete(&models.InventoryItemModel{})
		if result.Error != nil {
			return total, fmt.Errorf("failed to delete legacy inventory chunk: %w", result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}

// CountNested reports row counts for the collections the generic pass does
// not cover, using the same filters the deletion passes use.
func (r *TenantPurgeRepositoryImpl) CountNested(ctx context.Context, companyID uint) (map[string]int64, error) {
	counts := make(map[string]int64)

	countWhere := func(name string, model interface{}, cond string, args ...interface{}) error {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Where(cond, args...).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = count
		return nil
	}

	if err := countWhere(constants.TableSites, &models.SiteModel{}, "company_id = ?", companyID); err != nil {
		return nil, err
	}
	if err := countWhere(constants.TablePlants, &models.PlantModel{}, "company_id = ?", companyID); err != nil {
		return nil, err
	}
	if err := countWhere(constants.TableFeedback, &models.FeedbackModel{}, "company_id = ?", companyID); err != nil {
		return nil, err
	}
	if err := countWhere(constants.TableBackups, &models.BackupModel{}, "company_id = ?", companyID); err != nil {
		return nil, err
	}

	plantIDs, err := r.PlantIDsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	counts[constants.TablePlantMonthlyProduction] = 0
	if len(plantIDs) > 0 {
		if err := countWhere(constants.TablePlantMonthlyProduction, &models.PlantMonthlyProductionModel{}, "plant_id IN ?", plantIDs); err != nil {
			return nil, err
		}
	}

	var feedbackIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &feedbackIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to collect feedback ids: %w", err)
	}
	counts[constants.TableFeedbackLikes] = 0
	if len(feedbackIDs) > 0 {
		if err := countWhere(constants.TableFeedbackLikes, &models.FeedbackLikeModel{}, "feedback_id IN ?", feedbackIDs); err != nil {
			return nil, err
		}
	}

	var backupIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.BackupModel{}).
		Where("company_id = ?", companyID).
		Pluck("id", &backupIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to collect backup ids: %w", err)
	}
	counts[constants.TableBackupLogs] = 0
	if len(backupIDs) > 0 {
		if err := countWhere(constants.TableBackupLogs, &models.BackupLogModel{}, "backup_id IN ?", backupIDs); err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (r *TenantPurgeRepositoryImpl) CountAuditLogsTargeting(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AuditLogModel{}).
		Where("target_company_id = ?", companyID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	return count, nil
}

func (r *TenantPurgeRepositoryImpl) DeleteAuditLogsTargeting(ctx context.Context, companyID uint) (int64, error) {
	return r.chunkedDelete(ctx, func() interface{} { return &models.AuditLogModel{} }, "target_company_id = ?", companyID)
}

// DeleteCompanyRow removes the tenant root. Callers must run it last;
// deleting an already-gone root is not an error so a rerun stays idempotent.
func (r *TenantPurgeRepositoryImpl) DeleteCompanyRow(ctx context.Context, companyID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, companyID).Error; err != nil {
		return fmt.Errorf("failed to delete company row: %w", err)
	}
	return nil
}

func chunkIDs(ids []uint, size int) [][]uint {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	var chunks [][]uint
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
