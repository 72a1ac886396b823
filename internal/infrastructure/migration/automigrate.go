package migration

import (
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model. The purge path assumes all
// tenant-scoped tables exist, so additions here must be mirrored in the
// purge repository's collection list.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.UserModel{},
		&models.SiteModel{},
		&models.PlantModel{},
		&models.PlantMonthlyProductionModel{},
		&models.FaultModel{},
		&models.ElectricalMaintenanceModel{},
		&models.MechanicalMaintenanceModel{},
		&models.StockItemModel{},
		&models.StockMovementModel{},
		&models.ShiftReportModel{},
		&models.CustomerModel{},
		&models.ProductionRecordModel{},
		&models.PowerOutageModel{},
		&models.InventoryItemModel{},
		&models.WorkRecordModel{},
		&models.NotificationModel{},
		&models.FeedbackModel{},
		&models.FeedbackLikeModel{},
		&models.SubscriptionModel{},
		&models.UpgradeRequestModel{},
		&models.LeaveRequestModel{},
		&models.BackupModel{},
		&models.BackupLogModel{},
		&models.AuditLogModel{},
	}
}
