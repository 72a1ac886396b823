package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyCompanyID = "company_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names. The purge path iterates over these, so every
	// tenant-scoped table must be listed here and in its model's TableName.
	TableCompanies              = "companies"
	TableUsers                  = "users"
	TableSites                  = "sites"
	TablePlants                 = "plants"
	TablePlantMonthlyProduction = "plant_monthly_production"
	TableFaults                 = "faults"
	TableElectricalMaintenance  = "electrical_maintenance_records"
	TableMechanicalMaintenance  = "mechanical_maintenance_records"
	TableStockItems             = "stock_items"
	TableStockMovements         = "stock_movements"
	TableShiftReports           = "shift_reports"
	TableCustomers              = "customers"
	TableProductionRecords      = "production_records"
	TablePowerOutages           = "power_outages"
	TableInventoryItems         = "inventory_items"
	TableWorkRecords            = "work_records"
	TableNotifications          = "notifications"
	TableFeedback               = "feedback_entries"
	TableFeedbackLikes          = "feedback_likes"
	TableSubscriptions          = "subscriptions"
	TableUpgradeRequests        = "upgrade_requests"
	TableLeaveRequests          = "leave_requests"
	TableBackups                = "backups"
	TableBackupLogs             = "backup_logs"
	TableAuditLogs              = "audit_logs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
