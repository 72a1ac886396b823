package usecases

import (
	"context"

	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/domain/company"
)

// TenantPurgeStore is the deletion surface over every tenant-scoped
// collection. Count methods apply the exact same filters as their delete
// counterparts so the summary and the run always agree.
type TenantPurgeStore interface {
	Collections() []string
	CountByCompany(ctx context.Context, collection string, companyID uint) (int64, error)
	DeleteByCompany(ctx context.Context, collection string, companyID uint) (int64, error)

	SiteIDsByCompany(ctx context.Context, companyID uint) ([]uint, error)
	PlantIDsByCompany(ctx context.Context, companyID uint) ([]uint, error)
	DeleteSites(ctx context.Context, companyID uint) (int64, error)
	DeletePlantsWithProduction(ctx context.Context, companyID uint) (plants, production int64, err error)
	DeleteFeedbackWithLikes(ctx context.Context, companyID uint) (feedback, likes int64, err error)
	DeleteBackupsWithLogs(ctx context.Context, companyID uint) (backups, logs int64, err error)
	CountNested(ctx context.Context, companyID uint) (map[string]int64, error)

	LegacyInventoryIDs(ctx context.Context, siteIDs, plantIDs []uint) ([]uint, error)
	DeleteInventoryByIDs(ctx context.Context, ids []uint) (int64, error)

	CountAuditLogsTargeting(ctx context.Context, companyID uint) (int64, error)
	DeleteAuditLogsTargeting(ctx context.Context, companyID uint) (int64, error)

	DeleteCompanyRow(ctx context.Context, companyID uint) error
}

// CompanyRepository resolves and updates the tenant root.
type CompanyRepository interface {
	GetByID(ctx context.Context, id uint) (*company.Company, error)
	Update(ctx context.Context, c *company.Company) error
}

// AuditLogReader pages through the audit trail, newest first.
type AuditLogReader interface {
	List(ctx context.Context, limit, offset int) ([]audit.Entry, int64, error)
}
