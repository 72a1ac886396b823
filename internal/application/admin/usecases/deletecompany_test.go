package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/domain/company"
	companyvo "github.com/heliox-inc/heliox/internal/domain/company/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/infrastructure/repository"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

type fakeCompanyRepo struct {
	db *gorm.DB
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.First(&model, id).Error; err != nil {
		return nil, errors.NewNotFoundError("company not found")
	}
	return company.ReconstructCompany(
		model.ID, model.Name,
		companyvo.Plan(model.Plan), companyvo.Status(model.Status),
		model.StorageUsedBytes, model.StorageObjectCount,
		model.CreatedAt, model.UpdatedAt,
	)
}

func (r *fakeCompanyRepo) Update(ctx context.Context, c *company.Company) error {
	return r.db.Model(&models.CompanyModel{}).
		Where("id = ?", c.ID()).
		Update("status", c.Status().String()).Error
}

type fakeBlobStore struct {
	objects map[string]bool
	stuck   map[string]bool
	listErr error
}

func (s *fakeBlobStore) List(ctx context.Context, prefix string) ([]string, []string, error) {
	if s.listErr != nil {
		return nil, nil, s.listErr
	}
	var objects []string
	for key := range s.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			objects = append(objects, key)
		}
	}
	return objects, nil, nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, object string) error {
	if s.stuck[object] {
		return fmt.Errorf("access denied: %s", object)
	}
	delete(s.objects, object)
	return nil
}

type fakeAuditWriter struct {
	entries []audit.Entry
	err     error
}

func (w *fakeAuditWriter) Write(ctx context.Context, entry audit.Entry) error {
	if w.err != nil {
		return w.err
	}
	w.entries = append(w.entries, entry)
	return nil
}

func setupAdminDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	c := models.CompanyModel{Name: name, Plan: "pro", Status: "active", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	require.NoError(t, db.Create(&models.UserModel{
		CompanyID: c.ID, Email: fmt.Sprintf("owner@%d.test", c.ID), PasswordHash: "x",
		DisplayName: "Owner", Role: "owner", Status: "active",
	}).Error)

	site := models.SiteModel{CompanyID: c.ID, Name: "main site"}
	require.NoError(t, db.Create(&site).Error)

	plant := models.PlantModel{CompanyID: c.ID, SiteID: site.ID, Name: "array one", Status: "active"}
	require.NoError(t, db.Create(&plant).Error)
	require.NoError(t, db.Create(&models.PlantMonthlyProductionModel{PlantID: plant.ID, Year: 2025, Month: 6, ProductionKWH: 420}).Error)

	require.NoError(t, db.Create(&models.FaultModel{CompanyID: c.ID, Title: "fault", Priority: "normal", Status: "open", ReportedBy: 1}).Error)
	require.NoError(t, db.Create(&models.InventoryItemModel{CompanyID: &c.ID, SiteID: &site.ID, Name: "scoped"}).Error)
	// Legacy row reachable only through the site reference.
	require.NoError(t, db.Create(&models.InventoryItemModel{SiteID: &site.ID, Name: "legacy"}).Error)

	feedback := models.FeedbackModel{CompanyID: c.ID, AuthorID: 1, Subject: "s", Body: "b"}
	require.NoError(t, db.Create(&feedback).Error)
	require.NoError(t, db.Create(&models.FeedbackLikeModel{FeedbackID: feedback.ID, UserID: 1}).Error)

	backup := models.BackupModel{CompanyID: c.ID, Path: "/b", Status: "done"}
	require.NoError(t, db.Create(&backup).Error)
	require.NoError(t, db.Create(&models.BackupLogModel{BackupID: backup.ID, Level: "info", Message: "ok"}).Error)

	target := c.ID
	require.NoError(t, db.Create(&models.AuditLogModel{
		ActorID: 1, Action: "company.plan_changed", Resource: "company",
		TargetCompanyID: &target, Severity: "info", Success: true,
	}).Error)

	return c.ID
}

func testActor() audit.Actor {
	return audit.Actor{ID: 1, Email: "root@platform.test", Name: "Platform Root"}
}

func TestDeleteCompany_FullCascade(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "doomed")
	survivorID := seedTenant(t, db, "survivor")

	blobs := &fakeBlobStore{objects: map[string]bool{
		fmt.Sprintf("companies/%d/logo.png", companyID):   true,
		fmt.Sprintf("companies/%d/report.pdf", companyID): true,
		fmt.Sprintf("companies/%d/logo.png", survivorID):  true,
	}}
	auditWriter := &fakeAuditWriter{}
	uc := NewDeleteCompanyUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		blobs,
		auditWriter,
		logger.Nop(),
	)

	result, err := uc.Execute(context.Background(), companyID, testActor())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Equal(t, int64(2), result.BlobsDeleted)
	assert.Equal(t, int64(1), result.Deleted["users"])
	assert.Equal(t, int64(1), result.Deleted["inventory_items"])
	assert.Equal(t, int64(1), result.Deleted[legacyInventoryKey])
	assert.Equal(t, int64(1), result.Deleted["plants"])
	assert.Equal(t, int64(1), result.Deleted["plant_monthly_production"])
	assert.Equal(t, int64(1), result.Deleted["feedback_likes"])
	assert.Equal(t, int64(1), result.Deleted["backup_logs"])
	assert.Equal(t, int64(1), result.Deleted["audit_logs"])

	// The root row goes last and is actually gone.
	var companies int64
	require.NoError(t, db.Model(&models.CompanyModel{}).Where("id = ?", companyID).Count(&companies).Error)
	assert.Zero(t, companies)

	// Every table is empty for the deleted tenant, while the survivor keeps
	// its rows.
	var survivorUsers int64
	require.NoError(t, db.Model(&models.UserModel{}).Where("company_id = ?", survivorID).Count(&survivorUsers).Error)
	assert.Equal(t, int64(1), survivorUsers)
	assert.True(t, blobs.objects[fmt.Sprintf("companies/%d/logo.png", survivorID)])

	// The offboarding record itself was written.
	require.Len(t, auditWriter.entries, 1)
	entry := auditWriter.entries[0]
	assert.Equal(t, audit.ActionCompanyDeleted, entry.Action)
	assert.Equal(t, audit.SeverityCritical, entry.Severity)
	assert.True(t, entry.Success)
	require.NotNil(t, entry.TargetCompanyID)
	assert.Equal(t, companyID, *entry.TargetCompanyID)
}

func TestDeleteCompany_BlobFailureIsAccumulatedNotFatal(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "partial")

	blobs := &fakeBlobStore{listErr: fmt.Errorf("bucket unreachable")}
	auditWriter := &fakeAuditWriter{}
	uc := NewDeleteCompanyUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		blobs,
		auditWriter,
		logger.Nop(),
	)

	result, err := uc.Execute(context.Background(), companyID, testActor())
	require.NoError(t, err)

	// The blob failure is recorded, but the rest of the cascade ran and the
	// root delete still decides success.
	assert.True(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "blob")

	require.Len(t, auditWriter.entries, 1)
	assert.False(t, auditWriter.entries[0].Success, "the audit record reflects the partial failure")

	var companies int64
	require.NoError(t, db.Model(&models.CompanyModel{}).Where("id = ?", companyID).Count(&companies).Error)
	assert.Zero(t, companies)
}

func TestDeleteCompany_EachBlobDeleteFailsOnItsOwn(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "holey")

	blobs := &fakeBlobStore{
		objects: map[string]bool{
			fmt.Sprintf("companies/%d/a.jpg", companyID): true,
			fmt.Sprintf("companies/%d/b.jpg", companyID): true,
			fmt.Sprintf("companies/%d/c.jpg", companyID): true,
		},
		stuck: map[string]bool{fmt.Sprintf("companies/%d/a.jpg", companyID): true},
	}
	uc := NewDeleteCompanyUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		blobs,
		&fakeAuditWriter{},
		logger.Nop(),
	)

	result, err := uc.Execute(context.Background(), companyID, testActor())
	require.NoError(t, err)

	// One stuck object does not strand its siblings, and the run still
	// completes.
	assert.True(t, result.Success)
	assert.Equal(t, int64(2), result.BlobsDeleted)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "a.jpg")
	assert.False(t, blobs.objects[fmt.Sprintf("companies/%d/b.jpg", companyID)])
	assert.False(t, blobs.objects[fmt.Sprintf("companies/%d/c.jpg", companyID)])
}

// stuckRootStore fails only the terminal company-row delete.
type stuckRootStore struct {
	TenantPurgeStore
}

func (s *stuckRootStore) DeleteCompanyRow(ctx context.Context, companyID uint) error {
	return fmt.Errorf("row locked")
}

func TestDeleteCompany_RootDeleteFailureIsPropagated(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "stubborn")

	uc := NewDeleteCompanyUseCase(
		&stuckRootStore{TenantPurgeStore: repository.NewTenantPurgeRepository(db, 0)},
		&fakeCompanyRepo{db: db},
		&fakeBlobStore{objects: map[string]bool{}},
		&fakeAuditWriter{},
		logger.Nop(),
	)

	result, err := uc.Execute(context.Background(), companyID, testActor())

	// The cascade ran, but a surviving root row is the one fatal outcome.
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)

	require.NotNil(t, result)
	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[len(result.Errors)-1], "company row")

	var users int64
	require.NoError(t, db.Model(&models.UserModel{}).Where("company_id = ?", companyID).Count(&users).Error)
	assert.Zero(t, users, "sub-collections are purged before the root step fails")
}

func TestDeleteCompany_AuditWriteFailureDoesNotBlock(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "quiet")

	uc := NewDeleteCompanyUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		&fakeBlobStore{objects: map[string]bool{}},
		&fakeAuditWriter{err: fmt.Errorf("audit store down")},
		logger.Nop(),
	)

	result, err := uc.Execute(context.Background(), companyID, testActor())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
}

func TestDeleteCompany_UnknownCompany(t *testing.T) {
	db := setupAdminDB(t)

	uc := NewDeleteCompanyUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		&fakeBlobStore{objects: map[string]bool{}},
		&fakeAuditWriter{},
		logger.Nop(),
	)

	_, err := uc.Execute(context.Background(), 404, testActor())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetDeletionSummary_MatchesWhatARunWouldDelete(t *testing.T) {
	db := setupAdminDB(t)
	companyID := seedTenant(t, db, "preview")

	blobs := &fakeBlobStore{objects: map[string]bool{
		fmt.Sprintf("companies/%d/logo.png", companyID): true,
	}}
	purge := repository.NewTenantPurgeRepository(db, 0)
	companyRepo := &fakeCompanyRepo{db: db}

	summaryUC := NewGetDeletionSummaryUseCase(purge, companyRepo, blobs, logger.Nop())
	summary, err := summaryUC.Execute(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, "preview", summary.CompanyName)
	assert.Equal(t, int64(1), summary.BlobObjects)

	deleteUC := NewDeleteCompanyUseCase(purge, companyRepo, blobs, &fakeAuditWriter{}, logger.Nop())
	result, err := deleteUC.Execute(context.Background(), companyID, testActor())
	require.NoError(t, err)
	require.True(t, result.Success)

	// The preview promised exactly what the run then deleted.
	for name, count := range result.Deleted {
		assert.Equal(t, count, summary.Counts[name], "collection %s", name)
	}
	assert.Equal(t, result.BlobsDeleted, summary.BlobObjects)

	var total int64
	for _, n := range summary.Counts {
		total += n
	}
	assert.Equal(t, total, summary.TotalRows)
}

func TestGetDeletionSummary_UnknownCompany(t *testing.T) {
	db := setupAdminDB(t)

	uc := NewGetDeletionSummaryUseCase(
		repository.NewTenantPurgeRepository(db, 0),
		&fakeCompanyRepo{db: db},
		&fakeBlobStore{objects: map[string]bool{}},
		logger.Nop(),
	)

	_, err := uc.Execute(context.Background(), 9000)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
