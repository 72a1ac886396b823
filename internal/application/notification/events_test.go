package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliox-inc/heliox/internal/application/notification/usecases"
	domain "github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/services/markdown"
)

type capturingRepo struct {
	created  []*domain.Notification
	createFn func(n *domain.Notification) error
}

func (r *capturingRepo) Create(ctx context.Context, n *domain.Notification) error {
	if r.createFn != nil {
		if err := r.createFn(n); err != nil {
			return err
		}
	}
	r.created = append(r.created, n)
	return n.SetID(uint(len(r.created)))
}

func (r *capturingRepo) GetByID(ctx context.Context, id uint) (*domain.Notification, error) {
	panic("not used")
}

func (r *capturingRepo) ListRecentByCompany(ctx context.Context, companyID uint, limit int) ([]*domain.Notification, error) {
	return r.created, nil
}

func (r *capturingRepo) AddReadBy(ctx context.Context, id uint, userID uint) error   { return nil }
func (r *capturingRepo) AddHiddenBy(ctx context.Context, id uint, userID uint) error { return nil }

type stubUserRepo struct {
	users   []*user.User
	listErr error
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	panic("not used")
}

func (r *stubUserRepo) ListByCompanyAndRoles(ctx context.Context, companyID uint, roles []uservo.Role) ([]*user.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.users, nil
}

type stubPush struct{ err error }

func (p *stubPush) Send(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
	return p.err
}

type capturingEmail struct {
	to      []string
	subject string
	body    string
	err     error
}

func (e *capturingEmail) Send(to []string, subject, htmlBody string) error {
	if e.err != nil {
		return e.err
	}
	e.to = to
	e.subject = subject
	e.body = htmlBody
	return nil
}

func adminUser(t *testing.T, id uint, address string) *user.User {
	t.Helper()
	email, err := uservo.NewEmail(address)
	require.NoError(t, err)
	u, err := user.NewUser(1, email, "hash", "Admin", uservo.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func newTestEvents(repo *capturingRepo, userRepo usecases.UserRepository, email usecases.EmailSender) *Events {
	create := usecases.NewCreateNotificationUseCase(repo, userRepo, &stubPush{}, logger.Nop())
	return NewEvents(create, userRepo, email, markdown.NewService(), logger.Nop())
}

func TestNotifyFaultCreated_CriticalWidensAudienceAndEmailsAdmins(t *testing.T) {
	repo := &capturingRepo{}
	userRepo := &stubUserRepo{users: []*user.User{adminUser(t, 1, "admin@solar.test")}}
	email := &capturingEmail{}
	events := newTestEvents(repo, userRepo, email)

	siteID := uint(12)
	events.NotifyFaultCreated(context.Background(), FaultCreatedEvent{
		CompanyID: 1,
		FaultID:   33,
		Title:     "Inverter 4 offline",
		Priority:  "critical",
		SiteID:    &siteID,
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "error", n.Type().String())
	assert.Equal(t, "Critical fault reported", n.Title())
	assert.Equal(t, "Inverter 4 offline", n.Message())

	roles := make([]string, 0, len(n.Roles()))
	for _, r := range n.Roles() {
		roles = append(roles, r.String())
	}
	assert.ElementsMatch(t, []string{"manager", "engineer", "technician", "guard", "customer"}, roles)

	meta := n.Metadata().ToMap()
	assert.EqualValues(t, 12, meta["site_id"])
	assert.EqualValues(t, 33, meta["fault_id"])

	assert.Equal(t, []string{"admin@solar.test"}, email.to)
	assert.Contains(t, email.body, "Inverter 4 offline")
}

func TestNotifyFaultCreated_NormalPriorityStaysNarrow(t *testing.T) {
	repo := &capturingRepo{}
	email := &capturingEmail{}
	events := newTestEvents(repo, &stubUserRepo{}, email)

	events.NotifyFaultCreated(context.Background(), FaultCreatedEvent{
		CompanyID: 1,
		FaultID:   34,
		Title:     "Loose cable tray",
		Priority:  "normal",
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "warning", n.Type().String())
	assert.Len(t, n.Roles(), 3)
	assert.Empty(t, email.to, "only critical faults email admins")
	assert.NotContains(t, n.Metadata().ToMap(), "site_id")
}

func TestNotifyFaultCreated_CreateFailureIsSwallowed(t *testing.T) {
	repo := &capturingRepo{createFn: func(n *domain.Notification) error {
		return fmt.Errorf("database unavailable")
	}}
	events := newTestEvents(repo, &stubUserRepo{}, &capturingEmail{})

	// Must not panic or propagate: fault creation itself already succeeded.
	events.NotifyFaultCreated(context.Background(), FaultCreatedEvent{
		CompanyID: 1,
		FaultID:   35,
		Title:     "whatever",
		Priority:  "critical",
	})
	assert.Empty(t, repo.created)
}

func TestNotifyFaultCreated_EmailFailureIsSwallowed(t *testing.T) {
	repo := &capturingRepo{}
	userRepo := &stubUserRepo{users: []*user.User{adminUser(t, 1, "admin@solar.test")}}
	email := &capturingEmail{err: fmt.Errorf("smtp refused")}
	events := newTestEvents(repo, userRepo, email)

	events.NotifyFaultCreated(context.Background(), FaultCreatedEvent{
		CompanyID: 1,
		FaultID:   36,
		Title:     "Transformer overheating",
		Priority:  "critical",
	})

	// The notification itself still lands.
	assert.Len(t, repo.created, 1)
}

func TestNotifyLowStock_MessageCarriesFraction(t *testing.T) {
	repo := &capturingRepo{}
	events := newTestEvents(repo, &stubUserRepo{}, &capturingEmail{})

	events.NotifyLowStock(context.Background(), LowStockEvent{
		CompanyID:    1,
		StockItemID:  8,
		ItemName:     "DC fuses",
		CurrentStock: 2,
		MinimumStock: 5,
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Contains(t, n.Message(), "2/5")
	assert.Contains(t, n.Message(), "DC fuses")
	assert.Equal(t, "warning", n.Type().String())
}

func TestNotifyShiftFiled_TargetsManagers(t *testing.T) {
	repo := &capturingRepo{}
	events := newTestEvents(repo, &stubUserRepo{}, &capturingEmail{})

	siteID := uint(3)
	events.NotifyShiftFiled(context.Background(), ShiftFiledEvent{
		CompanyID: 1,
		ReportID:  77,
		SiteID:    &siteID,
		GuardName: "R. Ortiz",
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	require.Len(t, n.Roles(), 1)
	assert.Equal(t, uservo.RoleManager, n.Roles()[0])
	assert.Contains(t, n.Message(), "R. Ortiz")
	assert.EqualValues(t, 77, n.Metadata().ToMap()["shift_report_id"])
}
