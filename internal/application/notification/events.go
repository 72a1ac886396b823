package notification

import (
	"context"
	"fmt"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/application/notification/usecases"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/services/markdown"
)

// FaultCreatedEvent describes a newly reported plant fault.
type FaultCreatedEvent struct {
	CompanyID uint
	FaultID   uint
	Title     string
	Priority  string
	SiteID    *uint
	PlantID   *uint
}

// LowStockEvent fires when a stock movement drops an item to or below its
// minimum level.
type LowStockEvent struct {
	CompanyID    uint
	StockItemID  uint
	ItemName     string
	CurrentStock int
	MinimumStock int
}

// ShiftFiledEvent fires when a guard files a shift report.
type ShiftFiledEvent struct {
	CompanyID uint
	ReportID  uint
	SiteID    *uint
	GuardName string
}

// faultCriticalAudience is who a critical fault reaches. Guards and
// customers are included but still subject to site scoping at read time.
var faultCriticalAudience = []string{
	uservo.RoleManager.String(),
	uservo.RoleEngineer.String(),
	uservo.RoleTechnician.String(),
	uservo.RoleGuard.String(),
	uservo.RoleCustomer.String(),
}

var faultDefaultAudience = []string{
	uservo.RoleManager.String(),
	uservo.RoleEngineer.String(),
	uservo.RoleTechnician.String(),
}

// Events wraps notification creation for the domain flows that trigger it.
// Every method is best effort: failures are logged and swallowed so a
// notification problem can never abort the flow that raised the event.
type Events struct {
	create   *usecases.CreateNotificationUseCase
	userRepo usecases.UserRepository
	email    usecases.EmailSender
	markdown markdown.Service
	logger   logger.Interface
}

func NewEvents(
	create *usecases.CreateNotificationUseCase,
	userRepo usecases.UserRepository,
	email usecases.EmailSender,
	markdown markdown.Service,
	logger logger.Interface,
) *Events {
	return &Events{
		create:   create,
		userRepo: userRepo,
		email:    email,
		markdown: markdown,
		logger:   logger,
	}
}

// NotifyFaultCreated fans a fault out to the operations roles. Critical
// faults widen the audience to guards and customers and additionally email
// the company admins.
func (e *Events) NotifyFaultCreated(ctx context.Context, event FaultCreatedEvent) {
	critical := event.Priority == "critical"

	roles := faultDefaultAudience
	notifType := "warning"
	title := "New fault reported"
	if critical {
		roles = faultCriticalAudience
		notifType = "error"
		title = "Critical fault reported"
	}

	metadata := map[string]interface{}{"fault_id": event.FaultID}
	if event.SiteID != nil {
		metadata["site_id"] = *event.SiteID
	}
	if event.PlantID != nil {
		metadata["plant_id"] = *event.PlantID
	}

	actionURL := fmt.Sprintf("/faults/%d", event.FaultID)
	_, err := e.create.Execute(ctx, dto.CreateNotificationRequest{
		CompanyID: event.CompanyID,
		Type:      notifType,
		Title:     title,
		Message:   event.Title,
		ActionURL: &actionURL,
		Roles:     roles,
		Metadata:  metadata,
	})
	if err != nil {
		e.logger.Warnw("fault notification failed", "company_id", event.CompanyID, "fault_id", event.FaultID, "error", err)
		return
	}

	if critical {
		e.emailAdmins(ctx, event)
	}
}

// NotifyLowStock warns the operations roles that an item ran low. The
// message always carries the current/minimum fraction, e.g. "2/5".
func (e *Events) NotifyLowStock(ctx context.Context, event LowStockEvent) {
	message := fmt.Sprintf("%s stock is low: %d/%d", event.ItemName, event.CurrentStock, event.MinimumStock)
	actionURL := fmt.Sprintf("/stock/%d", event.StockItemID)

	_, err := e.create.Execute(ctx, dto.CreateNotificationRequest{
		CompanyID: event.CompanyID,
		Type:      "warning",
		Title:     "Low stock",
		Message:   message,
		ActionURL: &actionURL,
		Roles:     faultDefaultAudience,
		Metadata:  map[string]interface{}{"stock_item_id": event.StockItemID},
	})
	if err != nil {
		e.logger.Warnw("low stock notification failed", "company_id", event.CompanyID, "stock_item_id", event.StockItemID, "error", err)
	}
}

// NotifyShiftFiled tells managers a guard filed a shift report.
func (e *Events) NotifyShiftFiled(ctx context.Context, event ShiftFiledEvent) {
	metadata := map[string]interface{}{"shift_report_id": event.ReportID}
	if event.SiteID != nil {
		metadata["site_id"] = *event.SiteID
	}

	actionURL := fmt.Sprintf("/shift-reports/%d", event.ReportID)
	_, err := e.create.Execute(ctx, dto.CreateNotificationRequest{
		CompanyID: event.CompanyID,
		Type:      "info",
		Title:     "Shift report filed",
		Message:   fmt.Sprintf("%s filed a shift report", event.GuardName),
		ActionURL: &actionURL,
		Roles:     []string{uservo.RoleManager.String()},
		Metadata:  metadata,
	})
	if err != nil {
		e.logger.Warnw("shift report notification failed", "company_id", event.CompanyID, "report_id", event.ReportID, "error", err)
	}
}

func (e *Events) emailAdmins(ctx context.Context, event FaultCreatedEvent) {
	admins, err := e.userRepo.ListByCompanyAndRoles(ctx, event.CompanyID, []uservo.Role{uservo.RoleOwner, uservo.RoleAdmin})
	if err != nil {
		e.logger.Warnw("failed to resolve admin recipients", "company_id", event.CompanyID, "error", err)
		return
	}

	to := make([]string, 0, len(admins))
	for _, u := range admins {
		if u.IsActive() && u.Email() != nil {
			to = append(to, u.Email().String())
		}
	}
	if len(to) == 0 {
		return
	}

	body, err := e.markdown.ToHTMLSanitized(fmt.Sprintf("**Critical fault reported**\n\n%s", event.Title))
	if err != nil {
		e.logger.Warnw("failed to render fault email body", "fault_id", event.FaultID, "error", err)
		return
	}

	if err := e.email.Send(to, "Critical fault reported", body); err != nil {
		e.logger.Warnw("fault email delivery failed", "fault_id", event.FaultID, "error", err)
	}
}
