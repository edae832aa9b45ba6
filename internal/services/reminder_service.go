package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/CarlinQuentin/property-manager/internal/dashboard"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type tenantGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

// RentReminderService emails tenants whose rent for the current month is
// overdue. It reuses the dashboard's schedule derivation so "overdue" means
// exactly the same thing in the email job as on the overview screen.
type RentReminderService struct {
	leases   leaseReader
	payments paymentReader
	tenants  tenantGetter

	sendgridClient *sendgrid.Client
	fromEmail      string
	orgName        string
}

// NewRentReminderService returns nil when no API key is configured; callers
// treat a nil service as "reminders disabled".
func NewRentReminderService(
	leases leaseReader,
	payments paymentReader,
	tenants tenantGetter,
	sendgridAPIKey, fromEmail, orgName string,
) *RentReminderService {
	if sendgridAPIKey == "" {
		return nil
	}
	return &RentReminderService{
		leases:         leases,
		payments:       payments,
		tenants:        tenants,
		sendgridClient: sendgrid.NewSendClient(sendgridAPIKey),
		fromEmail:      fromEmail,
		orgName:        orgName,
	}
}

// RunDailyReminderCheck sends one email per overdue lease. Individual send
// failures are logged and skipped so one bad address never blocks the rest
// of the batch; only the upstream fetches can fail the run.
func (s *RentReminderService) RunDailyReminderCheck(ctx context.Context) error {
	now := time.Now().UTC()

	active, err := s.leases.ListActiveTenancies(ctx)
	if err != nil {
		return fmt.Errorf("list active leases: %w", err)
	}
	start, end := dashboard.MonthWindow(now)
	stubs, err := s.payments.ListPaidOnRange(ctx, start, end)
	if err != nil {
		return fmt.Errorf("list month payments: %w", err)
	}

	rows, overdue := dashboard.BuildSchedule(active, stubs, now)
	if overdue == 0 {
		return nil
	}

	sent := 0
	for _, row := range rows {
		if !row.Overdue {
			continue
		}
		tenant, err := s.tenants.GetByID(ctx, row.TenantID)
		if err != nil {
			utils.Logger.WithError(err).WithField("tenant_id", row.TenantID).
				Error("Rent reminder: tenant lookup failed")
			continue
		}
		if tenant == nil || tenant.Email == nil || *tenant.Email == "" {
			continue
		}
		if err := s.sendReminder(tenant, row); err != nil {
			utils.Logger.WithError(err).WithField("lease_id", row.LeaseID).
				Error("Rent reminder: send failed")
			continue
		}
		sent++
	}

	utils.Logger.WithField("overdue", overdue).WithField("sent", sent).
		Info("Rent reminder run complete")
	return nil
}

func (s *RentReminderService) sendReminder(tenant *models.Tenant, row dashboard.ScheduleRow) error {
	from := mail.NewEmail(s.orgName, s.fromEmail)
	to := mail.NewEmail(tenant.FullName(), *tenant.Email)

	subject := fmt.Sprintf("Rent reminder for %s", row.UnitLabel)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rent of %s for %s (%s) was due on %s and has not been recorded yet.\n\nIf you have already paid, please disregard this message.\n\n%s",
		tenant.FirstName,
		utils.FormatCents(row.AmountCents),
		row.UnitLabel,
		row.PropertyName,
		utils.FormatDisplayDate(row.DueDate),
		s.orgName,
	)
	htmlContent := fmt.Sprintf(
		rentReminderEmailHTML,
		tenant.FirstName,
		utils.FormatCents(row.AmountCents),
		row.UnitLabel,
		row.PropertyName,
		utils.FormatDisplayDate(row.DueDate),
		s.orgName,
	)

	msg := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	_, err := s.sendgridClient.Send(msg)
	return err
}

const rentReminderEmailHTML = `<html>
<body style="font-family: sans-serif; color: #333;">
  <p>Hi %s,</p>
  <p>Your rent of <strong>%s</strong> for <strong>%s</strong> (%s) was due on
  <strong>%s</strong> and has not been recorded yet.</p>
  <p>If you have already paid, please disregard this message.</p>
  <p>%s</p>
</body>
</html>`
