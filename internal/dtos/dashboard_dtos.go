package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dashboard"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type DashboardResponse struct {
	Summary  SummaryDTO        `json:"summary"`
	Activity []ActivityItemDTO `json:"activity"`
	Schedule []ScheduleRowDTO  `json:"schedule"`
}

type SummaryDTO struct {
	PropertyCount         int    `json:"property_count"`
	UnitCount             int    `json:"unit_count"`
	ActiveLeaseCount      int    `json:"active_lease_count"`
	TotalMonthlyRentCents int64  `json:"total_monthly_rent_cents"`
	TotalMonthlyRent      string `json:"total_monthly_rent"`
	OverdueCount          int    `json:"overdue_count"`
}

type ActivityItemDTO struct {
	Kind  string    `json:"kind"`
	ID    uuid.UUID `json:"id"`
	At    string    `json:"at"`
	Label string    `json:"label"`
	Sub   string    `json:"sub,omitempty"`
}

// ScheduleRowDTO keeps the sortable ISO date alongside the human-readable
// one; clients sort on due_date, never on due_date_display.
type ScheduleRowDTO struct {
	LeaseID        uuid.UUID `json:"lease_id"`
	DueDate        string    `json:"due_date"`
	DueDateDisplay string    `json:"due_date_display"`
	AmountCents    int64     `json:"amount_cents"`
	Amount         string    `json:"amount"`
	PropertyName   string    `json:"property_name"`
	UnitLabel      string    `json:"unit_label"`
	TenantName     string    `json:"tenant_name"`
	Paid           bool      `json:"paid"`
	Overdue        bool      `json:"overdue"`
}

func NewDashboardFromView(v *dashboard.View) DashboardResponse {
	resp := DashboardResponse{
		Summary: SummaryDTO{
			PropertyCount:         v.Summary.PropertyCount,
			UnitCount:             v.Summary.UnitCount,
			ActiveLeaseCount:      v.Summary.ActiveLeaseCount,
			TotalMonthlyRentCents: v.Summary.TotalMonthlyRentCents,
			TotalMonthlyRent:      utils.FormatCents(v.Summary.TotalMonthlyRentCents),
			OverdueCount:          v.Summary.OverdueCount,
		},
		Activity: make([]ActivityItemDTO, 0, len(v.Activity)),
		Schedule: make([]ScheduleRowDTO, 0, len(v.Schedule)),
	}
	for _, a := range v.Activity {
		resp.Activity = append(resp.Activity, ActivityItemDTO{
			Kind:  string(a.Kind),
			ID:    a.ID,
			At:    a.At.Format(timeLayout),
			Label: a.Label,
			Sub:   a.Sub,
		})
	}
	for _, row := range v.Schedule {
		resp.Schedule = append(resp.Schedule, ScheduleRowDTO{
			LeaseID:        row.LeaseID,
			DueDate:        row.DueDate.Format(dateLayout),
			DueDateDisplay: utils.FormatDisplayDate(row.DueDate),
			AmountCents:    row.AmountCents,
			Amount:         utils.FormatCents(row.AmountCents),
			PropertyName:   row.PropertyName,
			UnitLabel:      row.UnitLabel,
			TenantName:     row.TenantName,
			Paid:           row.Paid,
			Overdue:        row.Overdue,
		})
	}
	return resp
}
