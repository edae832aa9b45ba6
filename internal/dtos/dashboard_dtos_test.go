package dtos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlinQuentin/property-manager/internal/dashboard"
)

func TestNewDashboardFromView(t *testing.T) {
	leaseID := uuid.New()
	v := &dashboard.View{
		Summary: dashboard.SummaryMetrics{
			PropertyCount:         2,
			UnitCount:             5,
			ActiveLeaseCount:      3,
			TotalMonthlyRentCents: 350050,
			OverdueCount:          1,
		},
		Activity: []dashboard.ActivityItem{
			{
				Kind:  dashboard.KindPayment,
				ID:    uuid.New(),
				At:    time.Date(2025, time.June, 3, 14, 30, 0, 0, time.UTC),
				Label: "Payment received $950.00",
				Sub:   "Avery Collins • Maple Street Duplex • Unit A",
			},
		},
		Schedule: []dashboard.ScheduleRow{
			{
				LeaseID:      leaseID,
				DueDate:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				AmountCents:  95000,
				PropertyName: "Maple Street Duplex",
				UnitLabel:    "Unit A",
				TenantName:   "Avery Collins",
				Paid:         true,
			},
		},
	}

	resp := NewDashboardFromView(v)

	assert.Equal(t, "$3500.50", resp.Summary.TotalMonthlyRent)
	assert.Equal(t, 1, resp.Summary.OverdueCount)

	require.Len(t, resp.Activity, 1)
	assert.Equal(t, "payment", resp.Activity[0].Kind)
	assert.Equal(t, "Payment received $950.00", resp.Activity[0].Label)

	require.Len(t, resp.Schedule, 1)
	row := resp.Schedule[0]
	assert.Equal(t, leaseID, row.LeaseID)
	assert.Equal(t, "2025-06-01", row.DueDate)
	assert.Equal(t, "Jun 1st, 2025", row.DueDateDisplay)
	assert.Equal(t, "$950.00", row.Amount)
	assert.True(t, row.Paid)
	assert.False(t, row.Overdue)
}

func TestNewDashboardFromViewEmpty(t *testing.T) {
	resp := NewDashboardFromView(&dashboard.View{})

	assert.Equal(t, "$0.00", resp.Summary.TotalMonthlyRent)
	assert.NotNil(t, resp.Activity)
	assert.NotNil(t, resp.Schedule)
	assert.Empty(t, resp.Activity)
	assert.Empty(t, resp.Schedule)
}
