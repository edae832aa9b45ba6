// Package dashboard derives the console's overview view-model from
// independently fetched entity snapshots: summary counters, a merged
// recency feed, and the current month's payment schedule.
//
// Everything here is a pure function of its inputs. The current time is an
// argument, never read from the clock, so month and year boundaries are
// testable.
package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

// feedLimit caps the merged activity feed, matching the per-kind fetch limit.
const feedLimit = 10

// Snapshot is the fully-resolved input bundle the aggregation consumes.
// Each field is filled by an independent fetch; the zero value of any field
// simply contributes nothing to the output.
type Snapshot struct {
	PropertyCount int
	UnitCount     int

	ActiveLeases []*models.LeaseTenancy

	// Most-recent-10 rows per entity kind, each ordered newest first.
	RecentPayments   []*models.PaymentTenancy
	RecentLeases     []*models.LeaseTenancy
	RecentTenants    []*models.Tenant
	RecentProperties []*models.Property
	RecentUnits      []*models.UnitActivity

	// Payments whose paid_on falls inside the month containing "now",
	// half-open [firstOfMonth, nextMonth).
	MonthPayments []*models.PaymentStub
}

type SummaryMetrics struct {
	PropertyCount         int   `json:"property_count"`
	UnitCount             int   `json:"unit_count"`
	ActiveLeaseCount      int   `json:"active_lease_count"`
	TotalMonthlyRentCents int64 `json:"total_monthly_rent_cents"`
	OverdueCount          int   `json:"overdue_count"`
}

type ActivityKind string

const (
	KindPayment  ActivityKind = "payment"
	KindLease    ActivityKind = "lease"
	KindTenant   ActivityKind = "tenant"
	KindProperty ActivityKind = "property"
	KindUnit     ActivityKind = "unit"
)

// ActivityItem is one entity-creation event in the recency feed.
type ActivityItem struct {
	Kind  ActivityKind `json:"kind"`
	ID    uuid.UUID    `json:"id"`
	At    time.Time    `json:"at"`
	Label string       `json:"label"`
	Sub   string       `json:"sub,omitempty"`
}

// ScheduleRow is one active lease's rent obligation for the current month.
type ScheduleRow struct {
	LeaseID      uuid.UUID `json:"lease_id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	DueDate      time.Time `json:"due_date"`
	AmountCents  int64     `json:"amount_cents"`
	PropertyName string    `json:"property_name"`
	UnitLabel    string    `json:"unit_label"`
	TenantName   string    `json:"tenant_name"`
	Paid         bool      `json:"paid"`
	Overdue      bool      `json:"overdue"`
}

// View is the complete dashboard view-model handed to the presentation layer.
type View struct {
	Summary  SummaryMetrics `json:"summary"`
	Activity []ActivityItem `json:"activity"`
	Schedule []ScheduleRow  `json:"schedule"`
}

// BuildView computes the whole dashboard from one snapshot. The schedule's
// overdue count feeds the summary, so the two are derived together.
func BuildView(snap Snapshot, now time.Time) *View {
	schedule, overdue := BuildSchedule(snap.ActiveLeases, snap.MonthPayments, now)
	return &View{
		Summary:  Summarize(snap, overdue),
		Activity: MergeActivity(snap),
		Schedule: schedule,
	}
}

// Summarize produces the five scalar counters. Rent is an exact integer sum
// over the active leases; a nil entry counts as zero rent.
func Summarize(snap Snapshot, overdueCount int) SummaryMetrics {
	var rent int64
	for _, l := range snap.ActiveLeases {
		if l != nil {
			rent += l.RentCents
		}
	}
	return SummaryMetrics{
		PropertyCount:         snap.PropertyCount,
		UnitCount:             snap.UnitCount,
		ActiveLeaseCount:      len(snap.ActiveLeases),
		TotalMonthlyRentCents: rent,
		OverdueCount:          overdueCount,
	}
}
