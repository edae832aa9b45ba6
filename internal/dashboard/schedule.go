package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

// MonthWindow returns the half-open interval [firstOfMonth, nextMonth) for
// the month containing now. Half-open so month boundaries never double-count.
func MonthWindow(now time.Time) (start, end time.Time) {
	year, month, _ := now.Date()
	start = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// BuildSchedule derives one row per active lease for the month containing
// now, plus the overdue count: rows still unpaid with a due date strictly
// before today. A row due today is not overdue.
//
// Rules, per lease:
//   - due day is clamped into [1,28], never rejected
//   - a lease starting after its due date shows the start date instead
//     (no rent owed before the lease begins)
//   - a lease that ended before the first of the month is excluded
//   - paid means any payment in the window references the lease,
//     regardless of amount
func BuildSchedule(active []*models.LeaseTenancy, monthPayments []*models.PaymentStub, now time.Time) ([]ScheduleRow, int) {
	year, month, day := now.Date()
	loc := now.Location()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	today := time.Date(year, month, day, 0, 0, 0, 0, loc)

	paidLeases := make(map[uuid.UUID]struct{}, len(monthPayments))
	for _, p := range monthPayments {
		if p != nil {
			paidLeases[p.LeaseID] = struct{}{}
		}
	}

	rows := make([]ScheduleRow, 0, len(active))
	overdue := 0
	for _, l := range active {
		if l == nil {
			continue
		}
		if l.EndDate != nil && dateOnlyIn(*l.EndDate, loc).Before(firstOfMonth) {
			continue
		}

		due := time.Date(year, month, clampDueDay(l.DueDay), 0, 0, 0, 0, loc)
		if start := dateOnlyIn(l.StartDate, loc); start.After(due) {
			due = start
		}

		_, paid := paidLeases[l.LeaseID]
		isOverdue := !paid && due.Before(today)
		if isOverdue {
			overdue++
		}

		rows = append(rows, ScheduleRow{
			LeaseID:      l.LeaseID,
			TenantID:     l.TenantID,
			DueDate:      due,
			AmountCents:  l.RentCents,
			PropertyName: l.PropertyName,
			UnitLabel:    l.UnitLabel,
			TenantName:   l.TenantName(),
			Paid:         paid,
			Overdue:      isOverdue,
		})
	}

	// Ascending by the date value itself. Formatting for display happens in
	// the presentation layer; sorting formatted strings would order "Feb"
	// before "Jan".
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate.Before(rows[j].DueDate)
	})
	return rows, overdue
}

// clampDueDay forces the due day into [1,28] so the due date exists in every
// month, including February.
func clampDueDay(d int) int {
	if d < 1 {
		return 1
	}
	if d > 28 {
		return 28
	}
	return d
}

func dateOnlyIn(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
