package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func activeTenancy(dueDay int, rentCents int64, start string) *models.LeaseTenancy {
	return &models.LeaseTenancy{
		LeaseID:         uuid.New(),
		StartDate:       day(start),
		RentCents:       rentCents,
		DueDay:          dueDay,
		Status:          models.LeaseActive,
		UnitLabel:       "Unit A",
		PropertyName:    "Maple House",
		TenantFirstName: "Ada",
		TenantLastName:  "Lovelace",
	}
}

func TestScheduleTwoUnpaidLeases(t *testing.T) {
	// due_day 1 and 31 (clamped to 28), mid-month, nothing paid. Only the
	// March 1st row is overdue: the 28th is still in the future on the 15th,
	// and overdue requires the due date to be strictly before today.
	l1 := activeTenancy(1, 120000, "2025-01-01")
	l2 := activeTenancy(31, 95000, "2025-01-01")
	now := day("2025-03-15")

	rows, overdue := BuildSchedule([]*models.LeaseTenancy{l2, l1}, nil, now)

	require.Len(t, rows, 2)
	assert.Equal(t, day("2025-03-01"), rows[0].DueDate)
	assert.Equal(t, day("2025-03-28"), rows[1].DueDate)
	assert.False(t, rows[0].Paid)
	assert.False(t, rows[1].Paid)
	assert.True(t, rows[0].Overdue)
	assert.False(t, rows[1].Overdue)
	assert.Equal(t, 1, overdue)
}

func TestSchedulePaidByAnyInWindowPayment(t *testing.T) {
	l := activeTenancy(10, 120000, "2025-01-01")
	now := day("2025-03-15")

	// amount never matters; a partial payment still marks the month paid
	stubs := []*models.PaymentStub{{LeaseID: l.LeaseID, PaidOn: day("2025-03-03")}}

	rows, overdue := BuildSchedule([]*models.LeaseTenancy{l}, stubs, now)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Paid)
	assert.Equal(t, 0, overdue)
}

func TestSchedulePaymentForOtherLeaseDoesNotCount(t *testing.T) {
	l := activeTenancy(10, 120000, "2025-01-01")
	now := day("2025-03-15")

	stubs := []*models.PaymentStub{{LeaseID: uuid.New(), PaidOn: day("2025-03-03")}}

	rows, overdue := BuildSchedule([]*models.LeaseTenancy{l}, stubs, now)

	require.Len(t, rows, 1)
	assert.False(t, rows[0].Paid)
	assert.Equal(t, 1, overdue)
}

func TestScheduleExcludesLeaseEndedBeforeMonth(t *testing.T) {
	l := activeTenancy(5, 120000, "2024-06-01")
	l.EndDate = dayPtr("2025-02-20")
	now := day("2025-03-15")

	for _, dueDay := range []int{0, 1, 5, 28, 31} {
		l.DueDay = dueDay
		rows, overdue := BuildSchedule([]*models.LeaseTenancy{l}, nil, now)
		assert.Empty(t, rows, "due_day %d", dueDay)
		assert.Equal(t, 0, overdue, "due_day %d", dueDay)
	}
}

func TestScheduleKeepsLeaseEndingInsideMonth(t *testing.T) {
	l := activeTenancy(5, 120000, "2024-06-01")
	l.EndDate = dayPtr("2025-03-10")
	now := day("2025-03-15")

	rows, _ := BuildSchedule([]*models.LeaseTenancy{l}, nil, now)
	require.Len(t, rows, 1)
}

func TestScheduleClampsDueDay(t *testing.T) {
	now := day("2025-03-15")
	cases := []struct {
		dueDay  int
		wantDay int
	}{
		{0, 1},
		{1, 1},
		{28, 28},
		{29, 28},
		{31, 28},
	}
	for _, c := range cases {
		l := activeTenancy(c.dueDay, 100000, "2025-01-01")
		rows, _ := BuildSchedule([]*models.LeaseTenancy{l}, nil, now)
		require.Len(t, rows, 1, "due_day %d", c.dueDay)
		assert.Equal(t, c.wantDay, rows[0].DueDate.Day(), "due_day %d", c.dueDay)
	}
}

func TestScheduleStartDateShiftsDisplayedDue(t *testing.T) {
	// lease begins mid-month, after its nominal due day: no rent owed
	// before the lease starts, so the start date is shown instead
	l := activeTenancy(1, 100000, "2025-03-20")
	now := day("2025-03-15")

	rows, overdue := BuildSchedule([]*models.LeaseTenancy{l}, nil, now)

	require.Len(t, rows, 1)
	assert.Equal(t, day("2025-03-20"), rows[0].DueDate)
	// shifted due date is in the future, so not overdue
	assert.Equal(t, 0, overdue)
}

func TestScheduleDueTodayIsNotOverdue(t *testing.T) {
	l := activeTenancy(15, 100000, "2025-01-01")
	now := day("2025-03-15")

	_, overdue := BuildSchedule([]*models.LeaseTenancy{l}, nil, now)
	assert.Equal(t, 0, overdue)

	_, overdue = BuildSchedule([]*models.LeaseTenancy{l}, nil, day("2025-03-16"))
	assert.Equal(t, 1, overdue)
}

func TestScheduleEmptyInputs(t *testing.T) {
	rows, overdue := BuildSchedule(nil, nil, day("2025-03-15"))
	assert.Empty(t, rows)
	assert.Equal(t, 0, overdue)
}

func TestScheduleSortedAscendingByDueDate(t *testing.T) {
	var leases []*models.LeaseTenancy
	for _, dueDay := range []int{20, 3, 28, 11, 7} {
		leases = append(leases, activeTenancy(dueDay, 100000, "2025-01-01"))
	}
	rows, _ := BuildSchedule(leases, nil, day("2025-03-15"))

	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].DueDate.Before(rows[i-1].DueDate))
	}
}

func TestScheduleLeapFebruary(t *testing.T) {
	l := activeTenancy(31, 100000, "2023-01-01")
	rows, _ := BuildSchedule([]*models.LeaseTenancy{l}, nil, day("2024-02-10"))

	require.Len(t, rows, 1)
	// clamp is to 28 even in a leap year; Feb 29 is never a due date
	assert.Equal(t, day("2024-02-28"), rows[0].DueDate)
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(day("2025-03-15"))
	assert.Equal(t, day("2025-03-01"), start)
	assert.Equal(t, day("2025-04-01"), end)

	// December rolls into the next year
	start, end = MonthWindow(day("2024-12-31"))
	assert.Equal(t, day("2024-12-01"), start)
	assert.Equal(t, day("2025-01-01"), end)
}

func TestScheduleDecemberWindowExclusion(t *testing.T) {
	// ended in November: out. Ends in December: in.
	ended := activeTenancy(5, 100000, "2024-01-01")
	ended.EndDate = dayPtr("2024-11-30")
	ending := activeTenancy(5, 100000, "2024-01-01")
	ending.EndDate = dayPtr("2024-12-20")

	rows, _ := BuildSchedule([]*models.LeaseTenancy{ended, ending}, nil, day("2024-12-15"))
	require.Len(t, rows, 1)
	assert.Equal(t, ending.LeaseID, rows[0].LeaseID)
}

func TestScheduleRowCarriesTenancyFields(t *testing.T) {
	l := activeTenancy(5, 123456, "2025-01-01")
	rows, _ := BuildSchedule([]*models.LeaseTenancy{l}, nil, day("2025-03-15"))

	require.Len(t, rows, 1)
	assert.Equal(t, l.LeaseID, rows[0].LeaseID)
	assert.Equal(t, int64(123456), rows[0].AmountCents)
	assert.Equal(t, "Maple House", rows[0].PropertyName)
	assert.Equal(t, "Unit A", rows[0].UnitLabel)
	assert.Equal(t, "Ada Lovelace", rows[0].TenantName)
}
