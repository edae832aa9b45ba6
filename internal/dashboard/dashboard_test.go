package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

func TestSummarizeCountsAndRentSum(t *testing.T) {
	leases := []*models.LeaseTenancy{
		activeTenancy(1, 120000, "2025-01-01"),
		activeTenancy(5, 95000, "2025-01-01"),
		activeTenancy(10, 1, "2025-01-01"),
	}
	snap := Snapshot{PropertyCount: 4, UnitCount: 9, ActiveLeases: leases}

	m := Summarize(snap, 2)

	assert.Equal(t, 4, m.PropertyCount)
	assert.Equal(t, 9, m.UnitCount)
	assert.Equal(t, 3, m.ActiveLeaseCount)
	assert.Equal(t, int64(215001), m.TotalMonthlyRentCents)
	assert.Equal(t, 2, m.OverdueCount)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a := activeTenancy(1, 120000, "2025-01-01")
	b := activeTenancy(5, 95000, "2025-01-01")
	c := activeTenancy(10, 33300, "2025-01-01")

	m1 := Summarize(Snapshot{ActiveLeases: []*models.LeaseTenancy{a, b, c}}, 0)
	m2 := Summarize(Snapshot{ActiveLeases: []*models.LeaseTenancy{c, a, b}}, 0)

	assert.Equal(t, m1.TotalMonthlyRentCents, m2.TotalMonthlyRentCents)
	assert.Equal(t, m1.ActiveLeaseCount, m2.ActiveLeaseCount)
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	m := Summarize(Snapshot{}, 0)
	assert.Zero(t, m.PropertyCount)
	assert.Zero(t, m.UnitCount)
	assert.Zero(t, m.ActiveLeaseCount)
	assert.Zero(t, m.TotalMonthlyRentCents)
	assert.Zero(t, m.OverdueCount)
}

func TestBuildViewWiresOverdueIntoSummary(t *testing.T) {
	overdueLease := activeTenancy(1, 120000, "2025-01-01")
	paidLease := activeTenancy(5, 95000, "2025-01-01")

	snap := Snapshot{
		PropertyCount: 2,
		UnitCount:     3,
		ActiveLeases:  []*models.LeaseTenancy{overdueLease, paidLease},
		MonthPayments: []*models.PaymentStub{{LeaseID: paidLease.LeaseID, PaidOn: day("2025-03-05")}},
	}

	v := BuildView(snap, day("2025-03-15"))

	require.Len(t, v.Schedule, 2)
	assert.Equal(t, 1, v.Summary.OverdueCount)
	assert.Equal(t, int64(215000), v.Summary.TotalMonthlyRentCents)
	assert.Empty(t, v.Activity)
}
