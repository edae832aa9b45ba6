package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func recentPayment(created time.Time, cents int64) *models.PaymentTenancy {
	return &models.PaymentTenancy{
		PaymentID:       uuid.New(),
		LeaseID:         uuid.New(),
		AmountCents:     cents,
		CreatedAt:       created,
		UnitLabel:       "Unit B",
		PropertyName:    "Maple House",
		TenantFirstName: "Grace",
		TenantLastName:  "Hopper",
	}
}

func recentLease(created time.Time) *models.LeaseTenancy {
	lt := activeTenancy(1, 100000, "2025-01-05")
	lt.CreatedAt = created
	return lt
}

func TestMergeActivityOrderingAndTruncation(t *testing.T) {
	base := at("2025-03-01T12:00:00Z")

	var payments []*models.PaymentTenancy
	var leases []*models.LeaseTenancy
	for i := 0; i < 10; i++ {
		payments = append(payments, recentPayment(base.Add(time.Duration(i)*time.Minute), 5000))
		// every lease newer than every payment
		leases = append(leases, recentLease(base.Add(time.Duration(60+i)*time.Minute)))
	}

	feed := MergeActivity(Snapshot{RecentPayments: payments, RecentLeases: leases})

	require.Len(t, feed, 10)
	for _, item := range feed {
		// recency truncation drops all payments
		assert.Equal(t, KindLease, item.Kind)
	}
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].At.After(feed[i-1].At), "feed must be non-increasing by timestamp")
	}
}

func TestMergeActivityNoFabrication(t *testing.T) {
	base := at("2025-03-01T12:00:00Z")
	p := recentPayment(base, 5000)
	l := recentLease(base.Add(time.Minute))

	feed := MergeActivity(Snapshot{
		RecentPayments: []*models.PaymentTenancy{p},
		RecentLeases:   []*models.LeaseTenancy{l},
	})

	require.Len(t, feed, 2)
	ids := map[uuid.UUID]bool{p.PaymentID: true, l.LeaseID: true}
	for _, item := range feed {
		assert.True(t, ids[item.ID], "feed item %s not in inputs", item.ID)
	}
}

func TestMergeActivityTieBreakKeepsKindOrder(t *testing.T) {
	// identical timestamps: stable sort preserves the concatenation order
	// payment → lease → tenant → property → unit
	ts := at("2025-03-01T12:00:00Z")

	snap := Snapshot{
		RecentPayments:   []*models.PaymentTenancy{recentPayment(ts, 5000)},
		RecentLeases:     []*models.LeaseTenancy{recentLease(ts)},
		RecentTenants:    []*models.Tenant{{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", CreatedAt: ts}},
		RecentProperties: []*models.Property{{ID: uuid.New(), Name: "Maple House", CreatedAt: ts}},
		RecentUnits:      []*models.UnitActivity{{ID: uuid.New(), Label: "Unit A", PropertyName: "Maple House", CreatedAt: ts}},
	}

	feed := MergeActivity(snap)

	require.Len(t, feed, 5)
	want := []ActivityKind{KindPayment, KindLease, KindTenant, KindProperty, KindUnit}
	for i, k := range want {
		assert.Equal(t, k, feed[i].Kind)
	}
}

func TestMergeActivityLabels(t *testing.T) {
	ts := at("2025-03-01T12:00:00Z")

	snap := Snapshot{
		RecentPayments:   []*models.PaymentTenancy{recentPayment(ts, 123456)},
		RecentLeases:     []*models.LeaseTenancy{recentLease(ts)},
		RecentTenants:    []*models.Tenant{{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", CreatedAt: ts}},
		RecentProperties: []*models.Property{{ID: uuid.New(), Name: "Maple House", CreatedAt: ts}},
		RecentUnits:      []*models.UnitActivity{{ID: uuid.New(), Label: "Unit A", PropertyName: "Maple House", CreatedAt: ts}},
	}

	byKind := map[ActivityKind]ActivityItem{}
	for _, item := range MergeActivity(snap) {
		byKind[item.Kind] = item
	}

	assert.Equal(t, "Payment received $1234.56", byKind[KindPayment].Label)
	assert.Equal(t, "Grace Hopper • Maple House • Unit B", byKind[KindPayment].Sub)
	assert.Equal(t, "Lease created • Ada Lovelace", byKind[KindLease].Label)
	assert.Equal(t, "Maple House • Unit A • Starts 2025-01-05", byKind[KindLease].Sub)
	assert.Equal(t, "Tenant added • Ada Lovelace", byKind[KindTenant].Label)
	assert.Equal(t, "Property added • Maple House", byKind[KindProperty].Label)
	assert.Equal(t, "Unit added • Unit A", byKind[KindUnit].Label)
	assert.Equal(t, "Maple House", byKind[KindUnit].Sub)
}

func TestMergeActivityMissingJoinedFields(t *testing.T) {
	ts := at("2025-03-01T12:00:00Z")
	p := &models.PaymentTenancy{PaymentID: uuid.New(), AmountCents: 5000, CreatedAt: ts}

	feed := MergeActivity(Snapshot{RecentPayments: []*models.PaymentTenancy{p}})

	require.Len(t, feed, 1)
	assert.Equal(t, "Payment received $50.00", feed[0].Label)
	// dangling joins render as empty fields, never an error
	assert.Equal(t, " •  • ", feed[0].Sub)
}

func TestMergeActivityEmptySnapshot(t *testing.T) {
	assert.Empty(t, MergeActivity(Snapshot{}))
}

func TestMergeActivityApproximationDocumented(t *testing.T) {
	// The merge sees at most the top 10 per kind. A single older tenant row
	// that would outrank an 11th payment never reaches the merge, because
	// the payment snapshot was already truncated upstream. This asserts the
	// contract on what actually arrives, not a "fixed" global top 10.
	base := at("2025-03-01T12:00:00Z")

	var payments []*models.PaymentTenancy
	for i := 0; i < 10; i++ {
		payments = append(payments, recentPayment(base.Add(time.Duration(i)*time.Minute), 5000))
	}
	oldTenant := &models.Tenant{ID: uuid.New(), FirstName: "Old", LastName: "Row", CreatedAt: base.Add(-time.Hour)}

	feed := MergeActivity(Snapshot{RecentPayments: payments, RecentTenants: []*models.Tenant{oldTenant}})

	require.Len(t, feed, 10)
	for i, item := range feed {
		assert.Equal(t, KindPayment, item.Kind, fmt.Sprintf("item %d", i))
	}
}
