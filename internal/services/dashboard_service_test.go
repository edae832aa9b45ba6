package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type stubPropertyReader struct {
	count  int
	recent []*models.Property
	err    error
}

func (s *stubPropertyReader) Count(context.Context) (int, error) { return s.count, s.err }
func (s *stubPropertyReader) ListRecent(context.Context, int) ([]*models.Property, error) {
	return s.recent, s.err
}

type stubUnitReader struct {
	count  int
	recent []*models.UnitActivity
	err    error
}

func (s *stubUnitReader) Count(context.Context) (int, error) { return s.count, s.err }
func (s *stubUnitReader) ListRecent(context.Context, int) ([]*models.UnitActivity, error) {
	return s.recent, s.err
}

type stubTenantReader struct {
	recent []*models.Tenant
	err    error
}

func (s *stubTenantReader) ListRecent(context.Context, int) ([]*models.Tenant, error) {
	return s.recent, s.err
}

type stubLeaseReader struct {
	active []*models.LeaseTenancy
	recent []*models.LeaseTenancy
	err    error
}

func (s *stubLeaseReader) ListActiveTenancies(context.Context) ([]*models.LeaseTenancy, error) {
	return s.active, s.err
}
func (s *stubLeaseReader) ListRecentTenancies(context.Context, int) ([]*models.LeaseTenancy, error) {
	return s.recent, s.err
}

type stubPaymentReader struct {
	recent []*models.PaymentTenancy
	stubs  []*models.PaymentStub
	err    error
}

func (s *stubPaymentReader) ListRecentTenancies(context.Context, int) ([]*models.PaymentTenancy, error) {
	return s.recent, s.err
}
func (s *stubPaymentReader) ListPaidOnRange(context.Context, time.Time, time.Time) ([]*models.PaymentStub, error) {
	return s.stubs, s.err
}

func newDashboardFixture() (*stubPropertyReader, *stubUnitReader, *stubTenantReader, *stubLeaseReader, *stubPaymentReader, *DashboardService) {
	props := &stubPropertyReader{count: 2}
	units := &stubUnitReader{count: 5}
	tenants := &stubTenantReader{}
	leases := &stubLeaseReader{}
	payments := &stubPaymentReader{}
	svc := NewDashboardService(props, units, tenants, leases, payments)
	return props, units, tenants, leases, payments, svc
}

func TestDashboardOverviewAggregates(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	leaseID := uuid.New()

	_, _, _, leases, payments, svc := newDashboardFixture()
	leases.active = []*models.LeaseTenancy{
		{
			LeaseID:      leaseID,
			StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			RentCents:    150000,
			DueDay:       1,
			Status:       models.LeaseActive,
			UnitLabel:    "Unit A",
			PropertyName: "Maple House",
		},
	}
	payments.stubs = []*models.PaymentStub{
		{LeaseID: leaseID, PaidOn: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)},
	}

	view, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, view.Summary.PropertyCount)
	assert.Equal(t, 5, view.Summary.UnitCount)
	assert.Equal(t, 1, view.Summary.ActiveLeaseCount)
	assert.Equal(t, int64(150000), view.Summary.TotalMonthlyRentCents)
	assert.Equal(t, 0, view.Summary.OverdueCount)

	require.Len(t, view.Schedule, 1)
	assert.True(t, view.Schedule[0].Paid)
	assert.False(t, view.Schedule[0].Overdue)
}

func TestDashboardOverviewFailsWhenAnyFetchFails(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	boom := errors.New("connection reset")

	_, _, tenants, _, _, svc := newDashboardFixture()
	tenants.err = boom

	view, err := svc.Overview(context.Background(), now)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, view)
}

func TestDashboardOverviewEmptyStore(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	props, units, _, _, _, svc := newDashboardFixture()
	props.count = 0
	units.count = 0

	view, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, view.Summary.PropertyCount)
	assert.Equal(t, int64(0), view.Summary.TotalMonthlyRentCents)
	assert.Empty(t, view.Activity)
	assert.Empty(t, view.Schedule)
}
