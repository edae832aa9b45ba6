package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CarlinQuentin/property-manager/internal/dashboard"
	"github.com/CarlinQuentin/property-manager/internal/models"
)

// recentLimit is the per-kind cap on activity rows. The merged feed is also
// capped at this size, so each kind alone can fill the feed.
const recentLimit = 10

// Read-side slices of the repositories, narrowed to exactly what the
// dashboard consumes. Keeping the service on these instead of the full
// repository interfaces makes the fan-out trivially stubbable.
type propertyReader interface {
	Count(ctx context.Context) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Property, error)
}

type unitReader interface {
	Count(ctx context.Context) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*models.UnitActivity, error)
}

type tenantReader interface {
	ListRecent(ctx context.Context, limit int) ([]*models.Tenant, error)
}

type leaseReader interface {
	ListActiveTenancies(ctx context.Context) ([]*models.LeaseTenancy, error)
	ListRecentTenancies(ctx context.Context, limit int) ([]*models.LeaseTenancy, error)
}

type paymentReader interface {
	ListRecentTenancies(ctx context.Context, limit int) ([]*models.PaymentTenancy, error)
	ListPaidOnRange(ctx context.Context, start, end time.Time) ([]*models.PaymentStub, error)
}

type DashboardService struct {
	props    propertyReader
	units    unitReader
	tenants  tenantReader
	leases   leaseReader
	payments paymentReader
}

func NewDashboardService(
	props propertyReader,
	units unitReader,
	tenants tenantReader,
	leases leaseReader,
	payments paymentReader,
) *DashboardService {
	return &DashboardService{
		props:    props,
		units:    units,
		tenants:  tenants,
		leases:   leases,
		payments: payments,
	}
}

// Overview fetches every snapshot slice concurrently, joins them, and runs
// the aggregation. Each goroutine fills a distinct Snapshot field, so there
// is no shared mutable state to lock. Any single fetch failure fails the
// whole overview (the caller gets an error, never a partially filled view)
// and the errgroup context cancels the in-flight siblings.
func (s *DashboardService) Overview(ctx context.Context, now time.Time) (*dashboard.View, error) {
	var snap dashboard.Snapshot
	monthStart, monthEnd := dashboard.MonthWindow(now)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.props.Count(gctx)
		snap.PropertyCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.units.Count(gctx)
		snap.UnitCount = n
		return err
	})
	g.Go(func() error {
		leases, err := s.leases.ListActiveTenancies(gctx)
		snap.ActiveLeases = leases
		return err
	})
	g.Go(func() error {
		rows, err := s.payments.ListRecentTenancies(gctx, recentLimit)
		snap.RecentPayments = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.leases.ListRecentTenancies(gctx, recentLimit)
		snap.RecentLeases = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.tenants.ListRecent(gctx, recentLimit)
		snap.RecentTenants = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.props.ListRecent(gctx, recentLimit)
		snap.RecentProperties = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.units.ListRecent(gctx, recentLimit)
		snap.RecentUnits = rows
		return err
	})
	g.Go(func() error {
		stubs, err := s.payments.ListPaidOnRange(gctx, monthStart, monthEnd)
		snap.MonthPayments = stubs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard.BuildView(snap, now), nil
}
