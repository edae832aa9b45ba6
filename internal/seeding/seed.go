// Package seeding creates a small, fixed demo portfolio so a fresh install
// has something to show on the dashboard. Every entity uses a hard-coded
// UUID, so reruns are no-ops.
package seeding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

const (
	DemoPropertyID = "11111111-1111-1111-1111-111111111111"
	DemoUnitAID    = "22222222-2222-2222-2222-222222222221"
	DemoUnitBID    = "22222222-2222-2222-2222-222222222222"
	DemoTenantAID  = "33333333-3333-3333-3333-333333333331"
	DemoTenantBID  = "33333333-3333-3333-3333-333333333332"
	DemoLeaseAID   = "44444444-4444-4444-4444-444444444441"
	DemoLeaseBID   = "44444444-4444-4444-4444-444444444442"
	DemoPaymentID  = "55555555-5555-5555-5555-555555555551"
)

type Repos struct {
	Properties repositories.PropertyRepository
	Units      repositories.UnitRepository
	Tenants    repositories.TenantRepository
	Leases     repositories.LeaseRepository
	Payments   repositories.PaymentRepository
}

// SeedDemoData inserts the demo portfolio. Existing rows are left alone.
func SeedDemoData(ctx context.Context, repos Repos) error {
	if err := seedProperty(ctx, repos.Properties); err != nil {
		return err
	}
	if err := seedUnits(ctx, repos.Units); err != nil {
		return err
	}
	if err := seedTenants(ctx, repos.Tenants); err != nil {
		return err
	}
	if err := seedLeases(ctx, repos.Leases); err != nil {
		return err
	}
	if err := seedPayment(ctx, repos.Payments); err != nil {
		return err
	}
	utils.Logger.Info("seeding: demo data ready")
	return nil
}

func seedProperty(ctx context.Context, repo repositories.PropertyRepository) error {
	id := uuid.MustParse(DemoPropertyID)
	if existing, err := repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("check demo property: %w", err)
	} else if existing != nil {
		utils.Logger.Info("seeding: demo property already present; skipping")
		return nil
	}

	p := &models.Property{
		ID:           id,
		Name:         "Maple Street Duplex",
		Address1:     "412 Maple St",
		City:         "Huntsville",
		State:        "AL",
		PostalCode:   "35801",
		PropertyType: models.PropertyMulti,
	}
	if err := repo.Create(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("create demo property: %w", err)
	}
	return nil
}

func seedUnits(ctx context.Context, repo repositories.UnitRepository) error {
	units := []*models.Unit{
		{
			ID:         uuid.MustParse(DemoUnitAID),
			PropertyID: uuid.MustParse(DemoPropertyID),
			Label:      "Unit A",
			Bedrooms:   utils.Ptr(2),
			Bathrooms:  utils.Ptr(1.0),
			Sqft:       utils.Ptr(850),
		},
		{
			ID:         uuid.MustParse(DemoUnitBID),
			PropertyID: uuid.MustParse(DemoPropertyID),
			Label:      "Unit B",
			Bedrooms:   utils.Ptr(3),
			Bathrooms:  utils.Ptr(1.5),
			Sqft:       utils.Ptr(1100),
		},
	}
	for _, u := range units {
		if existing, err := repo.GetByID(ctx, u.ID); err != nil {
			return fmt.Errorf("check demo unit %s: %w", u.Label, err)
		} else if existing != nil {
			continue
		}
		if err := repo.Create(ctx, u); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("create demo unit %s: %w", u.Label, err)
		}
	}
	return nil
}

func seedTenants(ctx context.Context, repo repositories.TenantRepository) error {
	tenants := []*models.Tenant{
		{
			ID:        uuid.MustParse(DemoTenantAID),
			FirstName: "Avery",
			LastName:  "Collins",
			Email:     utils.Ptr("avery.collins@example.com"),
			Phone:     utils.Ptr("+12565550101"),
		},
		{
			ID:        uuid.MustParse(DemoTenantBID),
			FirstName: "Jordan",
			LastName:  "Reyes",
			Email:     utils.Ptr("jordan.reyes@example.com"),
		},
	}
	for _, t := range tenants {
		if existing, err := repo.GetByID(ctx, t.ID); err != nil {
			return fmt.Errorf("check demo tenant %s: %w", t.FullName(), err)
		} else if existing != nil {
			continue
		}
		if err := repo.Create(ctx, t); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("create demo tenant %s: %w", t.FullName(), err)
		}
	}
	return nil
}

func seedLeases(ctx context.Context, repo repositories.LeaseRepository) error {
	now := time.Now().UTC()
	startA := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -6, 0)
	startB := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -2, 14)

	leases := []*models.Lease{
		{
			ID:        uuid.MustParse(DemoLeaseAID),
			UnitID:    uuid.MustParse(DemoUnitAID),
			TenantID:  uuid.MustParse(DemoTenantAID),
			StartDate: startA,
			RentCents: 95000,
			DueDay:    1,
			Status:    models.LeaseActive,
		},
		{
			ID:           uuid.MustParse(DemoLeaseBID),
			UnitID:       uuid.MustParse(DemoUnitBID),
			TenantID:     uuid.MustParse(DemoTenantBID),
			StartDate:    startB,
			RentCents:    120000,
			DueDay:       15,
			DepositCents: utils.Ptr(int64(120000)),
			Status:       models.LeaseActive,
		},
	}
	for _, l := range leases {
		if existing, err := repo.GetByID(ctx, l.ID); err != nil {
			return fmt.Errorf("check demo lease: %w", err)
		} else if existing != nil {
			continue
		}
		if err := repo.Create(ctx, l); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("create demo lease: %w", err)
		}
	}
	return nil
}

func seedPayment(ctx context.Context, repo repositories.PaymentRepository) error {
	id := uuid.MustParse(DemoPaymentID)
	if existing, err := repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("check demo payment: %w", err)
	} else if existing != nil {
		return nil
	}

	now := time.Now().UTC()
	p := &models.Payment{
		ID:          id,
		LeaseID:     uuid.MustParse(DemoLeaseAID),
		PaidOn:      time.Date(now.Year(), now.Month(), 2, 0, 0, 0, 0, time.UTC),
		AmountCents: 95000,
		Method:      models.PayACH,
		Memo:        utils.Ptr("Rent"),
	}
	if err := repo.Create(ctx, p); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("create demo payment: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
