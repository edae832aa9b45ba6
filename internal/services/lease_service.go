package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
)

type LeaseService struct {
	leases  repositories.LeaseRepository
	units   repositories.UnitRepository
	tenants repositories.TenantRepository
}

func NewLeaseService(leases repositories.LeaseRepository, units repositories.UnitRepository, tenants repositories.TenantRepository) *LeaseService {
	return &LeaseService{leases: leases, units: units, tenants: tenants}
}

func (s *LeaseService) Create(ctx context.Context, req dtos.CreateLeaseRequest) (*dtos.LeaseResponse, error) {
	unitID, err := parseID(req.UnitID)
	if err != nil {
		return nil, err
	}
	tenantID, err := parseID(req.TenantID)
	if err != nil {
		return nil, err
	}

	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, notFound("Unit")
	}
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, notFound("Tenant")
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	l := &models.Lease{
		ID:           uuid.New(),
		UnitID:       unitID,
		TenantID:     tenantID,
		StartDate:    start,
		RentCents:    req.RentCents,
		DueDay:       req.DueDay,
		DepositCents: req.DepositCents,
		Status:       models.LeaseStatus(req.Status),
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		l.EndDate = &end
	}

	if err := s.leases.Create(ctx, l); err != nil {
		return nil, err
	}

	created, err := s.leases.GetTenancyByID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewLeaseFromTenancy(created)
	return &resp, nil
}

func (s *LeaseService) GetByID(ctx context.Context, rawID string) (*dtos.LeaseResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	lt, err := s.leases.GetTenancyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lt == nil {
		return nil, notFound("Lease")
	}
	resp := dtos.NewLeaseFromTenancy(lt)
	return &resp, nil
}

func (s *LeaseService) List(ctx context.Context) ([]dtos.LeaseResponse, error) {
	list, err := s.leases.ListTenancies(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewLeasesFromTenancies(list), nil
}

func (s *LeaseService) Update(ctx context.Context, rawID string, req dtos.UpdateLeaseRequest) (*dtos.LeaseResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	// parse up front so the mutate callback can't fail halfway through a retry
	var unitID, tenantID *uuid.UUID
	if req.UnitID != nil {
		v, err := parseID(*req.UnitID)
		if err != nil {
			return nil, err
		}
		unitID = &v
	}
	if req.TenantID != nil {
		v, err := parseID(*req.TenantID)
		if err != nil {
			return nil, err
		}
		tenantID = &v
	}
	err = s.leases.UpdateWithRetry(ctx, id, func(l *models.Lease) error {
		if unitID != nil {
			l.UnitID = *unitID
		}
		if tenantID != nil {
			l.TenantID = *tenantID
		}
		if req.StartDate != nil {
			d, err := parseDate(*req.StartDate)
			if err != nil {
				return err
			}
			l.StartDate = d
		}
		if req.ClearEndDate {
			l.EndDate = nil
		} else if req.EndDate != nil {
			d, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			l.EndDate = &d
		}
		if req.RentCents != nil {
			l.RentCents = *req.RentCents
		}
		if req.DueDay != nil {
			l.DueDay = *req.DueDay
		}
		if req.DepositCents != nil {
			l.DepositCents = req.DepositCents
		}
		if req.Status != nil {
			l.Status = models.LeaseStatus(*req.Status)
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err, "Lease")
	}

	updated, err := s.leases.GetTenancyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewLeaseFromTenancy(updated)
	return &resp, nil
}

func (s *LeaseService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.leases.Delete(ctx, id), "Lease")
}
