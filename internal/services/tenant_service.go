package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
)

type TenantService struct {
	tenants repositories.TenantRepository
}

func NewTenantService(tenants repositories.TenantRepository) *TenantService {
	return &TenantService{tenants: tenants}
}

func (s *TenantService) Create(ctx context.Context, req dtos.CreateTenantRequest) (*dtos.TenantResponse, error) {
	t := &models.Tenant{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.tenants.Create(ctx, t); err != nil {
		return nil, err
	}

	created, err := s.tenants.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewTenantFromModel(created)
	return &resp, nil
}

func (s *TenantService) GetByID(ctx context.Context, rawID string) (*dtos.TenantResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("Tenant")
	}
	resp := dtos.NewTenantFromModel(t)
	return &resp, nil
}

func (s *TenantService) List(ctx context.Context) ([]dtos.TenantResponse, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewTenantsFromModels(tenants), nil
}

func (s *TenantService) Update(ctx context.Context, rawID string, req dtos.UpdateTenantRequest) (*dtos.TenantResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	err = s.tenants.UpdateWithRetry(ctx, id, func(t *models.Tenant) error {
		if req.FirstName != nil {
			t.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			t.LastName = *req.LastName
		}
		if req.Email != nil {
			t.Email = req.Email
		}
		if req.Phone != nil {
			t.Phone = req.Phone
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err, "Tenant")
	}

	updated, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewTenantFromModel(updated)
	return &resp, nil
}

func (s *TenantService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.tenants.Delete(ctx, id), "Tenant")
}
