package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type UnitService struct {
	units  repositories.UnitRepository
	props  repositories.PropertyRepository
	leases repositories.LeaseRepository
}

func NewUnitService(units repositories.UnitRepository, props repositories.PropertyRepository, leases repositories.LeaseRepository) *UnitService {
	return &UnitService{units: units, props: props, leases: leases}
}

func (s *UnitService) Create(ctx context.Context, req dtos.CreateUnitRequest) (*dtos.UnitResponse, error) {
	propID, err := parseID(req.PropertyID)
	if err != nil {
		return nil, err
	}
	prop, err := s.props.GetByID(ctx, propID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, notFound("Property")
	}

	u := &models.Unit{
		ID:         uuid.New(),
		PropertyID: propID,
		Label:      req.Label,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		Sqft:       req.Sqft,
		IsDefault:  req.IsDefault,
	}
	if err := s.units.Create(ctx, u); err != nil {
		return nil, err
	}

	created, err := s.units.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewUnitFromModel(created)
	return &resp, nil
}

func (s *UnitService) GetByID(ctx context.Context, rawID string) (*dtos.UnitResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	u, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("Unit")
	}
	resp := dtos.NewUnitFromModel(u)
	return &resp, nil
}

func (s *UnitService) List(ctx context.Context, rawPropertyID string) ([]dtos.UnitResponse, error) {
	if rawPropertyID != "" {
		propID, err := parseID(rawPropertyID)
		if err != nil {
			return nil, err
		}
		units, err := s.units.ListByPropertyID(ctx, propID)
		if err != nil {
			return nil, err
		}
		return dtos.NewUnitsFromModels(units), nil
	}

	units, err := s.units.List(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewUnitsFromModels(units), nil
}

func (s *UnitService) Update(ctx context.Context, rawID string, req dtos.UpdateUnitRequest) (*dtos.UnitResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	err = s.units.UpdateWithRetry(ctx, id, func(u *models.Unit) error {
		if req.Label != nil {
			u.Label = *req.Label
		}
		if req.Bedrooms != nil {
			u.Bedrooms = req.Bedrooms
		}
		if req.Bathrooms != nil {
			u.Bathrooms = req.Bathrooms
		}
		if req.Sqft != nil {
			u.Sqft = req.Sqft
		}
		if req.IsDefault != nil {
			u.IsDefault = *req.IsDefault
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err, "Unit")
	}

	updated, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewUnitFromModel(updated)
	return &resp, nil
}

// Delete refuses to remove a unit that still has leases, mirroring the FK
// constraint with a clearer error than a raw 23503.
func (s *UnitService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	n, err := s.leases.CountByUnitID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeEntityInUse,
			Message:    "Unit has leases attached; remove them first",
		}
	}
	return mapRepoErr(s.units.Delete(ctx, id), "Unit")
}
