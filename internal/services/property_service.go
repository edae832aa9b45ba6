package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
)

type PropertyService struct {
	props repositories.PropertyRepository
	units repositories.UnitRepository
}

func NewPropertyService(props repositories.PropertyRepository, units repositories.UnitRepository) *PropertyService {
	return &PropertyService{props: props, units: units}
}

func (s *PropertyService) Create(ctx context.Context, req dtos.CreatePropertyRequest) (*dtos.PropertyResponse, error) {
	propType := models.PropertyType(req.PropertyType)
	if propType == "" {
		propType = models.PropertySingle
	}

	p := &models.Property{
		ID:           uuid.New(),
		Name:         req.Name,
		Address1:     req.Address1,
		Address2:     req.Address2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Notes:        req.Notes,
		PropertyType: propType,
	}
	if err := s.props.Create(ctx, p); err != nil {
		return nil, err
	}

	// A single-unit property gets its default unit up front so leases have
	// something to attach to without a separate step.
	if propType == models.PropertySingle {
		u := &models.Unit{
			ID:         uuid.New(),
			PropertyID: p.ID,
			Label:      "Single Family Home",
			IsDefault:  true,
		}
		if err := s.units.Create(ctx, u); err != nil {
			return nil, err
		}
	}

	created, err := s.props.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewPropertyFromModel(created)
	return &resp, nil
}

func (s *PropertyService) GetByID(ctx context.Context, rawID string) (*dtos.PropertyResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	p, err := s.props.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("Property")
	}
	resp := dtos.NewPropertyFromModel(p)
	return &resp, nil
}

func (s *PropertyService) List(ctx context.Context) ([]dtos.PropertyResponse, error) {
	props, err := s.props.List(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewPropertiesFromModels(props), nil
}

func (s *PropertyService) ListUnits(ctx context.Context, rawID string) ([]dtos.UnitResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	units, err := s.units.ListByPropertyID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dtos.NewUnitsFromModels(units), nil
}

func (s *PropertyService) Update(ctx context.Context, rawID string, req dtos.UpdatePropertyRequest) (*dtos.PropertyResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	err = s.props.UpdateWithRetry(ctx, id, func(p *models.Property) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Address1 != nil {
			p.Address1 = *req.Address1
		}
		if req.Address2 != nil {
			p.Address2 = *req.Address2
		}
		if req.City != nil {
			p.City = *req.City
		}
		if req.State != nil {
			p.State = *req.State
		}
		if req.PostalCode != nil {
			p.PostalCode = *req.PostalCode
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
		if req.PropertyType != nil {
			p.PropertyType = models.PropertyType(*req.PropertyType)
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err, "Property")
	}

	updated, err := s.props.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewPropertyFromModel(updated)
	return &resp, nil
}

func (s *PropertyService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.props.Delete(ctx, id), "Property")
}
