package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/models"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
)

type PaymentService struct {
	payments repositories.PaymentRepository
	leases   repositories.LeaseRepository
}

func NewPaymentService(payments repositories.PaymentRepository, leases repositories.LeaseRepository) *PaymentService {
	return &PaymentService{payments: payments, leases: leases}
}

func (s *PaymentService) Create(ctx context.Context, req dtos.CreatePaymentRequest) (*dtos.PaymentResponse, error) {
	leaseID, err := parseID(req.LeaseID)
	if err != nil {
		return nil, err
	}
	lease, err := s.leases.GetByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, notFound("Lease")
	}

	paidOn, err := parseDate(req.PaidOn)
	if err != nil {
		return nil, err
	}
	p := &models.Payment{
		ID:          uuid.New(),
		LeaseID:     leaseID,
		PaidOn:      paidOn,
		AmountCents: req.AmountCents,
		Method:      models.PaymentMethod(req.Method),
		Memo:        req.Memo,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.payments.GetTenancyByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewPaymentFromTenancy(created)
	return &resp, nil
}

func (s *PaymentService) GetByID(ctx context.Context, rawID string) (*dtos.PaymentResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	pt, err := s.payments.GetTenancyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, notFound("Payment")
	}
	resp := dtos.NewPaymentFromTenancy(pt)
	return &resp, nil
}

func (s *PaymentService) List(ctx context.Context) ([]dtos.PaymentResponse, error) {
	list, err := s.payments.ListTenancies(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewPaymentsFromTenancies(list), nil
}

func (s *PaymentService) Update(ctx context.Context, rawID string, req dtos.UpdatePaymentRequest) (*dtos.PaymentResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	var leaseID *uuid.UUID
	if req.LeaseID != nil {
		v, err := parseID(*req.LeaseID)
		if err != nil {
			return nil, err
		}
		leaseID = &v
	}

	err = s.payments.UpdateWithRetry(ctx, id, func(p *models.Payment) error {
		if leaseID != nil {
			p.LeaseID = *leaseID
		}
		if req.PaidOn != nil {
			d, err := parseDate(*req.PaidOn)
			if err != nil {
				return err
			}
			p.PaidOn = d
		}
		if req.AmountCents != nil {
			p.AmountCents = *req.AmountCents
		}
		if req.Method != nil {
			p.Method = models.PaymentMethod(*req.Method)
		}
		if req.Memo != nil {
			p.Memo = req.Memo
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err, "Payment")
	}

	updated, err := s.payments.GetTenancyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewPaymentFromTenancy(updated)
	return &resp, nil
}

func (s *PaymentService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.payments.Delete(ctx, id), "Payment")
}
