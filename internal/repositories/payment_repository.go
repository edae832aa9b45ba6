package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

/* ───────────── public interface ───────────── */

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetTenancyByID(ctx context.Context, id uuid.UUID) (*models.PaymentTenancy, error)
	ListTenancies(ctx context.Context) ([]*models.PaymentTenancy, error)
	ListRecentTenancies(ctx context.Context, limit int) ([]*models.PaymentTenancy, error)

	// ListPaidOnRange returns the lease-id stubs for payments whose paid_on
	// falls in the half-open window [start, end).
	ListPaidOnRange(ctx context.Context, start, end time.Time) ([]*models.PaymentStub, error)
	CountByLeaseID(ctx context.Context, leaseID uuid.UUID) (int, error)

	Update(ctx context.Context, p *models.Payment) error
	UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type paymentRepo struct {
	*BaseVersionedRepo[*models.Payment]
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	r := &paymentRepo{db: db}
	selectStmt := baseSelectPayment() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanPayment)
	return r
}

/* ---------- create ---------- */

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (
			id, lease_id, paid_on, amount_cents, method, memo,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW(), 1)
	`, p.ID, p.LeaseID, p.PaidOn, p.AmountCents, p.Method, p.Memo)
	return err
}

/* ---------- reads ---------- */

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *paymentRepo) GetTenancyByID(ctx context.Context, id uuid.UUID) (*models.PaymentTenancy, error) {
	row := r.db.QueryRow(ctx, baseSelectPaymentTenancy()+" WHERE pay.id=$1", id)
	pt, err := scanPaymentTenancy(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return pt, err
}

// ListTenancies orders by paid_on then created_at, newest first, matching the
// console's payments page.
func (r *paymentRepo) ListTenancies(ctx context.Context) ([]*models.PaymentTenancy, error) {
	rows, err := r.db.Query(ctx, baseSelectPaymentTenancy()+" ORDER BY pay.paid_on DESC, pay.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPaymentTenancies(rows)
}

func (r *paymentRepo) ListRecentTenancies(ctx context.Context, limit int) ([]*models.PaymentTenancy, error) {
	rows, err := r.db.Query(ctx, baseSelectPaymentTenancy()+" ORDER BY pay.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPaymentTenancies(rows)
}

func (r *paymentRepo) ListPaidOnRange(ctx context.Context, start, end time.Time) ([]*models.PaymentStub, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lease_id, paid_on FROM payments
		WHERE paid_on >= $1 AND paid_on < $2
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PaymentStub
	for rows.Next() {
		var s models.PaymentStub
		if err := rows.Scan(&s.LeaseID, &s.PaidOn); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *paymentRepo) CountByLeaseID(ctx context.Context, leaseID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE lease_id=$1`, leaseID).Scan(&n)
	return n, err
}

/* ---------- update / delete ---------- */

func (r *paymentRepo) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.update(ctx, p, false, 0)
	return err
}

func (r *paymentRepo) UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, p, true, expected)
}

func (r *paymentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *paymentRepo) update(ctx context.Context, p *models.Payment, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE payments
		SET lease_id=$1, paid_on=$2, amount_cents=$3, method=$4, memo=$5, updated_at=NOW()
	`
	args := []any{p.LeaseID, p.PaidOn, p.AmountCents, p.Method, p.Memo}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$6 AND row_version=$7`
		args = append(args, p.ID, expected)
	} else {
		sql += ` WHERE id=$6`
		args = append(args, p.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectPayment() string {
	return `
		SELECT id, lease_id, paid_on, amount_cents, method, memo,
		created_at, updated_at, row_version
		FROM payments`
}

func baseSelectPaymentTenancy() string {
	return `
		SELECT
			pay.id, pay.lease_id, pay.paid_on, pay.amount_cents, pay.method, pay.memo,
			pay.created_at,
			COALESCE(l.unit_id, '00000000-0000-0000-0000-000000000000'::uuid),
			COALESCE(u.property_id, '00000000-0000-0000-0000-000000000000'::uuid),
			COALESCE(l.tenant_id, '00000000-0000-0000-0000-000000000000'::uuid),
			COALESCE(u.label, ''), COALESCE(p.name, ''),
			COALESCE(t.first_name, ''), COALESCE(t.last_name, '')
		FROM payments pay
		LEFT JOIN leases l ON l.id = pay.lease_id
		LEFT JOIN units u ON u.id = l.unit_id
		LEFT JOIN properties p ON p.id = u.property_id
		LEFT JOIN tenants t ON t.id = l.tenant_id`
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	if err := row.Scan(
		&p.ID, &p.LeaseID, &p.PaidOn, &p.AmountCents, &p.Method, &p.Memo,
		&p.CreatedAt, &p.UpdatedAt, &p.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanPaymentTenancy(row pgx.Row) (*models.PaymentTenancy, error) {
	var pt models.PaymentTenancy
	if err := row.Scan(
		&pt.PaymentID, &pt.LeaseID, &pt.PaidOn, &pt.AmountCents, &pt.Method, &pt.Memo,
		&pt.CreatedAt,
		&pt.UnitID, &pt.PropertyID, &pt.TenantID,
		&pt.UnitLabel, &pt.PropertyName,
		&pt.TenantFirstName, &pt.TenantLastName,
	); err != nil {
		return nil, err
	}
	return &pt, nil
}

func scanPaymentTenancies(rows pgx.Rows) ([]*models.PaymentTenancy, error) {
	var out []*models.PaymentTenancy
	for rows.Next() {
		pt, err := scanPaymentTenancy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}
