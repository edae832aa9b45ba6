package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

/* ───────────── public interface ───────────── */

type LeaseRepository interface {
	Create(ctx context.Context, l *models.Lease) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	GetTenancyByID(ctx context.Context, id uuid.UUID) (*models.LeaseTenancy, error)
	ListTenancies(ctx context.Context) ([]*models.LeaseTenancy, error)
	ListActiveTenancies(ctx context.Context) ([]*models.LeaseTenancy, error)
	ListRecentTenancies(ctx context.Context, limit int) ([]*models.LeaseTenancy, error)
	CountByUnitID(ctx context.Context, unitID uuid.UUID) (int, error)

	Update(ctx context.Context, l *models.Lease) error
	UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type leaseRepo struct {
	*BaseVersionedRepo[*models.Lease]
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	r := &leaseRepo{db: db}
	selectStmt := baseSelectLease() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanLease)
	return r
}

/* ---------- create ---------- */

func (r *leaseRepo) Create(ctx context.Context, l *models.Lease) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO leases (
			id, unit_id, tenant_id, start_date, end_date,
			rent_cents, due_day, deposit_cents, status,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
	`,
		l.ID, l.UnitID, l.TenantID, l.StartDate, l.EndDate,
		l.RentCents, l.DueDay, l.DepositCents, l.Status,
	)
	return err
}

/* ---------- reads ---------- */

func (r *leaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *leaseRepo) GetTenancyByID(ctx context.Context, id uuid.UUID) (*models.LeaseTenancy, error) {
	row := r.db.QueryRow(ctx, baseSelectLeaseTenancy()+" WHERE l.id=$1", id)
	lt, err := scanLeaseTenancy(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return lt, err
}

// ListTenancies orders by start date, newest lease first, matching the
// console's leases page.
func (r *leaseRepo) ListTenancies(ctx context.Context) ([]*models.LeaseTenancy, error) {
	rows, err := r.db.Query(ctx, baseSelectLeaseTenancy()+" ORDER BY l.start_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaseTenancies(rows)
}

func (r *leaseRepo) ListActiveTenancies(ctx context.Context) ([]*models.LeaseTenancy, error) {
	rows, err := r.db.Query(ctx, baseSelectLeaseTenancy()+" WHERE l.status=$1 ORDER BY l.created_at", models.LeaseActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaseTenancies(rows)
}

func (r *leaseRepo) ListRecentTenancies(ctx context.Context, limit int) ([]*models.LeaseTenancy, error) {
	rows, err := r.db.Query(ctx, baseSelectLeaseTenancy()+" ORDER BY l.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaseTenancies(rows)
}

func (r *leaseRepo) CountByUnitID(ctx context.Context, unitID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leases WHERE unit_id=$1`, unitID).Scan(&n)
	return n, err
}

/* ---------- update / delete ---------- */

func (r *leaseRepo) Update(ctx context.Context, l *models.Lease) error {
	_, err := r.update(ctx, l, false, 0)
	return err
}

func (r *leaseRepo) UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, l, true, expected)
}

func (r *leaseRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *leaseRepo) update(ctx context.Context, l *models.Lease, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE leases SET
			unit_id=$1, tenant_id=$2, start_date=$3, end_date=$4,
			rent_cents=$5, due_day=$6, deposit_cents=$7, status=$8, updated_at=NOW()
	`
	args := []any{
		l.UnitID, l.TenantID, l.StartDate, l.EndDate,
		l.RentCents, l.DueDay, l.DepositCents, l.Status,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$9 AND row_version=$10`
		args = append(args, l.ID, expected)
	} else {
		sql += ` WHERE id=$9`
		args = append(args, l.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *leaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectLease() string {
	return `
		SELECT id, unit_id, tenant_id, start_date, end_date,
		rent_cents, due_day, deposit_cents, status,
		created_at, updated_at, row_version
		FROM leases`
}

// baseSelectLeaseTenancy flattens the lease→unit→property and lease→tenant
// joins into display columns. LEFT JOINs plus COALESCE keep a dangling
// reference from failing the query; the display fields just come back empty.
func baseSelectLeaseTenancy() string {
	return `
		SELECT
			l.id, l.unit_id, l.tenant_id,
			COALESCE(u.property_id, '00000000-0000-0000-0000-000000000000'::uuid),
			l.start_date, l.end_date, l.rent_cents, l.due_day, l.deposit_cents,
			l.status, l.created_at,
			COALESCE(u.label, ''), COALESCE(p.name, ''),
			COALESCE(t.first_name, ''), COALESCE(t.last_name, '')
		FROM leases l
		LEFT JOIN units u ON u.id = l.unit_id
		LEFT JOIN properties p ON p.id = u.property_id
		LEFT JOIN tenants t ON t.id = l.tenant_id`
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	if err := row.Scan(
		&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.RentCents, &l.DueDay, &l.DepositCents, &l.Status,
		&l.CreatedAt, &l.UpdatedAt, &l.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func scanLeaseTenancy(row pgx.Row) (*models.LeaseTenancy, error) {
	var lt models.LeaseTenancy
	if err := row.Scan(
		&lt.LeaseID, &lt.UnitID, &lt.TenantID, &lt.PropertyID,
		&lt.StartDate, &lt.EndDate, &lt.RentCents, &lt.DueDay, &lt.DepositCents,
		&lt.Status, &lt.CreatedAt,
		&lt.UnitLabel, &lt.PropertyName,
		&lt.TenantFirstName, &lt.TenantLastName,
	); err != nil {
		return nil, err
	}
	return &lt, nil
}

func scanLeaseTenancies(rows pgx.Rows) ([]*models.LeaseTenancy, error) {
	var out []*models.LeaseTenancy
	for rows.Next() {
		lt, err := scanLeaseTenancy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}
