package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

/* ───────────── public interface ───────────── */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Tenant, error)

	Update(ctx context.Context, t *models.Tenant) error
	UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type tenantRepo struct {
	*BaseVersionedRepo[*models.Tenant]
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	r := &tenantRepo{db: db}
	selectStmt := baseSelectTenant() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanTenant)
	return r
}

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenants (
			id, first_name, last_name, email, phone,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
	`, t.ID, t.FirstName, t.LastName, t.Email, t.Phone)
	return err
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) ListRecent(ctx context.Context, limit int) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.update(ctx, t, false, 0)
	return err
}

func (r *tenantRepo) UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, t, true, expected)
}

func (r *tenantRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *tenantRepo) update(ctx context.Context, t *models.Tenant, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE tenants
		SET first_name=$1, last_name=$2, email=$3, phone=$4, updated_at=NOW()
	`
	args := []any{t.FirstName, t.LastName, t.Email, t.Phone}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$5 AND row_version=$6`
		args = append(args, t.ID, expected)
	} else {
		sql += ` WHERE id=$5`
		args = append(args, t.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectTenant() string {
	return `
		SELECT id, first_name, last_name, email, phone,
		created_at, updated_at, row_version
		FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
		&t.CreatedAt, &t.UpdatedAt, &t.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
