package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	List(ctx context.Context) ([]*models.Unit, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error)
	ListRecent(ctx context.Context, limit int) ([]*models.UnitActivity, error)
	Count(ctx context.Context) (int, error)

	Update(ctx context.Context, u *models.Unit) error
	UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPropertyID(ctx context.Context, propID uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	*BaseVersionedRepo[*models.Unit]
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	r := &unitRepo{db: db}
	selectStmt := baseSelectUnit() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, r.scanUnit)
	return r
}

/* ---------- create ---------- */

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO units (
			id, property_id, label, bedrooms, bathrooms, sqft, is_default,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
	`, u.ID, u.PropertyID, u.Label, u.Bedrooms, u.Bathrooms, u.Sqft, u.IsDefault)
	return err
}

/* ---------- reads ---------- */

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *unitRepo) List(ctx context.Context) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanUnits(rows)
}

// ListByPropertyID orders by label so a property's units read naturally
// ("Unit A", "Unit B", ...) in the detail view.
func (r *unitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE property_id=$1 ORDER BY label", propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanUnits(rows)
}

// ListRecent joins the owning property's name so the activity feed can show
// it without a second fetch. A dangling property_id yields an empty name.
func (r *unitRepo) ListRecent(ctx context.Context, limit int) ([]*models.UnitActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.label, COALESCE(p.name, ''), u.created_at
		FROM units u
		LEFT JOIN properties p ON p.id = u.property_id
		ORDER BY u.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.UnitActivity
	for rows.Next() {
		var ua models.UnitActivity
		if err := rows.Scan(&ua.ID, &ua.Label, &ua.PropertyName, &ua.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &ua)
	}
	return out, rows.Err()
}

func (r *unitRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM units`).Scan(&n)
	return n, err
}

/* ---------- update / delete ---------- */

func (r *unitRepo) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.update(ctx, u, false, 0)
	return err
}

func (r *unitRepo) UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, u, true, expected)
}

func (r *unitRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *unitRepo) update(ctx context.Context, u *models.Unit, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE units
		SET label=$1, bedrooms=$2, bathrooms=$3, sqft=$4, is_default=$5, updated_at=NOW()
	`
	args := []any{u.Label, u.Bedrooms, u.Bathrooms, u.Sqft, u.IsDefault}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$6 AND row_version=$7`
		args = append(args, u.ID, expected)
	} else {
		sql += ` WHERE id=$6`
		args = append(args, u.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *unitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM units WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *unitRepo) DeleteByPropertyID(ctx context.Context, propID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM units WHERE property_id=$1`, propID)
	return err
}

/* ---------- internals ---------- */

func baseSelectUnit() string {
	return `
		SELECT id, property_id, label, bedrooms, bathrooms, sqft, is_default,
		created_at, updated_at, row_version
		FROM units`
}

func (r *unitRepo) scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(
		&u.ID, &u.PropertyID, &u.Label,
		&u.Bedrooms, &u.Bathrooms, &u.Sqft, &u.IsDefault,
		&u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *unitRepo) scanUnits(rows pgx.Rows) ([]*models.Unit, error) {
	var out []*models.Unit
	for rows.Next() {
		u, err := r.scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
