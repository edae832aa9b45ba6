package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Property, error)
	Count(ctx context.Context) (int, error)

	Update(ctx context.Context, p *models.Property) error
	UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	*BaseVersionedRepo[*models.Property]
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	r := &propertyRepo{db: db}
	selectStmt := baseSelectProperty() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanProperty)
	return r
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, name, address1, address2, city, state, postal_code, notes,
            property_type,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
    `,
		p.ID,
		p.Name,
		p.Address1,
		p.Address2,
		p.City,
		p.State,
		p.PostalCode,
		p.Notes,
		p.PropertyType,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

// List returns every property, newest first, matching the console's
// properties page ordering.
func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepo) ListRecent(ctx context.Context, limit int) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	_, err := r.update(ctx, p, false, 0)
	return err
}

func (r *propertyRepo) UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, p, true, expected)
}

func (r *propertyRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *propertyRepo) update(ctx context.Context, p *models.Property, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE properties SET
            name=$1, address1=$2, address2=$3, city=$4, state=$5,
            postal_code=$6, notes=$7, property_type=$8, updated_at=NOW()
    `
	args := []any{
		p.Name, p.Address1, p.Address2, p.City, p.State,
		p.PostalCode, p.Notes, p.PropertyType,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$9 AND row_version=$10`
		args = append(args, p.ID, expected)
	} else {
		sql += ` WHERE id=$9`
		args = append(args, p.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectProperty() string {
	return `
        SELECT
            id, name, address1, address2, city, state, postal_code, notes,
            property_type,
            created_at, updated_at, row_version
        FROM properties
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Address1,
		&p.Address2,
		&p.City,
		&p.State,
		&p.PostalCode,
		&p.Notes,
		&p.PropertyType,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProperties(rows pgx.Rows) ([]*models.Property, error) {
	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
