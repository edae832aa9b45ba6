package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/CarlinQuentin/property-manager/internal/utils"
)

const dateLayout = "2006-01-02"

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid id format",
			Err:        err,
		}
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid date, expected YYYY-MM-DD",
			Err:        err,
		}
	}
	return d, nil
}

func notFound(what string) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    what + " not found",
	}
}

// isForeignKeyViolation reports whether err is a PostgreSQL FK violation,
// i.e. a delete blocked by child rows.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// mapRepoErr turns repo failures into the AppErrors the HTTP layer
// understands: missing row → 404, FK violation → 409.
func mapRepoErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if err == pgx.ErrNoRows {
		return notFound(what)
	}
	if isForeignKeyViolation(err) {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeEntityInUse,
			Message:    what + " is still referenced by other records",
			Err:        err,
		}
	}
	return err
}
