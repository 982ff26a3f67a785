package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pduarte/aviacao/internal/domain"
)

// SQLSTATEs raised by the guard triggers in migrations/0001_init.sql.
const (
	codeCapacityExceeded   = "AB001"
	codeSeatClassMismatch  = "AB002"
	codeAircraftMismatch   = "AB003"
	codeSaleAfterDeparture = "AB004"
)

const codeUniqueViolation = "23505"

// seatUniqueConstraint backs the seat claim: a competing check-in that
// commits between the candidate snapshot and our lock surfaces here rather
// than as a double assignment.
const seatUniqueConstraint = "bilhete_assento_unico"

// mapPGError translates storage errors into typed domain errors. Guard
// trigger violations carry custom SQLSTATEs so we never have to inspect
// message text.
func mapPGError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeCapacityExceeded:
			return domain.ErrCapacityExceeded
		case codeSeatClassMismatch:
			return domain.ErrSeatClassMismatch
		case codeAircraftMismatch:
			return domain.ErrAircraftMismatch
		case codeSaleAfterDeparture:
			return domain.ErrSaleAfterDeparture
		case codeUniqueViolation:
			if pgErr.ConstraintName == seatUniqueConstraint {
				return domain.ErrNoSeatAvailable
			}
		}
	}
	return err
}
