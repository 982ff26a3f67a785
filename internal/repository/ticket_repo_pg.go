package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pduarte/aviacao/internal/domain"
)

type TicketRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	// AssignSeat atomically binds one free seat of the ticket's class on
	// the flight's aircraft to the ticket and returns the updated ticket.
	// Fails with ErrNotFound, ErrAlreadyCheckedIn or ErrNoSeatAvailable.
	AssignSeat(ctx context.Context, ticketID int64) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketColumns = `id, voo_id, codigo_reserva, nome_passageiro, preco, prim_classe, lugar, no_serie`

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM bilhete WHERE id=$1`, id)
	t, err := scanTicket(row)
	if err != nil {
		return nil, mapPGError(err)
	}
	return t, nil
}

func (r *PGTicketRepository) AssignSeat(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the ticket row so two check-ins for the same ticket serialize;
	// the second sees the assigned seat and reports the conflict.
	row := tx.QueryRow(ctx, `SELECT `+ticketColumns+` FROM bilhete WHERE id=$1 FOR UPDATE`, ticketID)
	t, err := scanTicket(row)
	if err != nil {
		return nil, mapPGError(err)
	}
	if t.CheckedIn() {
		return nil, domain.ErrAlreadyCheckedIn
	}

	var serial string
	if err := tx.QueryRow(ctx, `SELECT no_serie FROM voo WHERE id=$1`, t.FlightID).Scan(&serial); err != nil {
		return nil, mapPGError(err)
	}

	// Claim one free seat of the right class. SKIP LOCKED makes concurrent
	// check-ins for the same flight pick disjoint candidates instead of
	// queueing on (or double-assigning) the same seat.
	var seat string
	err = tx.QueryRow(ctx, `
		SELECT a.lugar
		FROM assento a
		WHERE a.no_serie = $1
		  AND a.prim_classe = $2
		  AND NOT EXISTS (
			SELECT 1 FROM bilhete b
			WHERE b.voo_id = $3 AND b.no_serie = a.no_serie AND b.lugar = a.lugar
		  )
		LIMIT 1
		FOR UPDATE OF a SKIP LOCKED`, serial, t.FirstClass, t.FlightID).Scan(&seat)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNoSeatAvailable
		}
		return nil, mapPGError(err)
	}

	_, err = tx.Exec(ctx, `UPDATE bilhete SET lugar=$1, no_serie=$2 WHERE id=$3`, seat, serial, ticketID)
	if err != nil {
		return nil, mapPGError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapPGError(err)
	}

	t.SeatLabel = &seat
	t.SerialNumber = &serial
	return t, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.FlightID, &t.ReservationCode, &t.PassengerName, &t.PriceCents, &t.FirstClass, &t.SeatLabel, &t.SerialNumber)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
