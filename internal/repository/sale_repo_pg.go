package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pduarte/aviacao/internal/domain"
)

type SaleRepository interface {
	// CreateSale atomically records one sale and its tickets for a single
	// flight. On success it fills in the sale's reservation code and time
	// and every ticket's id; on any failure nothing is persisted.
	CreateSale(ctx context.Context, sale *domain.Sale, tickets []*domain.Ticket) error
}

type PGSaleRepository struct {
	db *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) SaleRepository {
	return &PGSaleRepository{db: db}
}

func (r *PGSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale, tickets []*domain.Ticket) error {
	if len(tickets) == 0 {
		return domain.ErrInvalidInput
	}
	flightID := tickets[0].FlightID

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock the flight row. Concurrent sales against the same flight
	// serialize here, so the capacity counts below cannot go stale between
	// check and insert.
	var f domain.Flight
	err = tx.QueryRow(ctx, `
		SELECT id, no_serie, hora_partida
		FROM voo
		WHERE id = $1
		FOR UPDATE`, flightID).Scan(&f.ID, &f.SerialNumber, &f.Departure)
	if err != nil {
		return mapPGError(err)
	}

	var departed bool
	if err := tx.QueryRow(ctx, `SELECT now() >= $1`, f.Departure).Scan(&departed); err != nil {
		return err
	}
	if departed {
		return domain.ErrSaleAfterDeparture
	}

	var wantFirst, wantRegular int64
	for _, t := range tickets {
		if t.FirstClass {
			wantFirst++
		} else {
			wantRegular++
		}
	}
	if err := r.checkCapacity(ctx, tx, &f, true, wantFirst); err != nil {
		return err
	}
	if err := r.checkCapacity(ctx, tx, &f, false, wantRegular); err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO venda (nif_cliente, balcao, hora)
		VALUES ($1, $2, now())
		RETURNING codigo_reserva, hora`, sale.CustomerNIF, sale.Counter).
		Scan(&sale.ReservationCode, &sale.Time)
	if err != nil {
		return mapPGError(err)
	}

	for _, t := range tickets {
		t.ReservationCode = sale.ReservationCode
		err = tx.QueryRow(ctx, `
			INSERT INTO bilhete (voo_id, codigo_reserva, nome_passageiro, preco, prim_classe, lugar, no_serie)
			VALUES ($1, $2, $3, $4, $5, NULL, NULL)
			RETURNING id`,
			t.FlightID, t.ReservationCode, t.PassengerName, t.PriceCents, t.FirstClass).
			Scan(&t.ID)
		if err != nil {
			return mapPGError(err)
		}
	}

	return mapPGError(tx.Commit(ctx))
}

func (r *PGSaleRepository) checkCapacity(ctx context.Context, tx pgx.Tx, f *domain.Flight, firstClass bool, requested int64) error {
	if requested == 0 {
		return nil
	}

	var sold, seats int64
	err := tx.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM bilhete WHERE voo_id = $1 AND prim_classe = $3),
			(SELECT COUNT(*) FROM assento WHERE no_serie = $2 AND prim_classe = $3)`,
		f.ID, f.SerialNumber, firstClass).Scan(&sold, &seats)
	if err != nil {
		return err
	}
	if sold+requested > seats {
		return domain.ErrCapacityExceeded
	}
	return nil
}

var _ SaleRepository = (*PGSaleRepository)(nil)
