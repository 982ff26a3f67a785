package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pduarte/aviacao/internal/domain"
)

type FlightRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// DeparturesWithin lists flights leaving origin between now and
	// now+window, ordered by departure time.
	DeparturesWithin(ctx context.Context, origin string, window time.Duration) ([]domain.Flight, error)
	// NextAvailable lists the soonest future flights between the two
	// airports that still have at least one unreserved seat.
	NextAvailable(ctx context.Context, origin, destination string, limit int) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, no_serie, hora_partida, hora_chegada, partida, chegada`

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM voo WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.SerialNumber, &f.Departure, &f.Arrival, &f.Origin, &f.Destination); err != nil {
		return nil, mapPGError(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) DeparturesWithin(ctx context.Context, origin string, window time.Duration) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+flightColumns+`
		FROM voo
		WHERE partida = $1
		  AND hora_partida >= now()
		  AND hora_partida <= now() + make_interval(secs => $2)
		ORDER BY hora_partida`, origin, window.Seconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFlights(rows)
}

func (r *PGFlightRepository) NextAvailable(ctx context.Context, origin, destination string, limit int) ([]domain.Flight, error) {
	// A flight qualifies when at least one seat of either class has no
	// ticket holding it on this flight.
	rows, err := r.db.Query(ctx, `
		SELECT v.id, v.no_serie, v.hora_partida, v.hora_chegada, v.partida, v.chegada
		FROM voo v
		WHERE v.partida = $1
		  AND v.chegada = $2
		  AND v.hora_partida > now()
		  AND EXISTS (
			SELECT 1
			FROM assento a
			LEFT JOIN bilhete b
			  ON b.voo_id = v.id AND b.no_serie = a.no_serie AND b.lugar = a.lugar
			WHERE a.no_serie = v.no_serie AND b.id IS NULL
		  )
		ORDER BY v.hora_partida
		LIMIT $3`, origin, destination, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFlights(rows)
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.SerialNumber, &f.Departure, &f.Arrival, &f.Origin, &f.Destination); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
