package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pduarte/aviacao/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT codigo, nome, cidade, pais FROM aeroporto ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT codigo, nome, cidade, pais FROM aeroporto WHERE codigo=$1`, code)
	var a domain.Airport
	if err := row.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
		return nil, mapPGError(err)
	}
	return &a, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
