package flights

import (
	"context"
	"time"

	"github.com/pduarte/aviacao/internal/domain"
	"github.com/pduarte/aviacao/internal/repository"
)

// departureWindow bounds the "/voos/:partida" listing.
const departureWindow = 12 * time.Hour

// nextAvailableLimit caps the "/voos/:partida/:chegada" listing.
const nextAvailableLimit = 3

type FlightUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	Departures(ctx context.Context, origin string) ([]domain.Flight, error)
	NextAvailable(ctx context.Context, origin, destination string) ([]domain.Flight, error)
}

type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

type FlightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	cache    Cache
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, cache Cache) *FlightService {
	return &FlightService{flights: flights, airports: airports, cache: cache}
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

// Departures lists flights leaving origin in the next 12 hours, soonest
// first. Unknown airport codes report ErrNotFound.
func (s *FlightService) Departures(ctx context.Context, origin string) ([]domain.Flight, error) {
	if _, err := s.airports.GetByCode(ctx, origin); err != nil {
		return nil, err
	}
	return s.flights.DeparturesWithin(ctx, origin, departureWindow)
}

// NextAvailable lists up to three soonest future flights between the two
// airports that still have a free seat. Identical codes or two airports in
// the same city are rejected with ErrSameCity.
func (s *FlightService) NextAvailable(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	from, err := s.airports.GetByCode(ctx, origin)
	if err != nil {
		return nil, err
	}
	to, err := s.airports.GetByCode(ctx, destination)
	if err != nil {
		return nil, err
	}
	if from.Code == to.Code || from.City == to.City {
		return nil, domain.ErrSameCity
	}

	return s.flights.NextAvailable(ctx, origin, destination, nextAvailableLimit)
}

var _ FlightUseCase = (*FlightService)(nil)
