package pricing

import (
	"context"
	"math/rand"

	"github.com/pduarte/aviacao/internal/repository"
)

// FareCalculator prices one ticket for a flight. Implementations are
// interchangeable; prices are cents and need not be reproducible between
// calls.
type FareCalculator interface {
	Price(ctx context.Context, flightID int64, firstClass bool) (int64, error)
}

// TableFareCalculator looks the fare up in a static route-pair table and
// falls back to a default when the route is not listed. This is the wired
// default policy.
type TableFareCalculator struct {
	flights              repository.FlightRepository
	routes               map[Route]int64
	fallbackCents        int64
	firstClassMultiplier int64
}

type Route struct {
	Origin      string
	Destination string
}

func NewTableFareCalculator(flights repository.FlightRepository, routes map[Route]int64, fallbackCents int64) *TableFareCalculator {
	return &TableFareCalculator{
		flights:              flights,
		routes:               routes,
		fallbackCents:        fallbackCents,
		firstClassMultiplier: 3,
	}
}

func (c *TableFareCalculator) Price(ctx context.Context, flightID int64, firstClass bool) (int64, error) {
	flight, err := c.flights.GetByID(ctx, flightID)
	if err != nil {
		return 0, err
	}

	price, ok := c.routes[Route{Origin: flight.Origin, Destination: flight.Destination}]
	if !ok {
		price = c.fallbackCents
	}
	if firstClass {
		price *= c.firstClassMultiplier
	}
	return price, nil
}

// DefaultRoutes is the built-in fare table for the routes the network
// actually flies; everything else prices at the configured fallback.
func DefaultRoutes() map[Route]int64 {
	outbound := map[Route]int64{
		{"LIS", "OPO"}: 6_000,
		{"LIS", "FAO"}: 5_500,
		{"LIS", "MAD"}: 8_000,
		{"LIS", "CDG"}: 14_000,
		{"LIS", "LHR"}: 15_000,
		{"OPO", "MAD"}: 7_500,
		{"OPO", "CDG"}: 13_500,
		{"FAO", "LHR"}: 16_000,
		{"MAD", "BCN"}: 7_000,
		{"CDG", "AMS"}: 6_500,
	}

	// Fares are symmetric per pair.
	fares := make(map[Route]int64, 2*len(outbound))
	for r, cents := range outbound {
		fares[r] = cents
		fares[Route{Origin: r.Destination, Destination: r.Origin}] = cents
	}
	return fares
}

// RandomFareCalculator draws the fare from a fixed range per class. Kept as
// an alternative strategy for environments without fare data.
type RandomFareCalculator struct {
	flights repository.FlightRepository

	RegularMinCents int64
	RegularMaxCents int64
	FirstMinCents   int64
	FirstMaxCents   int64
}

func NewRandomFareCalculator(flights repository.FlightRepository) *RandomFareCalculator {
	return &RandomFareCalculator{
		flights:         flights,
		RegularMinCents: 5_000,
		RegularMaxCents: 30_000,
		FirstMinCents:   20_000,
		FirstMaxCents:   90_000,
	}
}

func (c *RandomFareCalculator) Price(ctx context.Context, flightID int64, firstClass bool) (int64, error) {
	if _, err := c.flights.GetByID(ctx, flightID); err != nil {
		return 0, err
	}

	lo, hi := c.RegularMinCents, c.RegularMaxCents
	if firstClass {
		lo, hi = c.FirstMinCents, c.FirstMaxCents
	}
	return lo + rand.Int63n(hi-lo+1), nil
}

var (
	_ FareCalculator = (*TableFareCalculator)(nil)
	_ FareCalculator = (*RandomFareCalculator)(nil)
)
