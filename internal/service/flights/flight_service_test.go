package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pduarte/aviacao/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) DeparturesWithin(ctx context.Context, origin string, window time.Duration) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) NextAvailable(ctx context.Context, origin, destination string, limit int) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

func sampleAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "LIS", Name: "Humberto Delgado", City: "Lisboa", Country: "Portugal"},
		{Code: "OPO", Name: "Francisco Sá Carneiro", City: "Porto", Country: "Portugal"},
	}
}

func TestFlightService_ListAirports_CacheHit(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(&MockFlightRepository{}, mockAirports, mockCache)
	ctx := context.Background()

	mockCache.On("GetAirports", ctx).Return(sampleAirports(), nil).Once()

	airports, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Len(t, airports, 2)
	mockAirports.AssertNotCalled(t, "List")
}

func TestFlightService_ListAirports_CacheMissFillsCache(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(&MockFlightRepository{}, mockAirports, mockCache)
	ctx := context.Background()

	mockCache.On("GetAirports", ctx).Return(nil, nil).Once()
	mockAirports.On("List", ctx).Return(sampleAirports(), nil).Once()
	mockCache.On("SetAirports", ctx, sampleAirports()).Return(nil).Once()

	airports, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Equal(t, sampleAirports(), airports)
	mockCache.AssertExpectations(t)
}

func TestFlightService_ListAirports_CacheFailureFallsThrough(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(&MockFlightRepository{}, mockAirports, mockCache)
	ctx := context.Background()

	mockCache.On("GetAirports", ctx).Return(nil, errors.New("redis down")).Once()
	mockAirports.On("List", ctx).Return(sampleAirports(), nil).Once()
	mockCache.On("SetAirports", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	airports, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Len(t, airports, 2)
}

func TestFlightService_ListAirports_NoCache(t *testing.T) {
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(&MockFlightRepository{}, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("List", ctx).Return(sampleAirports(), nil).Once()

	airports, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Len(t, airports, 2)
}

func TestFlightService_Departures(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(mockFlights, mockAirports, nil)
	ctx := context.Background()

	lisbon := &domain.Airport{Code: "LIS", City: "Lisboa"}
	departures := []domain.Flight{
		{ID: 1, Origin: "LIS", Destination: "OPO", SerialNumber: "A320-001"},
		{ID: 2, Origin: "LIS", Destination: "MAD", SerialNumber: "B737-002"},
	}

	mockAirports.On("GetByCode", ctx, "LIS").Return(lisbon, nil).Once()
	mockFlights.On("DeparturesWithin", ctx, "LIS", 12*time.Hour).Return(departures, nil).Once()

	flights, err := service.Departures(ctx, "LIS")

	assert.NoError(t, err)
	assert.Equal(t, departures, flights)
	mockFlights.AssertExpectations(t)
}

func TestFlightService_Departures_UnknownAirport(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(mockFlights, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "XXX").Return(nil, domain.ErrNotFound).Once()

	flights, err := service.Departures(ctx, "XXX")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, flights)
	mockFlights.AssertNotCalled(t, "DeparturesWithin")
}

func TestFlightService_NextAvailable(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(mockFlights, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "LIS").Return(&domain.Airport{Code: "LIS", City: "Lisboa"}, nil).Once()
	mockAirports.On("GetByCode", ctx, "OPO").Return(&domain.Airport{Code: "OPO", City: "Porto"}, nil).Once()

	available := []domain.Flight{{ID: 1, Origin: "LIS", Destination: "OPO"}}
	mockFlights.On("NextAvailable", ctx, "LIS", "OPO", 3).Return(available, nil).Once()

	flights, err := service.NextAvailable(ctx, "LIS", "OPO")

	assert.NoError(t, err)
	assert.Equal(t, available, flights)
}

func TestFlightService_NextAvailable_UnknownDestination(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(mockFlights, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "LIS").Return(&domain.Airport{Code: "LIS", City: "Lisboa"}, nil).Once()
	mockAirports.On("GetByCode", ctx, "XXX").Return(nil, domain.ErrNotFound).Once()

	flights, err := service.NextAvailable(ctx, "LIS", "XXX")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, flights)
	mockFlights.AssertNotCalled(t, "NextAvailable")
}

func TestFlightService_NextAvailable_SameCity(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}

	service := NewFlightService(mockFlights, mockAirports, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		from, to *domain.Airport
	}{
		{
			"identical codes",
			&domain.Airport{Code: "LIS", City: "Lisboa"},
			&domain.Airport{Code: "LIS", City: "Lisboa"},
		},
		{
			"two airports in one city",
			&domain.Airport{Code: "MXP", City: "Milano"},
			&domain.Airport{Code: "LIN", City: "Milano"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockAirports.On("GetByCode", ctx, tc.from.Code).Return(tc.from, nil).Once()
			mockAirports.On("GetByCode", ctx, tc.to.Code).Return(tc.to, nil).Once()

			flights, err := service.NextAvailable(ctx, tc.from.Code, tc.to.Code)

			assert.ErrorIs(t, err, domain.ErrSameCity)
			assert.Nil(t, flights)
		})
	}

	mockFlights.AssertNotCalled(t, "NextAvailable")
}
