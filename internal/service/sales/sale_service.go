package sales

import (
	"context"
	"log"

	"github.com/pduarte/aviacao/internal/domain"
	"github.com/pduarte/aviacao/internal/kafka"
	"github.com/pduarte/aviacao/internal/repository"
	"github.com/pduarte/aviacao/internal/service/pricing"
)

type SaleUseCase interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*SaleResult, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateSaleInput struct {
	FlightID    int64
	CustomerNIF string
	// Counter is the airport code of the sales desk; nil means online sale.
	Counter *string
	Tickets []TicketRequest
}

type TicketRequest struct {
	PassengerName string
	FirstClass    bool
}

type SaleResult struct {
	ReservationCode int64
	TicketIDs       []int64
}

type SaleService struct {
	sales      repository.SaleRepository
	fares      pricing.FareCalculator
	producer   Producer
	salesTopic string
}

type SaleServiceOption func(*SaleService)

func WithSalesTopic(topic string) SaleServiceOption {
	return func(s *SaleService) {
		s.salesTopic = topic
	}
}

func NewSaleService(sales repository.SaleRepository, fares pricing.FareCalculator, producer Producer, opts ...SaleServiceOption) *SaleService {
	service := &SaleService{
		sales:    sales,
		fares:    fares,
		producer: producer,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *SaleService) CreateSale(ctx context.Context, input CreateSaleInput) (*SaleResult, error) {
	if input.CustomerNIF == "" || len(input.Tickets) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, t := range input.Tickets {
		if t.PassengerName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	sale := &domain.Sale{
		CustomerNIF: input.CustomerNIF,
		Counter:     input.Counter,
	}

	tickets := make([]*domain.Ticket, 0, len(input.Tickets))
	for _, req := range input.Tickets {
		price, err := s.fares.Price(ctx, input.FlightID, req.FirstClass)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &domain.Ticket{
			FlightID:      input.FlightID,
			PassengerName: req.PassengerName,
			PriceCents:    price,
			FirstClass:    req.FirstClass,
		})
	}

	// The repository owns the transaction: venda plus all bilhetes commit
	// together or not at all.
	if err := s.sales.CreateSale(ctx, sale, tickets); err != nil {
		return nil, err
	}

	result := &SaleResult{ReservationCode: sale.ReservationCode}
	for _, t := range tickets {
		result.TicketIDs = append(result.TicketIDs, t.ID)
	}

	if err := s.publish(ctx, sale, tickets); err != nil {
		log.Printf("publish sale_completed for reservation %d: %v", sale.ReservationCode, err)
	}
	return result, nil
}

func (s *SaleService) publish(ctx context.Context, sale *domain.Sale, tickets []*domain.Ticket) error {
	if s.producer == nil || s.salesTopic == "" {
		return nil
	}
	event := kafka.NewSaleCompleted(sale, tickets)
	return s.producer.Publish(ctx, s.salesTopic, event.Key, event)
}

var _ SaleUseCase = (*SaleService)(nil)
