package checkin

import (
	"context"
	"log"

	"github.com/pduarte/aviacao/internal/domain"
	"github.com/pduarte/aviacao/internal/kafka"
	"github.com/pduarte/aviacao/internal/repository"
)

type CheckInUseCase interface {
	// CheckIn assigns one available seat of the ticket's class and returns
	// its label. A ticket that already holds a seat is rejected with
	// ErrAlreadyCheckedIn, never silently re-confirmed.
	CheckIn(ctx context.Context, ticketID int64) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CheckInService struct {
	tickets  repository.TicketRepository
	producer Producer
	topic    string
}

type CheckInServiceOption func(*CheckInService)

func WithCheckInTopic(topic string) CheckInServiceOption {
	return func(s *CheckInService) {
		s.topic = topic
	}
}

func NewCheckInService(tickets repository.TicketRepository, producer Producer, opts ...CheckInServiceOption) *CheckInService {
	service := &CheckInService{
		tickets:  tickets,
		producer: producer,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *CheckInService) CheckIn(ctx context.Context, ticketID int64) (string, error) {
	// Selection, exclusivity and the seat/class/aircraft guards all live in
	// the repository transaction.
	ticket, err := s.tickets.AssignSeat(ctx, ticketID)
	if err != nil {
		return "", err
	}

	if err := s.publish(ctx, ticket); err != nil {
		log.Printf("publish ticket_checked_in for ticket %d: %v", ticket.ID, err)
	}
	return *ticket.SeatLabel, nil
}

func (s *CheckInService) publish(ctx context.Context, ticket *domain.Ticket) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	event := kafka.NewTicketCheckedIn(ticket)
	return s.producer.Publish(ctx, s.topic, event.Key, event)
}

var _ CheckInUseCase = (*CheckInService)(nil)
