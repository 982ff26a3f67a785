package kafka

import (
	"time"

	"github.com/google/uuid"
	"github.com/pduarte/aviacao/internal/domain"
)

const (
	EventSaleCompleted   = "sale_completed"
	EventTicketCheckedIn = "ticket_checked_in"
)

// TicketEvent is the payload published on the sales and notifications
// topics. Key is a fresh uuid per event so partitioning spreads load.
type TicketEvent struct {
	Key             string       `json:"-"`
	Type            string       `json:"type"`
	ReservationCode int64        `json:"codigo_reserva"`
	FlightID        int64        `json:"voo_id"`
	Tickets         []TicketInfo `json:"bilhetes"`
	OccurredAt      time.Time    `json:"occurred_at"`
}

type TicketInfo struct {
	ID            int64   `json:"id"`
	PassengerName string  `json:"nome_passageiro"`
	FirstClass    bool    `json:"prim_classe"`
	SeatLabel     *string `json:"lugar,omitempty"`
}

func NewSaleCompleted(sale *domain.Sale, tickets []*domain.Ticket) TicketEvent {
	event := TicketEvent{
		Key:             uuid.NewString(),
		Type:            EventSaleCompleted,
		ReservationCode: sale.ReservationCode,
		OccurredAt:      time.Now(),
	}
	for _, t := range tickets {
		event.FlightID = t.FlightID
		event.Tickets = append(event.Tickets, TicketInfo{
			ID:            t.ID,
			PassengerName: t.PassengerName,
			FirstClass:    t.FirstClass,
		})
	}
	return event
}

func NewTicketCheckedIn(ticket *domain.Ticket) TicketEvent {
	return TicketEvent{
		Key:             uuid.NewString(),
		Type:            EventTicketCheckedIn,
		ReservationCode: ticket.ReservationCode,
		FlightID:        ticket.FlightID,
		Tickets: []TicketInfo{{
			ID:            ticket.ID,
			PassengerName: ticket.PassengerName,
			FirstClass:    ticket.FirstClass,
			SeatLabel:     ticket.SeatLabel,
		}},
		OccurredAt: time.Now(),
	}
}
