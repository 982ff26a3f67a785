package email

import (
	"context"
	"fmt"

	"github.com/pduarte/aviacao/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	for _, t := range event.Tickets {
		seat := "-"
		if t.SeatLabel != nil {
			seat = *t.SeatLabel
		}
		fmt.Printf("notify %s: %s reservation %d flight %d seat %s\n",
			t.PassengerName, event.Type, event.ReservationCode, event.FlightID, seat)
	}
	return nil
}
