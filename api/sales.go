package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/domain"
	"github.com/pduarte/aviacao/internal/service/sales"
)

type SaleHandler struct {
	service sales.SaleUseCase
}

type createSaleRequest struct {
	NIF      string          `json:"nif"`
	Balcao   *string         `json:"balcao"`
	Bilhetes []ticketRequest `json:"bilhetes"`
}

type ticketRequest struct {
	NomePassageiro string `json:"nome_passageiro"`
	PrimClasse     bool   `json:"prim_classe"`
}

type createSaleResponse struct {
	CodigoReserva int64   `json:"codigo_reserva"`
	BilheteIDs    []int64 `json:"bilhete_ids"`
}

func NewSaleHandler(service sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{service: service}
}

func (h *SaleHandler) create(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("voo"), 10, 64)
	if err != nil {
		respondError(c, domain.ErrInvalidInput)
		return
	}

	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidInput)
		return
	}

	input := sales.CreateSaleInput{
		FlightID:    flightID,
		CustomerNIF: req.NIF,
		Counter:     req.Balcao,
	}
	for _, t := range req.Bilhetes {
		input.Tickets = append(input.Tickets, sales.TicketRequest{
			PassengerName: t.NomePassageiro,
			FirstClass:    t.PrimClasse,
		})
	}

	result, err := h.service.CreateSale(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createSaleResponse{
		CodigoReserva: result.ReservationCode,
		BilheteIDs:    result.TicketIDs,
	})
}
