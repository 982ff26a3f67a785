package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type airportResponse struct {
	Nome   string `json:"nome"`
	Cidade string `json:"cidade"`
}

type departureResponse struct {
	NoSerie     string `json:"no_serie"`
	HoraPartida string `json:"hora_partida"`
	Chegada     string `json:"chegada"`
}

type availableFlightResponse struct {
	NoSerie     string `json:"no_serie"`
	HoraPartida string `json:"hora_partida"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		resp = append(resp, airportResponse{Nome: a.Name, Cidade: a.City})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) departures(c *gin.Context) {
	origin := c.Param("partida")

	list, err := h.service.Departures(c.Request.Context(), origin)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]departureResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, departureResponse{
			NoSerie:     f.SerialNumber,
			HoraPartida: f.Departure.Format(time.RFC3339),
			Chegada:     f.Destination,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) nextAvailable(c *gin.Context) {
	origin := c.Param("partida")
	destination := c.Param("chegada")

	list, err := h.service.NextAvailable(c.Request.Context(), origin, destination)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]availableFlightResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, availableFlightResponse{
			NoSerie:     f.SerialNumber,
			HoraPartida: f.Departure.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}
