// Package api exposes the booking HTTP surface: airport and flight
// listings, ticket sales and check-in.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/service/checkin"
	"github.com/pduarte/aviacao/internal/service/flights"
	"github.com/pduarte/aviacao/internal/service/sales"
)

type Dependencies struct {
	Flights flights.FlightUseCase
	Sales   sales.SaleUseCase
	CheckIn checkin.CheckInUseCase

	// Limiter guards the mutating endpoints; nil disables rate limiting.
	Limiter            Limiter
	RateLimitPerSecond int
}

func Register(router *gin.Engine, deps Dependencies) {
	flightHandler := NewFlightHandler(deps.Flights)
	saleHandler := NewSaleHandler(deps.Sales)
	checkInHandler := NewCheckInHandler(deps.CheckIn)

	router.GET("/ping", ping)
	router.GET("/", flightHandler.listAirports)
	router.GET("/voos/:partida", flightHandler.departures)
	router.GET("/voos/:partida/:chegada", flightHandler.nextAvailable)

	limited := router.Group("/", RateLimit(deps.Limiter, deps.RateLimitPerSecond))
	limited.POST("/compra/:voo", saleHandler.create)
	limited.PUT("/checkin/:bilhete", checkInHandler.checkIn)
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
