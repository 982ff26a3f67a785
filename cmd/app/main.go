package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pduarte/aviacao/api"
	"github.com/pduarte/aviacao/config"
	"github.com/pduarte/aviacao/internal/bootstrap"
	"github.com/pduarte/aviacao/internal/cache"
	"github.com/pduarte/aviacao/internal/kafka"
	"github.com/pduarte/aviacao/internal/repository"
	"github.com/pduarte/aviacao/internal/service/checkin"
	"github.com/pduarte/aviacao/internal/service/flights"
	"github.com/pduarte/aviacao/internal/service/pricing"
	"github.com/pduarte/aviacao/internal/service/sales"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.AirportsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	fares := pricing.NewTableFareCalculator(flightRepo, pricing.DefaultRoutes(), cfg.Booking.FallbackFareCents)

	flightService := flights.NewFlightService(flightRepo, airportRepo, redisCache)
	saleService := sales.NewSaleService(saleRepo, fares, producer,
		sales.WithSalesTopic(cfg.Kafka.SalesTopic))
	checkInService := checkin.NewCheckInService(ticketRepo, producer,
		checkin.WithCheckInTopic(cfg.Kafka.NotificationsTopic))

	deps := api.Dependencies{
		Flights:            flightService,
		Sales:              saleService,
		CheckIn:            checkInService,
		Limiter:            redisCache,
		RateLimitPerSecond: cfg.Booking.RateLimitPerSecond,
	}

	if err := bootstrap.Run(ctx, cfg, deps); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
