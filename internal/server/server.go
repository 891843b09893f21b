package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"parkreg/internal/auth"
	"parkreg/internal/config"
	"parkreg/internal/logger"
	"parkreg/internal/operator"
	"parkreg/internal/parking"
	"parkreg/internal/pricing"
	"parkreg/internal/report"
	"parkreg/internal/subscription"
	"parkreg/internal/ticket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Operators     *operator.Handler
	Parking       *parking.Handler
	Subscriptions *subscription.Handler
	Reports       *report.Handler
	Sessions      sessions.Store
	DB            Pinger
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

// New wires stores, services and handlers. cache may be nil.
func New(db *sqlx.DB, cache redis.Cmdable, cfg *config.Config) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	rates := pricing.RateTable{
		pricing.Car:        {FirstHour: cfg.CarFirstHour, HalfHour: cfg.CarHalfHour},
		pricing.Motorcycle: {FirstHour: cfg.MotorcycleFirstHour, HalfHour: cfg.MotorcycleHalfHour},
	}
	store := auth.NewSessionStore(cfg.SessionSecret, cfg.Env == "prod")

	operatorRepo := operator.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	parkingRepo := parking.NewRepository(db)
	reportRepo := report.NewRepository(db)

	tickets := ticket.NewService(cache, cfg.TicketTTL)

	parkingService := parking.NewService(
		parkingRepo,
		subscriptionRepo,
		pricing.NewCalculator(rates),
		tickets,
		time.Now,
	)
	syncOpenSessions(parkingService)

	h := Handlers{
		Operators:     operator.NewHandler(operator.NewService(operatorRepo, cfg.JWTSecret), store),
		Parking:       parking.NewHandler(parkingService),
		Subscriptions: subscription.NewHandler(subscription.NewService(subscriptionRepo, loc, time.Now)),
		Reports:       report.NewHandler(report.NewService(reportRepo, loc), loc, time.Now),
		Sessions:      store,
		DB:            db,
	}

	router, err := NewRouter(cfg, h)
	if err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	logger.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// syncOpenSessions seeds the open sessions gauge with the vehicles already
// inside; entries and exits keep it current afterwards.
func syncOpenSessions(svc parking.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := svc.ListOpen(ctx); err != nil {
		logger.WithError(err).Warn("failed to load open sessions for metrics")
	}
}
