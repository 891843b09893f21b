package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"parkreg/internal/auth"
	"parkreg/internal/config"
	"parkreg/internal/db"
	"parkreg/internal/logger"
	"parkreg/internal/operator"
	"parkreg/internal/subscription"
)

// seed creates the default operators and, optionally, two sample monthly
// subscriptions. Existing rows are left alone so it can be run repeatedly.
func main() {
	password := flag.String("password", "1234", "password for every seeded operator")
	withSubs := flag.Bool("subscriptions", true, "also create sample monthly subscriptions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("Invalid timezone: %v", err)
	}

	ctx := context.Background()

	operators := operator.NewService(operator.NewRepository(database), cfg.JWTSecret)
	for _, req := range defaultOperators(*password) {
		op, err := operators.Create(ctx, req)
		switch {
		case errors.Is(err, operator.ErrUsernameExists):
			logger.Info("Operator already exists", "username", req.Username)
		case err != nil:
			logger.Fatal("Failed to create operator", "username", req.Username, "error", err)
		default:
			logger.Info("Operator created", "username", op.Username, "role", op.Role)
		}
	}

	if !*withSubs {
		return
	}

	subs := subscription.NewService(subscription.NewRepository(database), loc, time.Now)
	for _, req := range sampleSubscriptions(time.Now().In(loc)) {
		sub, err := subs.Add(ctx, req)
		switch {
		case errors.Is(err, subscription.ErrDuplicateSubscription):
			logger.Info("Subscription already exists", "plate", req.Plate)
		case err != nil:
			logger.Fatal("Failed to create subscription", "plate", req.Plate, "error", err)
		default:
			logger.Info("Subscription created", "plate", sub.Plate, "expires", sub.ExpirationDate)
		}
	}
}

func defaultOperators(password string) []operator.CreateRequest {
	return []operator.CreateRequest{
		{Username: "admin", Name: "Administrador", Password: password, Role: auth.RoleAdmin},
		{Username: "operador1", Name: "Juan Pérez", Password: password},
		{Username: "operador2", Name: "María García", Password: password},
		{Username: "operador3", Name: "Carlos López", Password: password},
		{Username: "operador4", Name: "Ana Martínez", Password: password},
	}
}

func sampleSubscriptions(now time.Time) []subscription.AddRequest {
	return []subscription.AddRequest{
		{
			Plate:          "ABC123",
			VehicleType:    "car",
			Model:          "Toyota Corolla 2020",
			Phone:          "3815551234",
			ExpirationDate: now.AddDate(0, 0, 30).Format(subscription.DateLayout),
		},
		{
			Plate:          "XYZ789",
			VehicleType:    "motorcycle",
			Model:          "Honda CG 150",
			Phone:          "3815555678",
			ExpirationDate: now.AddDate(0, 0, 15).Format(subscription.DateLayout),
		},
	}
}
