package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tillik/airlinewebservice/internal/auth"
	"github.com/tillik/airlinewebservice/internal/config"
	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/handlers"
	"github.com/tillik/airlinewebservice/internal/metrics"
	"github.com/tillik/airlinewebservice/internal/router"
	"github.com/tillik/airlinewebservice/internal/service"
	"github.com/tillik/airlinewebservice/internal/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Postgres.DSN())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	store := database.NewStore(pool)

	if err := auth.Seed(ctx, store, log, []auth.Account{
		{Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword, Role: auth.RoleAdmin},
		{Email: cfg.Seed.CustomerEmail, Password: cfg.Seed.CustomerPassword, Role: auth.RoleCustomer},
	}); err != nil {
		log.Fatal("failed to seed accounts", zap.Error(err))
	}

	hub := websocket.NewHub(log)
	go hub.Run()

	m := metrics.New(prometheus.DefaultRegisterer)
	bookingService := service.NewBookingService(store, log, m, hub)
	h := handlers.NewHandler(bookingService)

	sessions := auth.NewSessions(time.Duration(cfg.Session.TTLHours) * time.Hour)
	authHandler := auth.NewHandler(store, sessions, log)
	authMW := auth.NewMiddleware(sessions)

	r := router.SetupRouter(h, authHandler, authMW, hub)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
