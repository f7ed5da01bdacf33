package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"flight_alerts/internal/config"
	"flight_alerts/internal/handlers"
	"flight_alerts/internal/logger"
	"flight_alerts/internal/metrics"
	"flight_alerts/internal/pricing"
	"flight_alerts/internal/repository"
	"flight_alerts/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------- config ----------
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	// ---------- metrics ----------
	metrics.Register()

	// ---------- repositories ----------
	flightRepo := repository.NewFlightRepository()
	alertRepo := repository.NewAlertRepository()
	notifRepo := repository.NewNotificationRepository()

	// ---------- pricing client ----------
	var src rand.Source
	if cfg.RandSeed != 0 {
		src = rand.NewSource(cfg.RandSeed)
	}
	pricingClient := pricing.NewMockClient(cfg.SearchWindowDays, cfg.PricingDelay, src)

	// ---------- services ----------
	flightService := service.NewFlightService(flightRepo, pricingClient, log)
	alertService := service.NewAlertService(alertRepo, log)

	// ---------- alert sweep ----------
	sweep := service.NewAlertSweep(alertRepo, notifRepo, flightService, cfg.SweepInterval, log)
	sweep.Start(ctx)

	// ---------- handlers ----------
	fh := handlers.NewFlightHandler(flightService, log)
	ah := handlers.NewAlertHandler(alertService, notifRepo, log)

	// ---------- router ----------
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.HTTPMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	handlers.RegisterRoutes(r, fh, ah)

	// ---------- start server ----------
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("server starting", "addr", srv.Addr, "sweep_interval", cfg.SweepInterval.String())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err.Error())
	}
}
