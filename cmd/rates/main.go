package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rateshttp "cbr-rates/internal/api/http/rates"
	"cbr-rates/internal/clients/cbr"
	"cbr-rates/internal/metrics"
	"cbr-rates/internal/models"
	"cbr-rates/internal/repository/migrations"
	"cbr-rates/internal/repository/postgresql"
	"cbr-rates/internal/service/logger"
	ratessvc "cbr-rates/internal/service/rates"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return fmt.Errorf("load location %s: %w", cfg.Location, err)
	}

	// DB
	dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDB()

	pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// storage + migrations
	storage := postgresql.NewRateStorage(pool)
	migrator := migrations.New(pool)
	if err := migrator.Setup(dbCtx); err != nil {
		return fmt.Errorf("ensure tables: %w", err)
	}

	// metrics + upstream client + resolver
	m := metrics.NewMetrics()
	client := cbr.New(cfg.CurrencyRateSource, m)
	resolver := ratessvc.New(storage, client)

	// request audit logger
	reqLogStorage := postgresql.NewRequestLogStorage(pool)
	reqLogger := logger.New(reqLogStorage)

	// HTTP surface
	handler := rateshttp.New(resolver, reqLogger, loc)
	router := mux.NewRouter()
	router.Use(m.Middleware)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	handler.Register(router)

	// cron: keep the current day warm so the first morning request
	// doesn't pay for the upstream round trip
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	g, gctx := errgroup.WithContext(ctx)

	_, err = scheduler.AddFunc(cfg.CronSpec, func() {
		if rates, err := resolver.GetRatesForDate(gctx, models.Today(loc)); err != nil {
			log.Printf("scheduled prefetch failed: %v", err)
		} else {
			log.Printf("rates resolved: date=%s currencies=%d", models.Today(loc), len(rates))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron func: %w", err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, router)
	})

	log.Println("Running. Stop with Ctrl+C / SIGTERM.")
	return g.Wait()
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
