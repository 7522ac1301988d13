package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"reservations/internal/config"
	"reservations/internal/fixtures"
	"reservations/internal/graph"
	"reservations/internal/http-server/handlers/graphQL"
	"reservations/internal/http-server/handlers/home"
	"reservations/internal/http-server/handlers/reservation/createReservation"
	"reservations/internal/http-server/handlers/reservation/getAllReservations"
	"reservations/internal/http-server/handlers/reservation/getReservation"
	"reservations/internal/http-server/middleware/cors"
	"reservations/internal/http-server/middleware/mwlogger"
	"reservations/internal/lib/logger/handlers/slogpretty"
	"reservations/internal/lib/logger/sl"
	"reservations/internal/metrics"
	"reservations/internal/storage/memory"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting reservations", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	seed, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		log.Error("failed to load fixtures", sl.Err(err))
		os.Exit(1)
	}

	storage := memory.New(seed)

	log.Info("booking store seeded", slog.Int("count", storage.Len()))

	metrics.Register()

	router, err := newRouter(log, cfg, storage)
	if err != nil {
		log.Error("failed to build router", sl.Err(err))
		os.Exit(1)
	}

	log.Info("starting server",
		slog.String("address", cfg.HTTPServer.Address),
		slog.Bool("graphiql", cfg.GraphiQLEnabled()),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func newRouter(log *slog.Logger, cfg *config.Config, storage *memory.Storage) (http.Handler, error) {
	schema, err := graph.NewSchema(log, storage)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.New())

	router.Get("/", home.New())

	router.Get("/reservations", getAllReservations.New(log, storage))
	router.Get("/reservations/{id}", getReservation.New(log, storage))
	router.Post("/reservation", createReservation.New(log, storage))

	router.Handle(cfg.GraphQL.Path, graphQL.New(log, schema, cfg.GraphiQLEnabled()))

	router.Handle("/metrics", promhttp.Handler())

	return router, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
