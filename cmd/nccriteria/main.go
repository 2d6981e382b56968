// Command nccriteria classifies a measured octave-band noise spectrum
// against the Beranek NC curves.
//
// Usage:
//
//	nccriteria              interactive input; writes a timestamped CSV and chart
//	nccriteria file.csv     classify a saved measurement; writes a chart next to it
//	nccriteria -serve       expose the classifier as an HTTP API
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acoustiq/nccriteria/internal/api"
	"github.com/acoustiq/nccriteria/internal/chart"
	"github.com/acoustiq/nccriteria/internal/config"
	"github.com/acoustiq/nccriteria/internal/dataio"
	"github.com/acoustiq/nccriteria/internal/input"
	"github.com/acoustiq/nccriteria/internal/report"
	"github.com/acoustiq/nccriteria/pkg/models"
	"github.com/acoustiq/nccriteria/pkg/nc"
)

const version = "1.0.0"

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	serve := flag.Bool("serve", false, "run the HTTP classification API instead of the one-shot CLI")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *serve {
		runServer(cfg)
		return
	}

	if err := run(cfg, flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("Classification failed")
	}
}

// run executes one classification end-to-end: obtain a measurement,
// classify it, print the comparison table, and write the chart. Every
// precondition violation is fatal; this is a single-shot tool.
func run(cfg *config.Config, path string) error {
	var (
		levels []float64
		base   string
		err    error
	)

	if path != "" {
		log.Info().Str("file", path).Msg("Loading measurement")
		levels, err = dataio.Load(path)
		if err != nil {
			return err
		}
		base = strings.TrimSuffix(path, filepath.Ext(path))
	} else {
		reader := input.New(os.Stdin, os.Stdout)
		reader.LegacyDropNegative = cfg.Input.LegacyDropNegative
		levels, err = reader.ReadLevels()
		if err != nil {
			return err
		}
		base = filepath.Join(cfg.Output.Dir, dataio.TimestampBase(time.Now()))
		if err := dataio.Save(base+".csv", levels); err != nil {
			return err
		}
		log.Info().Str("file", base+".csv").Msg("Measurement saved")
	}

	result, err := nc.Classify(levels)
	if err != nil {
		return err
	}
	report.Write(os.Stdout, levels, result)

	builder := chart.New(
		chart.WithSize(cfg.Chart.WidthInches, cfg.Chart.HeightInches),
		chart.WithDPI(cfg.Chart.DPI),
	)
	if err := builder.WritePNG(base+".png", levels); err != nil {
		return err
	}
	log.Info().Str("file", base+".png").Str("ncLevel", result.Level).Msg("Chart written")
	return nil
}

// runServer exposes the classifier over HTTP until interrupted.
func runServer(cfg *config.Config) {
	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("NC Criteria API", version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting NC criteria API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
