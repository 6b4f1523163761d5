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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"safecheck/internal/checkin/assembly"
	"safecheck/internal/checkin/form"
	"safecheck/internal/checkin/location"
	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/photo"
	"safecheck/internal/checkin/presentation"
	"safecheck/internal/console"
	"safecheck/internal/device/sim"
	"safecheck/internal/platform/config"
	"safecheck/internal/platform/httpserver"
	"safecheck/internal/platform/logger"
)

// main wires the simulated devices into the check-in core and runs the
// terminal host, plus the ops server when an address is configured.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("safecheck exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	locationService := &sim.Location{
		Permission: cfg.Device.LocationPermission,
		Position: models.Position{
			Latitude:  cfg.Device.Latitude,
			Longitude: cfg.Device.Longitude,
			Accuracy:  cfg.Device.Accuracy,
		},
		Address: cfg.Device.Address,
	}
	camera := &sim.Camera{
		Permission: cfg.Device.CameraPermission,
		Dir:        cfg.Device.PhotoDir,
	}
	alerter := &console.Alerter{Out: os.Stdout}
	assembler := assembly.New(assembly.WithLogger(log), assembly.WithMetrics(m))

	newForm := func() (*form.Form, error) {
		locator, err := location.New(locationService, location.WithLogger(log), location.WithMetrics(m))
		if err != nil {
			return nil, err
		}
		capturer, err := photo.New(camera, alerter, photo.WithLogger(log), photo.WithMetrics(m))
		if err != nil {
			return nil, err
		}
		return form.New(locator, capturer, assembler, form.WithLogger(log))
	}

	app, err := console.New(os.Stdin, os.Stdout, newForm,
		presentation.NewRenderer(cfg.Locale, cfg.TimeZone),
		&console.ShareSheet{Out: os.Stdout}, alerter,
		console.WithLogger(log), console.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	appCtx, cancelApp := context.WithCancel(gctx)
	defer cancelApp()

	g.Go(func() error {
		defer cancelApp()
		return app.Run(appCtx)
	})

	if cfg.OpsAddr != "" {
		srv := httpserver.New(cfg.OpsAddr, httpserver.NewOpsRouter(reg))
		g.Go(func() error {
			log.Info("ops server listening", "addr", cfg.OpsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-appCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
