// Command godidbroadcast runs the Open Drone ID message scheduler for a
// tracked fleet of aircraft, exposing Prometheus metrics. On SIGHUP it
// re-reads the configuration file and applies its log level; other
// settings keep their startup values.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/openflightid/godid/internal/config"
	"github.com/openflightid/godid/internal/fleet"
	odidmetrics "github.com/openflightid/godid/internal/metrics"
	"github.com/openflightid/godid/internal/odid"
	appversion "github.com/openflightid/godid/internal/version"
)

// shutdownTimeout is the maximum time to wait for the metrics server to
// drain active connections during graceful shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to configuration file (YAML)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to load configuration",
			slog.String("error", err.Error()),
		)
		return 1
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(config.ParseLogLevel(cfg.Log.Level))
	logger := newLoggerWithLevel(cfg.Log, logLevel)

	logger.Info("godidbroadcast starting",
		slog.String("version", appversion.Version),
		slog.String("metrics_addr", cfg.Metrics.Addr),
		slog.String("ring", cfg.Scheduler.Ring),
	)

	reg := prometheus.NewRegistry()
	collector := odidmetrics.NewCollector(reg)

	tracker := fleet.New(cfg.Fleet.TTL, cfg.Fleet.CleanupInterval, logger)

	if err := runServers(cfg, tracker, collector, reg, logger, *configPath, logLevel); err != nil {
		logger.Error("godidbroadcast exited with error", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("godidbroadcast stopped")
	return 0
}

// runServers wires the ingest reader, per-aircraft schedulers, metrics
// HTTP server, and SIGHUP reload goroutine under one errgroup with a
// signal-aware context.
func runServers(
	cfg *config.Config,
	tracker *fleet.Tracker,
	collector *odidmetrics.Collector,
	reg *prometheus.Registry,
	logger *slog.Logger,
	configPath string,
	logLevel *slog.LevelVar,
) error {
	metricsSrv := newMetricsServer(cfg.Metrics, reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return readIngestLines(gCtx, os.Stdin, tracker, collector, logger)
	})

	g.Go(func() error {
		return runFleetTicker(gCtx, cfg, tracker, collector, logger)
	})

	g.Go(func() error {
		logger.Info("metrics server listening", slog.String("addr", cfg.Metrics.Addr), slog.String("path", cfg.Metrics.Path))
		return listenAndServe(gCtx, metricsSrv, cfg.Metrics.Addr)
	})

	sigHUP := make(chan os.Signal, 1)
	signal.Notify(sigHUP, syscall.SIGHUP)
	g.Go(func() error {
		defer signal.Stop(sigHUP)
		handleSIGHUP(gCtx, sigHUP, configPath, logLevel, logger)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return gracefulShutdown(metricsSrv, logger)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run servers: %w", err)
	}
	return nil
}

// readIngestLines reads "<key> <hex-message>" lines from r and ingests
// each into the fleet, recording decode outcomes in collector.
func readIngestLines(ctx context.Context, r *os.File, tracker *fleet.Tracker, collector *odidmetrics.Collector, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, raw, ok := strings.Cut(line, " ")
		if !ok {
			logger.Warn("malformed ingest line, want '<key> <hex>'", slog.String("line", line))
			continue
		}

		decoded, err := hex.DecodeString(strings.TrimSpace(raw))
		if err != nil || len(decoded) != odid.MessageSize {
			collector.IncAdapterErrors("unknown")
			logger.Warn("invalid hex payload", slog.String("key", key), slog.String("error", fmt.Sprint(err)))
			continue
		}
		var buf [odid.MessageSize]byte
		copy(buf[:], decoded)

		start := time.Now()
		msgType, err := tracker.Ingest(key, buf)
		collector.ObserveDecodeLatency(time.Since(start))
		if err != nil {
			collector.IncDecodeErrors(msgType.String(), decodeErrorReason(err))
			logger.Warn("ingest failed", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		collector.IncMessagesDecoded(msgType.String())
	}
	return scanner.Err()
}

// decodeErrorReason classifies a decode/ingest failure into a coarse,
// low-cardinality reason label for metrics.
func decodeErrorReason(err error) string {
	switch {
	case errors.Is(err, odid.ErrUnknownMessageType):
		return "unknown_type"
	case errors.Is(err, odid.ErrInvalidEnum):
		return "invalid_enum"
	case errors.Is(err, odid.ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, odid.ErrInvalidPage):
		return "invalid_page"
	case errors.Is(err, odid.ErrNoFreeSlot):
		return "no_free_slot"
	case errors.Is(err, odid.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "other"
	}
}

// runFleetTicker advances a scheduler per tracked aircraft on the
// configured cadence, logging the resulting wire frame at debug level.
func runFleetTicker(ctx context.Context, cfg *config.Config, tracker *fleet.Tracker, collector *odidmetrics.Collector, logger *slog.Logger) error {
	sequence, err := cfg.Scheduler.Sequence()
	if err != nil {
		return fmt.Errorf("resolve scheduler sequence: %w", err)
	}
	ring := odid.BuildRing(sequence)

	ticker := time.NewTicker(cfg.Scheduler.TickInterval)
	defer ticker.Stop()

	schedulers := map[string]*odid.Scheduler{}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			collector.SetFleetSize(tracker.Len())
			validByType := map[odid.MessageType]float64{}
			for key, data := range tracker.Snapshot() {
				sch, ok := schedulers[key]
				if !ok {
					sch, err = odid.NewScheduler(ring, data)
					if err != nil {
						logger.Error("create scheduler", slog.String("key", key), slog.String("error", err.Error()))
						continue
					}
					schedulers[key] = sch
				}

				var out [odid.MessageSize]byte
				before := out
				if err := sch.Tick(&out); err != nil {
					logger.Error("scheduler tick", slog.String("key", key), slog.String("error", err.Error()))
					continue
				}
				skipped := out == before
				collector.RecordTick(skipped)
				if !skipped {
					logger.Debug("scheduler frame", slog.String("key", key), slog.String("frame", hex.EncodeToString(out[:])))
				}

				messages, err := data.EncodedMessages()
				if err != nil {
					logger.Error("encode valid slots", slog.String("key", key), slog.String("error", err.Error()))
					continue
				}
				for _, m := range messages {
					validByType[odid.MessageTypeOf(m)]++
				}
			}
			for t, count := range validByType {
				collector.SetValiditySlots(t.String(), count)
			}
		}
	}
}

// -------------------------------------------------------------------------
// Logging
// -------------------------------------------------------------------------

func newLoggerWithLevel(cfg config.LogConfig, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// -------------------------------------------------------------------------
// Config loading
// -------------------------------------------------------------------------

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("validate default config: %w", err)
		}
		return cfg, nil
	}
	return config.Load(path)
}

// -------------------------------------------------------------------------
// Metrics HTTP Server
// -------------------------------------------------------------------------

func newMetricsServer(cfg config.MetricsConfig, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func listenAndServe(ctx context.Context, srv *http.Server, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
	return nil
}

func gracefulShutdown(metricsSrv *http.Server, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := metricsSrv.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown", slog.String("error", err.Error()))
	}
	return nil
}

// -------------------------------------------------------------------------
// SIGHUP Reload
// -------------------------------------------------------------------------

func handleSIGHUP(ctx context.Context, sigHUP <-chan os.Signal, configPath string, logLevel *slog.LevelVar, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigHUP:
			logger.Info("received SIGHUP, reloading configuration")
			newCfg, err := loadConfig(configPath)
			if err != nil {
				logger.Error("failed to reload configuration, keeping current settings", slog.String("error", err.Error()))
				continue
			}
			oldLevel := logLevel.Level()
			newLevel := config.ParseLogLevel(newCfg.Log.Level)
			logLevel.Set(newLevel)
			logger.Info("configuration reloaded",
				slog.String("old_log_level", oldLevel.String()),
				slog.String("new_log_level", newLevel.String()),
			)
		}
	}
}
