package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "github.com/urfave/cli/v2"

	"github.com/hazardwatch/hazardwatch/lifecycle"
	"github.com/hazardwatch/hazardwatch/modqueue"
	"github.com/hazardwatch/hazardwatch/moderation"
	"github.com/hazardwatch/hazardwatch/screening/cachestore"
	"github.com/hazardwatch/hazardwatch/screening/countstore"
	"github.com/hazardwatch/hazardwatch/screening/engine"
	"github.com/hazardwatch/hazardwatch/screening/signals"
	"github.com/hazardwatch/hazardwatch/util/cliutil"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "warden",
		Usage:   "hazard report moderation daemon and queue admin",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "database-url",
			Value:   "sqlite://data/warden/moderation.db",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL for shared counters; in-process counters when empty",
			EnvVars: []string{"WARDEN_REDIS_URL", "REDIS_URL"},
		},
		&cli.IntFlag{
			Name:    "max-db-connections",
			EnvVars: []string{"MAX_DB_CONNECTIONS"},
			Value:   40,
		},
	}

	app.Commands = []*cli.Command{
		runCmd,
		queueCmd,
	}

	return app.Run(args)
}

func setupLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// builds the full moderation service from CLI configuration
func setupService(cctx *cli.Context, logger *slog.Logger) (*moderation.Service, error) {
	db, err := cliutil.SetupDatabase(cctx.String("database-url"), cctx.Int("max-db-connections"))
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	var counters countstore.CountStore
	var trustCache cachestore.TrustCache
	if url := cctx.String("redis-url"); url != "" {
		counters, err = countstore.NewRedisCountStore(url)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		trustCache, err = cachestore.NewRedisTrustCache(url, cachestore.DefaultTrustTTL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
	} else {
		counters = countstore.NewMemCountStore()
		trustCache = cachestore.NewMemTrustCache(50_000, cachestore.DefaultTrustTTL)
	}

	queueStore, err := modqueue.NewGormQueueStore(db)
	if err != nil {
		return nil, err
	}
	hazardStore, err := lifecycle.NewGormHazardStore(db)
	if err != nil {
		return nil, err
	}

	cfg := engine.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	eng := &engine.Engine{
		Logger:   logger.With("component", "screening"),
		Config:   cfg,
		Signals:  signals.DefaultSignals(),
		Dupes:    &lifecycle.StoreDupeChecker{Store: hazardStore},
		Cache:    trustCache,
		Counters: counters,
	}

	return &moderation.Service{
		Logger:  logger,
		Engine:  eng,
		Queue:   modqueue.NewQueue(logger.With("component", "modqueue"), queueStore, counters),
		Hazards: lifecycle.NewLifecycle(logger.With("component", "lifecycle"), hazardStore),
	}, nil
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the moderation daemon (metrics + periodic queue report)",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":3989",
			EnvVars: []string{"WARDEN_METRICS_LISTEN"},
		},
		&cli.DurationFlag{
			Name:    "stats-interval",
			Value:   time.Minute,
			EnvVars: []string{"WARDEN_STATS_INTERVAL"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := setupLogger()
		svc, err := setupService(cctx, logger)
		if err != nil {
			return err
		}

		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cctx.String("metrics-listen"), mux); err != nil {
				logger.Error("metrics listener failed", "err", err)
			}
		}()

		ticker := time.NewTicker(cctx.Duration("stats-interval"))
		defer ticker.Stop()
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		logger.Info("warden running", "metrics", cctx.String("metrics-listen"))
		for {
			select {
			case <-ticker.C:
				stats, err := svc.GetStats(cctx.Context)
				if err != nil {
					logger.Warn("failed to compute queue stats", "err", err)
					continue
				}
				logger.Info("queue report",
					"pending", stats.Pending,
					"approvedToday", stats.ApprovedToday,
					"rejectedToday", stats.RejectedToday,
				)
			case <-quit:
				logger.Info("shutting down")
				return nil
			}
		}
	},
}
