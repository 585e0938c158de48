package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/fantasy_report/config"
	"github.com/mww/fantasy_report/controller"
	"github.com/mww/fantasy_report/export"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/platforms/yahoo"
	"github.com/mww/fantasy_report/web"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync()

	ctrl, err := controller.New(clock.New(), newSource(cfg, logger), controller.Options{
		LeagueFile: cfg.LeagueFile,
		Load: loader.Options{
			Weeks:              cfg.Weeks,
			MatchupsPerWeek:    cfg.MatchupsPerWeek,
			SkipMalformedWeeks: cfg.SkipMalformedWeeks,
			BenchFallback:      cfg.BenchFallback,
		},
		PowerRankingWindow: cfg.PowerRankingWindow,
	}, logger)
	if err != nil {
		logger.Fatalw("error creating a new controller", "error", err)
	}

	report, err := ctrl.Rebuild(context.Background())
	if err != nil {
		logger.Fatalw("error building report", "error", err)
	}

	if cfg.OutputDir != "" {
		if err := export.WriteReport(cfg.OutputDir, report); err != nil {
			logger.Fatalw("error writing report", "dir", cfg.OutputDir, "error", err)
		}
		logger.Infow("wrote report", "dir", cfg.OutputDir, "report_id", report.ID)
	}

	if !cfg.Serve {
		return
	}

	server, err := web.NewServer(cfg.Port, cfg.AllowedOrigins, ctrl, logger)
	if err != nil {
		logger.Fatalw("error creating new web server", "error", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			logger.Errorw("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	logger.Infow("server shutdown")
}

func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == config.EnvProd {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func newSource(cfg *config.Config, logger *zap.SugaredLogger) loader.Source {
	if cfg.InputFormat != config.FormatHTML {
		return loader.NewCSVDir(cfg.DataDir)
	}

	var src loader.Source = yahoo.NewHTMLDir(cfg.DataDir)
	if cfg.CSVCacheDir != "" {
		src = loader.NewCSVCache(src, cfg.CSVCacheDir, logger)
	}
	return src
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
