package app

import (
	"btcrate/internal/adapters"
	"btcrate/internal/adapters/fixed"
	"btcrate/internal/adapters/httpclient"
	"btcrate/internal/api"
	"btcrate/internal/config"
	"btcrate/internal/domain"
	"btcrate/internal/metrics"
	httpserver "btcrate/internal/platform/http"
	"btcrate/internal/rate"
	"btcrate/internal/rate/handler"
	"btcrate/internal/view"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and blocks until shutdown
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, appCfg, os.Stdout)
}

func run(ctx context.Context, appCfg *config.AppConfig, out io.Writer) error {
	pair := domain.CurrencyPair{Base: appCfg.ExchangeRateAPI.Base, Quote: appCfg.ExchangeRateAPI.Quote}
	if err := rate.ValidatePair(pair); err != nil {
		return fmt.Errorf("invalid currency pair %s: %w", pair, err)
	}

	// Service
	fetchMetrics := metrics.NewFetchMetrics()
	fetcher := metrics.NewInstrumentedFetcher(newRateFetcher(appCfg, pair), fetchMetrics)
	logrus.WithFields(logrus.Fields{"source": appCfg.ExchangeRateAPI.Source, "pair": pair.String()}).Info("✅ Rate source ready")

	// Interactor and presenter
	presenter := rate.NewPresenter(rate.NewInteractor(fetcher))
	defer presenter.Close()

	// Terminal view
	label := view.NewLabel(presenter, out, pair)
	defer label.Close()

	if appCfg.Mode == config.ModeOnce {
		label.Show(ctx)
		return nil
	}

	go label.Show(ctx)

	// Optional refresh, tied to root context
	if interval := appCfg.Refresh.Interval(); interval > 0 {
		scheduler := rate.NewScheduler(presenter, interval)
		// Ensure scheduler stops before presenter closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.WithField("interval", interval).Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(ctx, presenter)
	router := api.NewRouter(rateHandler, fetchMetrics.Handler())

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newRateFetcher(appCfg *config.AppConfig, pair domain.CurrencyPair) adapters.RateFetcher {
	if appCfg.ExchangeRateAPI.Source == config.SourceFixed {
		return fixed.NewRateClient(appCfg.ExchangeRateAPI.FixedRate)
	}
	// Base HTTP client, no timeout unless configured
	baseHTTPClient := &http.Client{Timeout: appCfg.HTTPClient.Timeout()}
	return httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.ExchangeRateAPI.BaseURL, pair)
}
