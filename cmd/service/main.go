package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "geleverd/internal/app"
	"geleverd/internal/handlers/rest/admin_login_post"
	"geleverd/internal/handlers/rest/admin_me_get"
	"geleverd/internal/handlers/rest/courier_get"
	"geleverd/internal/handlers/rest/courier_post"
	"geleverd/internal/handlers/rest/courier_put"
	"geleverd/internal/handlers/rest/couriers_get"
	"geleverd/internal/handlers/rest/dashboard_get"
	"geleverd/internal/handlers/rest/healthcheck_head"
	"geleverd/internal/handlers/rest/order_analytics_get"
	"geleverd/internal/handlers/rest/order_delete"
	"geleverd/internal/handlers/rest/order_get"
	"geleverd/internal/handlers/rest/order_post"
	"geleverd/internal/handlers/rest/order_put"
	"geleverd/internal/handlers/rest/order_track_get"
	"geleverd/internal/handlers/rest/orders_get"
	"geleverd/internal/handlers/rest/performance_get"
	"geleverd/internal/handlers/rest/ping_get"
	"geleverd/internal/handlers/rest/price_calculate_post"
	"geleverd/internal/handlers/rest/revenue_reports_get"
	"geleverd/internal/pkg/config"
	"geleverd/internal/pkg/dotenv"
	metrics_system "geleverd/internal/pkg/metrics"
	authmw "geleverd/internal/pkg/middlewares/auth"
	"geleverd/internal/pkg/middlewares/graceful_shutdown"
	"geleverd/internal/pkg/middlewares/metrics"
	"geleverd/internal/pkg/middlewares/rate_limiter"
	"geleverd/internal/pkg/middlewares/timeout"
	"geleverd/internal/pkg/postgres"
	"geleverd/pkg/logger"
	"geleverd/pkg/logger/zap_adapter"
	"geleverd/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting geleverd application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if err := businessApp.Seeder.Run(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is
	// cancelled only after server.Shutdown() so in-flight requests can
	// finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled
	// at this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/api/health", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/api/health", ping_get.New(log)).Methods("GET")

	router.Handle("/api/orders/calculate-price", price_calculate_post.New(log, app.ServicePricing)).Methods("POST")
	router.Handle("/api/orders/create", order_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/api/orders/track/{tracking_number}", order_track_get.New(log, app.ServiceOrder)).Methods("GET")

	router.Handle("/api/admin/login", admin_login_post.New(log, app.ServiceAuth)).Methods("POST")

	admin := router.NewRoute().Subrouter()
	admin.Use(authmw.Middleware(log, app.ServiceAuth))

	admin.Handle("/api/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/api/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/api/orders/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	admin.Handle("/api/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	admin.Handle("/api/admin/me", admin_me_get.New(log)).Methods("GET")
	admin.Handle("/api/admin/dashboard", dashboard_get.New(log, app.ServiceAnalytics)).Methods("GET")
	admin.Handle("/api/admin/analytics/revenue", revenue_reports_get.New(log, app.ServiceAnalytics)).Methods("GET")
	admin.Handle("/api/admin/analytics/orders", order_analytics_get.New(log, app.ServiceAnalytics)).Methods("GET")
	admin.Handle("/api/admin/analytics/performance", performance_get.New(log, app.ServiceAnalytics)).Methods("GET")

	admin.Handle("/api/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	admin.Handle("/api/couriers", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	admin.Handle("/api/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	admin.Handle("/api/couriers/{id}", courier_put.New(log, app.ServiceCourier)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/api/health", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
