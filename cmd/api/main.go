package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"inkpress/internal/common/pagination"
	pgRepo "inkpress/internal/infra/adapter/persistence/postgres"
	"inkpress/internal/infra/db"
	"inkpress/internal/infra/mailer"
	"inkpress/internal/infra/render"
	"inkpress/internal/observability/logging"
	"inkpress/pkg/config"

	artUC "inkpress/internal/usecase/article"
	cmtUC "inkpress/internal/usecase/comment"
	"inkpress/internal/usecase/hits"
	"inkpress/internal/usecase/notify"

	hhttp "inkpress/internal/handler/http"
	hadmin "inkpress/internal/handler/http/admin"
	harticle "inkpress/internal/handler/http/article"
	hcomment "inkpress/internal/handler/http/comment"
	"inkpress/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, version)

	runServer(logger, components, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler    http.Handler
	Aggregator *hits.Aggregator
	Notifier   notify.Service
	Sweeper    *cron.Cron
}

// setupServer wires repositories, use cases and routes into an HTTP
// handler, and starts the periodic hit-flush sweeper.
func setupServer(logger *slog.Logger, database *sql.DB, version string) *ServerComponents {
	articleRepo := pgRepo.NewArticleRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)
	renderer := render.NewGoldmarkRenderer()

	aggregator := hits.NewAggregator(articleRepo, hits.ThresholdFromEnv(), logger)

	smtpCfg := mailer.LoadSMTPConfig()
	var m mailer.Mailer
	if smtpCfg.Enabled() {
		m = mailer.NewSMTPMailer(smtpCfg, logger)
		logger.Info("mail notifications enabled", slog.String("host", smtpCfg.Host))
	} else {
		m = mailer.NewNoOpMailer()
		logger.Warn("mail notifications disabled: SMTP_HOST or SMTP_FROM not set")
	}
	notifier := notify.NewService(
		m,
		config.GetEnvString("ADMIN_EMAIL", ""),
		config.GetEnvInt("NOTIFY_MAX_CONCURRENT", 8),
		logger,
	)

	artSvc := &artUC.Service{Repo: articleRepo, Renderer: renderer, Hits: aggregator}
	cmtSvc := &cmtUC.Service{
		Comments: commentRepo,
		Articles: articleRepo,
		Renderer: renderer,
		Notifier: notifier,
	}

	// Sweep pending hit counts below the flush threshold to storage.
	sweeper := cron.New()
	schedule := config.GetEnvString("HITS_SWEEP_SCHEDULE", "@every 1m")
	if _, err := sweeper.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := aggregator.FlushAll(ctx); err != nil {
			logger.Warn("periodic hit flush failed", slog.Any("error", err))
		}
	}); err != nil {
		logger.Error("invalid hit sweep schedule",
			slog.String("schedule", schedule), slog.Any("error", err))
		os.Exit(1)
	}
	sweeper.Start()

	mux := setupRoutes(database, version, artSvc, cmtSvc, logger)
	handler := applyMiddleware(logger, mux)

	return &ServerComponents{
		Handler:    handler,
		Aggregator: aggregator,
		Notifier:   notifier,
		Sweeper:    sweeper,
	}
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	database *sql.DB,
	version string,
	artSvc *artUC.Service,
	cmtSvc *cmtUC.Service,
	logger *slog.Logger,
) *http.ServeMux {
	// レート制限: 書き込み系エンドポイントはIPごとに1秒1リクエスト（バースト5）
	var writeLimit func(http.Handler) http.Handler
	if config.GetEnvBool("WRITE_RATE_LIMIT_ENABLED", true) {
		writeLimiter := hhttp.NewRateLimiter(
			config.GetEnvFloat("WRITE_RATE_LIMIT_RPS", 1.0),
			config.GetEnvInt("WRITE_RATE_LIMIT_BURST", 5),
		)
		writeLimit = writeLimiter.Limit
	} else {
		logger.Warn("write rate limiting is DISABLED - not recommended for production")
	}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcomment.Register(mux, cmtSvc, paginationCfg, logger, writeLimit)
	hadmin.Register(mux, cmtSvc, paginationCfg, logger)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order outermost to innermost: Request ID, Recovery, Logging, Body
// Limit, Timeout, Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := http.Handler(handler)

	chain = hhttp.MetricsMiddleware(chain)
	timeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err := config.ValidatePositiveDuration(timeout); err != nil {
		timeout = 30 * time.Second
	}
	chain = hhttp.Timeout(timeout)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the API and metrics servers and handles graceful
// shutdown: stop accepting requests, stop the sweeper, flush pending
// hit counts and wait for in-flight notifications.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")
	metricsAddr := ":" + config.GetEnvString("METRICS_PORT", "9090")

	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Metrics are served on their own port, kept off the public API.
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", hhttp.MetricsHandler())
	metricsSrv := &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var group errgroup.Group
	group.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", metricsAddr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown failed", slog.Any("error", err))
	}

	// Stop the sweeper and wait for a running flush to finish.
	<-components.Sweeper.Stop().Done()

	// Counts below the threshold would otherwise be lost across restarts.
	if err := components.Aggregator.FlushAll(shutdownCtx); err != nil {
		logger.Error("final hit flush failed", slog.Any("error", err))
	}

	if err := components.Notifier.Shutdown(shutdownCtx); err != nil {
		logger.Warn("notification dispatch interrupted", slog.Any("error", err))
	}

	if err := group.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
