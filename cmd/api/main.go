// The API server wires the newspaper backend together: user accounts and
// subscriptions, the article moderation workflow, the publisher directory and
// Stripe payment intents, behind one HTTP surface.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/config"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/notifier"
	"newsdesk/internal/infra/payment"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/retry"
	pkgconfig "newsdesk/pkg/config"

	artUC "newsdesk/internal/usecase/article"
	payUC "newsdesk/internal/usecase/payment"
	pubUC "newsdesk/internal/usecase/publisher"
	userUC "newsdesk/internal/usecase/user"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hauth "newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/middleware"
	hpayment "newsdesk/internal/handler/http/payment"
	hpublisher "newsdesk/internal/handler/http/publisher"
	"newsdesk/internal/handler/http/requestid"
	huser "newsdesk/internal/handler/http/user"
)

const (
	maxRequestBody = 1 << 20 // 1 MiB
	requestTimeout = 30 * time.Second
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := hauth.ValidateSecret(); err != nil {
		logger.Error("refusing to start", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("invalid CORS configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing := tracing.InitTracer("newsdesk")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	database := db.Open()
	defer func() { _ = database.Close() }()

	if err := retry.WithBackoff(context.Background(), retry.DBConfig(), func() error {
		return db.MigrateUp(database)
	}); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userRepo := pgRepo.NewUserRepo(database)
	articleRepo := pgRepo.NewArticleRepo(database)
	publisherRepo := pgRepo.NewPublisherRepo(database)

	users := &userUC.Service{Repo: userRepo}
	articles := &artUC.Service{Repo: articleRepo, Users: userRepo, Notifier: notifier.FromEnv()}
	publishers := &pubUC.Service{Repo: publisherRepo}
	payments := &payUC.Service{Client: newStripeClient(logger)}

	seedPublishers(publishers, logger)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	huser.Register(mux, users, paginationCfg, logger)
	harticle.Register(mux, articles, paginationCfg, logger)
	hpublisher.Register(mux, publishers, articles)
	hpayment.Register(mux, payments)

	loginLimit := pkgconfig.LoadLoginRateLimit()
	loginLimiter := hhttp.NewRateLimiter(loginLimit.Limit, loginLimit.Window)
	mux.Handle("POST /auth/token", loginLimiter.Limit(hauth.TokenHandler(users)))

	version := pkgconfig.GetEnvString("APP_VERSION", "dev")
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /health/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /health/live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	handler := chain(mux,
		middleware.CORS(*corsConfig),
		middleware.SecurityHeaders(),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.LimitRequestBody(maxRequestBody),
		hhttp.InputValidation(),
		hhttp.Timeout(requestTimeout),
	)

	server := &http.Server{
		Addr:              ":" + pkgconfig.GetEnvString("PORT", "8080"),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go refreshBusinessGauges(ctx, userRepo, articleRepo, logger)

	go func() {
		logger.Info("api server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", slog.String("error", err.Error()))
		return
	}
	logger.Info("server stopped")
}

// chain applies middlewares so the first listed runs outermost.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func newStripeClient(logger *slog.Logger) *payment.StripeClient {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	return payment.NewStripeClient(key)
}

// seedPublishers loads the optional operator seed file and registers any
// publishers not already in the directory.
func seedPublishers(publishers *pubUC.Service, logger *slog.Logger) {
	path := os.Getenv("PUBLISHER_SEED_FILE")
	if path == "" {
		return
	}

	seeds, err := config.LoadPublisherSeeds(path)
	if err != nil {
		logger.Error("publisher seed file rejected",
			slog.String("path", path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	inputs := make([]pubUC.CreateInput, 0, len(seeds))
	for _, seed := range seeds {
		inputs = append(inputs, pubUC.CreateInput{Name: seed.Name, LogoURL: seed.LogoURL})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	created, err := publishers.Seed(ctx, inputs)
	if err != nil {
		logger.Error("publisher seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("publisher directory seeded",
		slog.Int("created", created),
		slog.Int("total", len(seeds)))
}

// refreshBusinessGauges keeps the user-tier and article-count gauges current.
func refreshBusinessGauges(ctx context.Context, users repository.UserRepository,
	articles repository.ArticleRepository, logger *slog.Logger) {

	refresh := func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if counts, err := users.CountByTier(refreshCtx); err == nil {
			hhttp.UpdateUsersByTier(counts.Premium, counts.Normal)
		} else {
			logger.Warn("user tier gauge refresh failed", slog.String("error", err.Error()))
		}
		if total, err := articles.CountArticles(refreshCtx); err == nil {
			hhttp.UpdateArticlesTotal(total)
		} else {
			logger.Warn("article gauge refresh failed", slog.String("error", err.Error()))
		}
	}

	refresh()
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			return
		}
	}
}
