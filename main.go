package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/amanhimself/blog/articles"
	"github.com/amanhimself/blog/config"
	"github.com/amanhimself/blog/logger"
	"github.com/amanhimself/blog/middleware"
	"github.com/amanhimself/blog/notifier"
	"github.com/amanhimself/blog/search"
	"github.com/amanhimself/blog/utils"
)

const (
	dbConnectTimeout      = 10 * time.Second
	dbMaxOpenConnections  = 10
	retryMaxElapsedTime   = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

//go:embed posts
var postsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	log := logger.New(cfg)

	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, "2015-01-01T00:00:00Z")
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(1)

	registry, err := loadRegistry(cfg)
	if err != nil {
		log.Error("exiting: could not load articles: %s", err.Error())
		return
	}
	log.Info("loaded %d published articles", len(registry.All()))

	searchIndex, err := search.Build(registry.All())
	if err != nil {
		log.Error("exiting: could not build the search index: %s", err.Error())
		return
	}
	defer searchIndex.Close()

	slacknotifier := notifier.NewSlack(cfg.Slack.BlogBotToken, log)

	swappableDB := NewSwappableDB()

	apiServer := startHTTPServer(cfg, log, registry, searchIndex, swappableDB, slacknotifier)
	metricsServer := startMetricsServer(cfg, log)

	db, err := connectToDatabaseWithRetry(ctx, cfg, log)
	if err != nil {
		log.Error("exiting: could not connect to DB after retries: %s", err.Error())
		return
	}
	defer db.Close()

	swappableDB.Swap(db)

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("failed to set dialect: %s", err.Error())
	}
	if err := goose.Up(db, "sql/migrations"); err != nil {
		log.Error("failed to run migrations: %s", err.Error())
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}
}

// loadRegistry reads articles from the embedded posts tree, or from a local
// directory when APP_CONTENT_DIR points at one (draft previews).
func loadRegistry(cfg *config.Config) (*articles.Registry, error) {
	if cfg.App.ContentDir != "" {
		return articles.Load(os.DirFS(cfg.App.ContentDir))
	}

	sub, err := fs.Sub(postsFS, "posts")
	if err != nil {
		return nil, err
	}
	return articles.Load(sub)
}

type dbConnection struct {
	db *sql.DB
}

func connectToDatabaseWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	var conn dbConnection

	connectionString := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Endpoint,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	operation := func() (dbConnection, error) {
		connCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", connectionString)
		if err != nil {
			log.Warn("failed to open the database connection: %v", err.Error())
			return conn, err
		}

		if err := db.PingContext(connCtx); err != nil {
			log.Warn("failed to ping the database: %v", err.Error())
			return conn, err
		}

		db.SetMaxOpenConns(dbMaxOpenConnections)
		log.Info("connected to database")

		conn.db = db
		return conn, nil
	}

	_, err := backoff.Retry[dbConnection](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(retryMaxElapsedTime),
	)

	return conn.db, err
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	registry *articles.Registry,
	searchIndex *search.Index,
	db DBWrapper,
	slacknotifier *notifier.Slack,
) *http.Server {
	formDecoder := form.NewDecoder()
	formValidator := validator.New(validator.WithRequiredStructEnabled())

	handler := Handler{
		config:        cfg,
		formDecoder:   formDecoder,
		formValidator: formValidator,
		registry:      registry,
		searchIndex:   searchIndex,
		slacknotifier: slacknotifier,
		db:            db,
		log:           log,
	}

	mux := newRouter(&handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func newRouter(handler *Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.TraceIDHeaderMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Handle("/static/*", handler.StaticFiles())

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/public/v0", func(mux chi.Router) {
			mux.Get("/site", utils.MakeAPIHandler(handler.GetSiteConfig))
			mux.Get("/site/saved-tweets", utils.MakeAPIHandler(handler.GetSavedTweets))

			mux.Route("/articles", func(mux chi.Router) {
				mux.Get("/", utils.MakeAPIHandler(handler.GetAllArticles))
				mux.Get("/{slug}", utils.MakeAPIHandler(handler.GetArticleBySlug))
				mux.Post("/{slug}/comments", utils.MakeAPIHandler(handler.CreateComment))
				mux.Get("/{slug}/comments", utils.MakeAPIHandler(handler.GetAllCommentsByArticleSlug))
			})

			mux.Get("/tags", utils.MakeAPIHandler(handler.GetAllTags))
			mux.Get("/tags/{tag}", utils.MakeAPIHandler(handler.GetArticlesByTag))
			mux.Get("/search", utils.MakeAPIHandler(handler.SearchArticles))
		})
	})

	mux.Get("/healthz", handler.Healthz)
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/public/v0/articles", http.StatusFound)
	})

	return mux
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
