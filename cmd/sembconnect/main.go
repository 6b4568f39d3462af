package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/orgablast/sembconnect/internal/health"
	"github.com/orgablast/sembconnect/internal/server"
	"github.com/orgablast/sembconnect/internal/service/impl"
	"github.com/orgablast/sembconnect/internal/storage"
	"github.com/orgablast/sembconnect/internal/storage/inmemory"
	"github.com/orgablast/sembconnect/internal/storage/postgres"
	"github.com/orgablast/sembconnect/internal/storage/seed"
	"github.com/orgablast/sembconnect/internal/suggest"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`

	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`
	MockLatency    time.Duration `long:"http.mock_latency" env:"HTTP_MOCK_LATENCY" default:"500ms" description:"artificial delay of the legacy mock endpoints"`

	Postgres                   string `long:"postgres" env:"POSTGRES" description:"postgres dsn, if empty the service runs on the seeded in-memory store"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	AnthropicAPIKey string `long:"anthropic.api_key" env:"ANTHROPIC_API_KEY" description:"anthropic api key for grouping suggestions, if empty a roster-based fallback is used"`
	AnthropicModel  string `long:"anthropic.model" env:"ANTHROPIC_MODEL" default:"claude-3-5-haiku-latest" description:"anthropic model for grouping suggestions"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "SembConnect"
	parser.LongDescription = "SembConnect internal communications service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	s := mustGetStorage()

	svc := impl.New(s)

	r := chi.NewMux()
	server.SetupRouter(svc, getSuggester(), r, opts.RequestTimeout, server.WithMockLatency(opts.MockLatency))
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("storage", s.Ping),
	))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetStorage() storage.Storage {
	ctx := context.Background()

	if opts.Postgres == "" {
		logrus.Info("no postgres dsn, using seeded in-memory storage")

		s := inmemory.New()
		if err := seed.Apply(ctx, s); err != nil {
			logrus.WithError(err).Fatal("failed to seed storage")
		}

		return s
	}

	s := postgres.New(mustGetDB())

	// a fresh database gets the seed dataset once
	users, err := s.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to inspect storage")
	}
	if len(users) == 0 {
		logrus.Info("empty database, applying seed dataset")
		if err := seed.Apply(ctx, s); err != nil {
			logrus.WithError(err).Fatal("failed to seed storage")
		}
	}

	return s
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func getSuggester() suggest.Suggester {
	if opts.AnthropicAPIKey == "" {
		logrus.Info("no anthropic api key, using roster-based grouping suggester")
		return suggest.NewStatic()
	}

	return suggest.NewClaude(opts.AnthropicAPIKey, opts.AnthropicModel)
}
