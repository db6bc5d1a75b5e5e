package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tapforge/tapforge/pkg/api"
	"github.com/tapforge/tapforge/pkg/config"
	"github.com/tapforge/tapforge/pkg/game"
	"github.com/tapforge/tapforge/pkg/log"
	"github.com/tapforge/tapforge/pkg/repositories"
	"github.com/tapforge/tapforge/pkg/version"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	logLevel := flag.String("log-level", "info", "Log level")
	repositoryType := flag.String("repository", "memory", "Repository backend: memory, sqlite, postgres or redis")
	sqlitePath := flag.String("sqlite-path", "tapforge.db", "Path to the SQLite database file")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServer()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	repository, err := newRepository(ctx, *repositoryType, *sqlitePath, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	engine := game.NewEngine(ctx, game.NewEngineOptions{
		Repository: repository,
		SaveKey:    cfg.SaveKey,
	})
	go engine.Start(ctx)

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:   *port,
		Engine: engine,
	})
	go apiServer.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
}

func newRepository(ctx context.Context, repositoryType, sqlitePath string, cfg config.Server) (repositories.Repository, error) {
	switch repositoryType {
	case "memory":
		return repositories.NewInMemoryRepository(), nil
	case "sqlite":
		return repositories.NewSQLiteRepository(ctx, sqlitePath)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable must be set")
		}
		return repositories.NewPostgresRepository(ctx, cfg.DatabaseURL)
	case "redis":
		return repositories.NewRedisRepository(ctx, repositories.NewRedisRepositoryOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SaveTTL,
		})
	default:
		return nil, fmt.Errorf("unknown repository type: %s", repositoryType)
	}
}
