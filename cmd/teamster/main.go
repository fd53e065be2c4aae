package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dropDatabas3/teamster/internal/config"
	httpx "github.com/dropDatabas3/teamster/internal/http"
	teamsctrl "github.com/dropDatabas3/teamster/internal/http/controllers/teams"
	"github.com/dropDatabas3/teamster/internal/observability/logger"
	"github.com/dropDatabas3/teamster/internal/registry"
	"github.com/dropDatabas3/teamster/internal/service"
	"github.com/dropDatabas3/teamster/internal/store"
	"github.com/dropDatabas3/teamster/internal/store/pg"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfgPath := os.Getenv("TEAMSTER_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "teamster",
	})
	defer func() { _ = logger.Sync() }()
	zlog := logger.L()

	ctx := context.Background()

	repo, err := store.Open(ctx, store.Config{
		Driver: cfg.Storage.Driver,
		DSN:    cfg.Storage.DSN,
		Postgres: store.PostgresConfig{
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		},
		Redis: store.RedisConfig{
			Addr:   cfg.Storage.Redis.Addr,
			DB:     cfg.Storage.Redis.DB,
			Prefix: cfg.Storage.Redis.Prefix,
		},
	})
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = repo.Close() }()

	if cfg.Flags.Migrate {
		if pgStore, ok := repo.(*pg.Store); ok {
			if err := pgStore.EnsureSchema(ctx); err != nil {
				zlog.Fatal("migrate", zap.Error(err))
			}
			zlog.Info("schema ensured")
		}
	}

	reg := registry.New(repo)
	svc := service.New(reg)
	ctrl := teamsctrl.NewController(svc)
	handler := httpx.NewRouter(ctrl, repo)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zlog.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("driver", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
}
