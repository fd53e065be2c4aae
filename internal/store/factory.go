// Package store abre el driver de persistencia configurado. El resto
// del sistema solo conoce el contrato repository.TeamRepository.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/teamster/internal/domain/repository"
	"github.com/dropDatabas3/teamster/internal/store/memory"
	"github.com/dropDatabas3/teamster/internal/store/pg"
	"github.com/dropDatabas3/teamster/internal/store/redis"
)

type PostgresConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type RedisConfig struct {
	Addr   string
	DB     int
	Prefix string
}

type Config struct {
	Driver   string
	DSN      string
	Postgres PostgresConfig
	Redis    RedisConfig
}

func Open(ctx context.Context, cfg Config) (repository.TeamRepository, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "pg", "postgresql":
		return pg.New(ctx, cfg.DSN, pg.Config{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
	case "redis":
		return redis.New(cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix), nil
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}
}
