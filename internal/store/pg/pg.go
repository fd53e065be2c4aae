// Package pg es el driver PostgreSQL del TeamRepository. Misma forma de
// fila que el sistema original: id + registro serializado, sin columnas
// por campo.
package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/domain/repository"
)

const (
	selectTeamSQL = `SELECT data FROM teams WHERE id = $1`
	upsertTeamSQL = `
		INSERT INTO teams (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`
	deleteTeamSQL   = `DELETE FROM teams WHERE id = $1`
	truncateSQL     = `TRUNCATE teams`
	createSchemaSQL = `
		CREATE TABLE IF NOT EXISTS teams (
			id   uuid PRIMARY KEY,
			data jsonb NOT NULL
		)`
)

// loadAllParallelism limita los Load concurrentes de un LoadAll para no
// agotar el pool.
const loadAllParallelism = 8

type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type Store struct{ pool *pgxpool.Pool }

func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		pcfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	// Mapear MaxIdleConns → MinConns (pgxpool)
	if cfg.MaxIdleConns > 0 {
		pcfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != "" {
		d, err := time.ParseDuration(cfg.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("conn_max_lifetime: %w", err)
		}
		pcfg.MaxConnLifetime = d
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return &Store{pool: pool}, nil
}

// EnsureSchema crea la tabla si no existe. Lo invoca el main cuando
// flags.migrate está activo.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, createSchemaSQL)
	return err
}

func (s *Store) Load(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, selectTeamSQL, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	var t domain.Team
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode team: %w", err)
	}
	return &t, nil
}

func (s *Store) Store(ctx context.Context, id uuid.UUID, team domain.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("encode team: %w", err)
	}
	if _, err := s.pool.Exec(ctx, upsertTeamSQL, id, data); err != nil {
		return fmt.Errorf("store team: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, deleteTeamSQL, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

// LoadAll carga cada id por separado, en paralelo acotado. Los ausentes
// no aparecen en el resultado.
func (s *Store) LoadAll(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Team, error) {
	var mu sync.Mutex
	out := make(map[uuid.UUID]domain.Team, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadAllParallelism)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			t, err := s.Load(ctx, id)
			if repository.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = *t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Wipe(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, truncateSQL)
	return err
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
