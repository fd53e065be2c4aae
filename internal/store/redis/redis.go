// Package redis es el driver Redis del TeamRepository, pensado para
// topologías de desarrollo/compose donde levantar Postgres sobra.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/domain/repository"
)

type Store struct {
	c      *rdb.Client
	prefix string
}

func New(addr string, db int, prefix string) *Store {
	if prefix == "" {
		prefix = "teamster:"
	}
	return &Store{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

func (s *Store) key(id uuid.UUID) string { return s.prefix + "team:" + id.String() }

func (s *Store) Load(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	b, err := s.c.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, rdb.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	var t domain.Team
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("decode team: %w", err)
	}
	return &t, nil
}

func (s *Store) Store(ctx context.Context, id uuid.UUID, team domain.Team) error {
	b, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("encode team: %w", err)
	}
	if err := s.c.Set(ctx, s.key(id), b, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Team, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]domain.Team{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	vals, err := s.c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	out := make(map[uuid.UUID]domain.Team, len(ids))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue // ausente
		}
		var t domain.Team
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("decode team: %w", err)
		}
		out[ids[i]] = t
	}
	return out, nil
}

func (s *Store) Wipe(ctx context.Context) error {
	iter := s.c.Scan(ctx, 0, s.prefix+"team:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.c.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Store) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *Store) Close() error { return s.c.Close() }
