// Package memory es el driver en proceso: respaldo para desarrollo y
// tests. Guarda el equipo serializado en JSON, igual que los drivers
// externos, así el round-trip de codificación se ejercita siempre.
package memory

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/domain/repository"
)

type Store struct{ c *gocache.Cache }

func New() *Store {
	return &Store{c: gocache.New(gocache.NoExpiration, 0)}
}

func (s *Store) Load(_ context.Context, id uuid.UUID) (*domain.Team, error) {
	v, ok := s.c.Get(id.String())
	if !ok {
		return nil, repository.ErrNotFound
	}
	b, _ := v.([]byte)
	var t domain.Team
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) Store(_ context.Context, id uuid.UUID, team domain.Team) error {
	b, err := json.Marshal(team)
	if err != nil {
		return err
	}
	s.c.Set(id.String(), b, gocache.NoExpiration)
	return nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.c.Delete(id.String())
	return nil
}

func (s *Store) LoadAll(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Team, error) {
	out := make(map[uuid.UUID]domain.Team, len(ids))
	for _, id := range ids {
		t, err := s.Load(ctx, id)
		if repository.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = *t
	}
	return out, nil
}

func (s *Store) Wipe(context.Context) error {
	s.c.Flush()
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
