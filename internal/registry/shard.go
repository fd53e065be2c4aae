package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
)

// shardCount reparte el mapa de entradas para que el alta de claves
// nuevas no contienda en un único lock global. Potencia de dos.
const shardCount = 32

// entry es el registro autoritativo de una clave: su mutex es la
// sección crítica por equipo. loaded distingue "nunca tocado" de
// "ausente confirmado por el store".
type entry struct {
	mu     sync.Mutex
	loaded bool
	team   *domain.Team
}

type shard struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

func (r *Registry) entryFor(id uuid.UUID) *entry {
	s := &r.shards[shardIndex(id)]

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[id]; ok {
		return e
	}
	e = &entry{}
	s.entries[id] = e
	return e
}

func shardIndex(id uuid.UUID) int {
	// Los últimos bytes de un UUID v4 son aleatorios; alcanza como hash.
	return int(id[15]) & (shardCount - 1)
}
