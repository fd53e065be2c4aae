// Package registry es el dueño del estado autoritativo de los equipos:
// un mapa id -> registro con exclusión mutua por clave, carga perezosa
// desde el store y write-through sincrónico en cada mutación aceptada.
package registry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/domain/repository"
	"github.com/dropDatabas3/teamster/internal/observability/logger"
)

// Registry ejecuta comandos con acceso exclusivo por id de equipo.
//
// Garantía: para un mismo id, todas las llamadas a Execute/Find quedan
// totalmente ordenadas; ids distintos nunca se bloquean entre sí. El
// read-modify-write completo (carga, regla, persistencia) ocurre dentro
// de la sección crítica de la clave.
type Registry struct {
	repo repository.TeamRepository
	log  *zap.Logger

	shards [shardCount]shard
}

func New(repo repository.TeamRepository) *Registry {
	r := &Registry{repo: repo, log: logger.Named("registry")}
	for i := range r.shards {
		r.shards[i].entries = make(map[uuid.UUID]*entry)
	}
	return r
}

// Execute aplica cmd bajo la sección crítica de id. Si el comando
// produce estado nuevo, lo persiste antes de liberar la sección; si la
// persistencia falla, el valor en memoria queda en su snapshot previo y
// el resultado es INTERNAL_ERROR.
func (r *Registry) Execute(ctx context.Context, id uuid.UUID, cmd domain.Command) domain.Outcome {
	e := r.entryFor(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := r.ensureLoaded(ctx, id, e); err != nil {
		observeCommand(cmd.Name(), domain.CodeInternalError)
		return domain.Outcome{Err: domain.NewError(domain.CodeInternalError, "can't load team")}
	}

	out := cmd.Apply(e.team)
	if out.Err != nil {
		observeCommand(cmd.Name(), out.Err.Code)
		return out
	}

	if out.Dirty {
		if err := r.persist(ctx, id, out.Team); err != nil {
			// El snapshot previo sigue en e.team: la mutación no se
			// aplicó ni en memoria ni en el store.
			r.log.Error("write-through failed",
				zap.String("team_id", id.String()),
				zap.String("command", cmd.Name()),
				zap.Error(err))
			observeCommand(cmd.Name(), domain.CodeInternalError)
			return domain.Outcome{Team: e.team, Err: domain.NewError(domain.CodeInternalError, "can't persist team")}
		}
	}

	e.team = out.Team
	observeCommandOK(cmd.Name())
	return out
}

// Find retorna el equipo bajo id, serializado con las mutaciones de ese
// id: nunca observa una mutación a medio aplicar.
func (r *Registry) Find(ctx context.Context, id uuid.UUID) domain.Response[domain.Team] {
	e := r.entryFor(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := r.ensureLoaded(ctx, id, e); err != nil {
		observeCommand("find", domain.CodeInternalError)
		return domain.Failure[domain.Team](domain.CodeInternalError, "can't load team")
	}
	if e.team == nil {
		observeCommand("find", domain.CodeNotFound)
		return domain.Failure[domain.Team](domain.CodeNotFound, "team is missing")
	}
	observeCommandOK("find")
	return domain.Processed(*e.team)
}

// ensureLoaded hace el read-through: un único Load por clave, cacheando
// también la ausencia. Tras un restart el primer toque repuebla.
func (r *Registry) ensureLoaded(ctx context.Context, id uuid.UUID, e *entry) error {
	if e.loaded {
		return nil
	}
	t, err := r.repo.Load(ctx, id)
	if err != nil && !repository.IsNotFound(err) {
		r.log.Error("read-through failed", zap.String("team_id", id.String()), zap.Error(err))
		return err
	}
	e.team = t
	e.loaded = true
	return nil
}

func (r *Registry) persist(ctx context.Context, id uuid.UUID, t *domain.Team) error {
	if t == nil {
		return r.repo.Delete(ctx, id)
	}
	return r.repo.Store(ctx, id, *t)
}
