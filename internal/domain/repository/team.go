// Package repository define los contratos de persistencia que consume
// el registry. Los drivers concretos viven en internal/store.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
)

// TeamRepository es el único borde externo del core: CRUD durable de
// equipos por id. La carga es siempre por id puntual, nunca un prefetch
// de toda la tabla; el costo de un restart es proporcional a la demanda.
//
// Las lecturas deben observar la última escritura confirmada y las
// escrituras deben estar confirmadas de forma durable antes de retornar
// (el registry hace write-through sincrónico contra este contrato).
type TeamRepository interface {
	// Load retorna el equipo guardado bajo id, o ErrNotFound.
	Load(ctx context.Context, id uuid.UUID) (*domain.Team, error)

	// Store reemplaza el valor completo bajo id (upsert).
	Store(ctx context.Context, id uuid.UUID, team domain.Team) error

	// Delete elimina el registro. Borrar un id ausente no es error.
	Delete(ctx context.Context, id uuid.UUID) error

	// LoadAll carga los ids pedidos; los ausentes simplemente no
	// aparecen en el resultado (best effort).
	LoadAll(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Team, error)

	// Wipe trunca el almacenamiento. Solo setup de tests.
	Wipe(ctx context.Context) error

	// Ping verifica la conexión al backend.
	Ping(ctx context.Context) error

	// Close libera recursos del driver.
	Close() error
}
