// Package http arma el router del servicio y los helpers de respuesta.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TeamRoutes agrupa los handlers del recurso equipos; lo implementa el
// controller para poder montar rutas sin importar el paquete concreto.
type TeamRoutes interface {
	Create(w http.ResponseWriter, r *http.Request)
	FindByID(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	KickMember(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	ChangeLeader(w http.ResponseWriter, r *http.Request)
	ChangeMode(w http.ResponseWriter, r *http.Request)
	Disband(w http.ResponseWriter, r *http.Request)
}

// Pinger es lo que /readyz necesita del store.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(teams TeamRoutes, store Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(WithRecovery, WithMetrics, WithLogging)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := store.Ping(req.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", RegisterMetrics())

	r.Route("/api/teams", func(r chi.Router) {
		r.Post("/create", teams.Create)
		r.Route("/{teamID}", func(r chi.Router) {
			r.Get("/", teams.FindByID)
			r.Put("/add", teams.AddMember)
			r.Put("/kick", teams.KickMember)
			r.Put("/leave", teams.Leave)
			r.Put("/change-leader", teams.ChangeLeader)
			r.Put("/change-mode", teams.ChangeMode)
			r.Delete("/disband", teams.Disband)
		})
	})

	return r
}
