// Package teams expone las operaciones de equipo sobre HTTP. Mapea
// requests a la fachada de servicio y respuestas de negocio a status.
package teams

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
	httpx "github.com/dropDatabas3/teamster/internal/http"
	"github.com/dropDatabas3/teamster/internal/service"
)

type Controller struct {
	svc *service.TeamService
}

func NewController(svc *service.TeamService) *Controller {
	return &Controller{svc: svc}
}

// createRequest replica el body del endpoint de creación: el id del
// equipo lo elige el cliente, no el servidor.
type createRequest struct {
	ID       uuid.UUID   `json:"id"`
	LeaderID uuid.UUID   `json:"leaderId"`
	Mode     domain.Mode `json:"mode"`
}

// Create — POST /api/teams/create
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	if req.ID == uuid.Nil || req.LeaderID == uuid.Nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "id y leaderId son obligatorios")
		return
	}
	if !req.Mode.Valid() {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "mode desconocido")
		return
	}
	writeTeam(w, http.StatusCreated, c.svc.Create(r.Context(), req.ID, req.LeaderID, req.Mode))
}

// FindByID — GET /api/teams/{teamID}
func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	writeTeam(w, http.StatusOK, c.svc.FindByID(r.Context(), teamID))
}

// AddMember — PUT /api/teams/{teamID}/add?sender=&member=
func (c *Controller) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	senderID, ok := queryUUID(w, r, "sender")
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}
	writeTeam(w, http.StatusOK, c.svc.AddMember(r.Context(), teamID, senderID, memberID))
}

// KickMember — PUT /api/teams/{teamID}/kick?sender=&member=
func (c *Controller) KickMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	senderID, ok := queryUUID(w, r, "sender")
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}
	writeTeam(w, http.StatusOK, c.svc.KickMember(r.Context(), teamID, senderID, memberID))
}

// Leave — PUT /api/teams/{teamID}/leave?member=
func (c *Controller) Leave(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}
	writeTeam(w, http.StatusOK, c.svc.Leave(r.Context(), teamID, memberID))
}

// ChangeLeader — PUT /api/teams/{teamID}/change-leader?sender=&member=
func (c *Controller) ChangeLeader(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	senderID, ok := queryUUID(w, r, "sender")
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}
	writeTeam(w, http.StatusOK, c.svc.ChangeLeader(r.Context(), teamID, senderID, memberID))
}

// ChangeMode — PUT /api/teams/{teamID}/change-mode?sender=&mode=
func (c *Controller) ChangeMode(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	senderID, ok := queryUUID(w, r, "sender")
	if !ok {
		return
	}
	mode, err := domain.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "mode desconocido")
		return
	}
	writeTeam(w, http.StatusOK, c.svc.ChangeMode(r.Context(), teamID, senderID, mode))
}

// Disband — DELETE /api/teams/{teamID}/disband?sender=
func (c *Controller) Disband(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	senderID, ok := queryUUID(w, r, "sender")
	if !ok {
		return
	}
	res := c.svc.Disband(r.Context(), teamID, senderID)
	if res.Err != nil {
		httpx.WriteDomainError(w, res.Err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

func writeTeam(w http.ResponseWriter, successStatus int, res domain.Response[domain.Team]) {
	if res.Err != nil {
		httpx.WriteDomainError(w, res.Err)
		return
	}
	httpx.WriteJSON(w, successStatus, res.Value)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", name+" debe ser un uuid")
		return uuid.Nil, false
	}
	return id, true
}

func queryUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", name+" debe ser un uuid")
		return uuid.Nil, false
	}
	return id, true
}
