package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Mode es la enumeración cerrada de modos de juego.
// Cada variante fija la capacidad total del equipo (líder incluido).
type Mode string

const (
	ModeTeamDeathMatch Mode = "TEAM_DEATH_MATCH"
	ModeTeamVsTeam     Mode = "TEAM_VS_TEAM"
)

// MembersPerTeam retorna la capacidad total del modo, líder incluido.
func (m Mode) MembersPerTeam() int {
	switch m {
	case ModeTeamDeathMatch:
		return 3
	case ModeTeamVsTeam:
		return 5
	}
	return 0
}

// Valid reporta si el modo pertenece a la enumeración.
func (m Mode) Valid() bool { return m.MembersPerTeam() > 0 }

// ParseMode valida un modo recibido como texto (query param, CLI).
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}

// IDSet es un conjunto de identidades con codificación JSON como array.
type IDSet map[uuid.UUID]struct{}

func NewIDSet(ids ...uuid.UUID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// With retorna una copia del conjunto con id agregado.
func (s IDSet) With(id uuid.UUID) IDSet {
	out := make(IDSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[id] = struct{}{}
	return out
}

// Without retorna una copia del conjunto sin id.
func (s IDSet) Without(id uuid.UUID) IDSet {
	out := make(IDSet, len(s))
	for k := range s {
		if k != id {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s IDSet) Equal(o IDSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Contains(k) {
			return false
		}
	}
	return true
}

// MarshalJSON codifica el conjunto como array ordenado, para que dos
// equipos iguales produzcan bytes idénticos en el store.
func (s IDSet) MarshalJSON() ([]byte, error) {
	ids := make([]uuid.UUID, 0, len(s))
	for k := range s {
		ids = append(ids, k)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return json.Marshal(ids)
}

func (s *IDSet) UnmarshalJSON(b []byte) error {
	var ids []uuid.UUID
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// Team es el registro de un equipo: líder, modo y conjunto de miembros
// (el líder nunca figura en Members). El id del equipo vive fuera del
// registro; es la clave bajo la que el registry lo guarda.
//
// Invariantes tras toda mutación exitosa:
//   - LeaderID ∉ Members
//   - len(Members)+1 <= Mode.MembersPerTeam()
//
// Los métodos de regla son funciones puras: reciben el estado actual por
// valor y retornan el estado siguiente dentro de un Response, sin tocar
// el receptor.
type Team struct {
	LeaderID uuid.UUID `json:"leaderId"`
	Mode     Mode      `json:"mode"`
	Members  IDSet     `json:"members"`
}

func NewTeam(leaderID uuid.UUID, mode Mode) Team {
	return Team{LeaderID: leaderID, Mode: mode, Members: IDSet{}}
}

func (t Team) Equal(o Team) bool {
	return t.LeaderID == o.LeaderID && t.Mode == o.Mode && t.Members.Equal(o.Members)
}

// AddMember agrega un miembro. Solo el líder puede hacerlo.
// Agregar a alguien ya presente es un éxito sin cambios.
func (t Team) AddMember(senderID, memberID uuid.UUID) Response[Team] {
	return t.leaderAction(senderID, func() Response[Team] {
		return t.addMember(memberID)
	})
}

func (t Team) addMember(memberID uuid.UUID) Response[Team] {
	if memberID == t.LeaderID {
		return Failure[Team](CodeInvalidMemberID, "can't add leader in team")
	}
	if t.contains(memberID) {
		return Processed(t)
	}
	if t.membersCount() < t.Mode.MembersPerTeam() {
		t.Members = t.Members.With(memberID)
		return Processed(t)
	}
	return Failure[Team](CodeMembersCountExceeded, fmt.Sprintf("can't add more members in mode=%s", t.Mode))
}

// KickMember expulsa a un miembro. Solo el líder puede hacerlo.
func (t Team) KickMember(senderID, memberID uuid.UUID) Response[Team] {
	return t.leaderAction(senderID, func() Response[Team] {
		return t.RemoveMember(memberID)
	})
}

// RemoveMember quita a un miembro sin chequear permisos (lo usan kick y
// leave). Quitar al líder se rechaza; quitar a un ausente es un no-op.
func (t Team) RemoveMember(memberID uuid.UUID) Response[Team] {
	if memberID == t.LeaderID {
		return Failure[Team](CodeInvalidMemberID, "can't remove leader from team")
	}
	t.Members = t.Members.Without(memberID)
	return Processed(t)
}

// ChangeLeader transfiere el liderazgo a un miembro actual: el nuevo
// líder sale de Members y el anterior entra.
func (t Team) ChangeLeader(senderID, memberID uuid.UUID) Response[Team] {
	return t.leaderAction(senderID, func() Response[Team] {
		if !t.contains(memberID) {
			return Failure[Team](CodeInvalidMemberID, "member not found")
		}
		if t.LeaderID == memberID {
			return Processed(t)
		}
		old := t.LeaderID
		t.Members = t.Members.Without(memberID).With(old)
		t.LeaderID = memberID
		return Processed(t)
	})
}

// ChangeMode cambia el modo si los miembros actuales entran en la nueva
// capacidad.
func (t Team) ChangeMode(senderID uuid.UUID, mode Mode) Response[Team] {
	return t.leaderAction(senderID, func() Response[Team] {
		if t.membersCount() > mode.MembersPerTeam() {
			return Failure[Team](CodeMembersCountExceeded, fmt.Sprintf("members count too big for mode %s", mode))
		}
		t.Mode = mode
		return Processed(t)
	})
}

func (t Team) leaderAction(senderID uuid.UUID, action func() Response[Team]) Response[Team] {
	if senderID != t.LeaderID {
		return Failure[Team](CodeForbidden, fmt.Sprintf("%s is not a leader of team", senderID))
	}
	return action()
}

func (t Team) contains(memberID uuid.UUID) bool {
	return t.LeaderID == memberID || t.Members.Contains(memberID)
}

func (t Team) membersCount() int { return len(t.Members) + 1 }
