package domain

import "github.com/google/uuid"

// Command describe una mutación de equipo como valor inmutable: solo
// operandos, nunca una copia del estado (el estado se lee dentro de la
// sección crítica del registry para evitar lecturas viejas).
//
// Apply corre con acceso exclusivo a la clave. cur == nil significa que
// no existe registro para el id. Hay dos categorías cerradas: Create y
// Disband operan sobre la ausencia; el resto exige un equipo presente.
type Command interface {
	// Name identifica el comando en logs y métricas.
	Name() string
	Apply(cur *Team) Outcome
}

// Outcome es la transición producida por un comando.
//
// Team es el estado resultante (nil = ausente). Err != nil marca un
// resultado de negocio negativo: el estado no cambió y no se persiste.
// Dirty pide write-through antes de liberar la sección crítica: Store
// si Team != nil, Delete si Team == nil.
type Outcome struct {
	Team  *Team
	Err   *Error
	Dirty bool
}

// Create construye el equipo si no existe. Si ya existe con el mismo
// líder y modo, es un éxito idempotente; si difiere, ALREADY_CREATED.
type Create struct {
	LeaderID uuid.UUID
	Mode     Mode
}

func (c Create) Name() string { return "create" }

func (c Create) Apply(cur *Team) Outcome {
	if cur == nil {
		t := NewTeam(c.LeaderID, c.Mode)
		return Outcome{Team: &t, Dirty: true}
	}
	if cur.LeaderID == c.LeaderID && cur.Mode == c.Mode {
		return Outcome{Team: cur}
	}
	return Outcome{Team: cur, Err: NewError(CodeAlreadyCreated, "team already created")}
}

// Disband elimina el equipo. Sobre un equipo ausente es un éxito
// trivial; sobre uno presente exige que el emisor sea el líder.
type Disband struct {
	SenderID uuid.UUID
}

func (c Disband) Name() string { return "disband" }

func (c Disband) Apply(cur *Team) Outcome {
	if cur == nil {
		return Outcome{}
	}
	if cur.LeaderID != c.SenderID {
		return Outcome{Team: cur, Err: NewError(CodeForbidden, "no right for disband")}
	}
	return Outcome{Dirty: true}
}

type AddMember struct {
	SenderID uuid.UUID
	MemberID uuid.UUID
}

func (c AddMember) Name() string { return "add_member" }

func (c AddMember) Apply(cur *Team) Outcome {
	return applyExisting(cur, func(t Team) Response[Team] {
		return t.AddMember(c.SenderID, c.MemberID)
	})
}

type KickMember struct {
	SenderID uuid.UUID
	MemberID uuid.UUID
}

func (c KickMember) Name() string { return "kick_member" }

func (c KickMember) Apply(cur *Team) Outcome {
	return applyExisting(cur, func(t Team) Response[Team] {
		return t.KickMember(c.SenderID, c.MemberID)
	})
}

// Leave es la salida voluntaria: misma remoción que kick pero sin
// chequeo de líder (cualquier miembro puede quitarse a sí mismo).
type Leave struct {
	MemberID uuid.UUID
}

func (c Leave) Name() string { return "leave" }

func (c Leave) Apply(cur *Team) Outcome {
	return applyExisting(cur, func(t Team) Response[Team] {
		return t.RemoveMember(c.MemberID)
	})
}

type ChangeMode struct {
	SenderID uuid.UUID
	Mode     Mode
}

func (c ChangeMode) Name() string { return "change_mode" }

func (c ChangeMode) Apply(cur *Team) Outcome {
	return applyExisting(cur, func(t Team) Response[Team] {
		return t.ChangeMode(c.SenderID, c.Mode)
	})
}

type ChangeLeader struct {
	SenderID uuid.UUID
	MemberID uuid.UUID
}

func (c ChangeLeader) Name() string { return "change_leader" }

func (c ChangeLeader) Apply(cur *Team) Outcome {
	return applyExisting(cur, func(t Team) Response[Team] {
		return t.ChangeLeader(c.SenderID, c.MemberID)
	})
}

// applyExisting aplica una regla pura sobre un equipo que debe existir.
// Todo Processed se marca Dirty: el write-through persiste también los
// no-op para no distinguir casos en el executor.
func applyExisting(cur *Team, fn func(Team) Response[Team]) Outcome {
	if cur == nil {
		return Outcome{Err: NewError(CodeNotFound, "team not found")}
	}
	res := fn(*cur)
	if res.Err != nil {
		return Outcome{Team: cur, Err: res.Err}
	}
	next := res.Value
	return Outcome{Team: &next, Dirty: true}
}
