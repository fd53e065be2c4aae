// Package service es la fachada de operaciones nombradas: construye el
// comando correspondiente y lo despacha al registry. La capa HTTP solo
// habla con este paquete.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/registry"
)

type TeamService struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *TeamService {
	return &TeamService{reg: reg}
}

func (s *TeamService) FindByID(ctx context.Context, teamID uuid.UUID) domain.Response[domain.Team] {
	return s.reg.Find(ctx, teamID)
}

func (s *TeamService) Create(ctx context.Context, teamID, leaderID uuid.UUID, mode domain.Mode) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.Create{LeaderID: leaderID, Mode: mode}))
}

func (s *TeamService) Disband(ctx context.Context, teamID, senderID uuid.UUID) domain.Response[domain.Unit] {
	out := s.reg.Execute(ctx, teamID, domain.Disband{SenderID: senderID})
	if out.Err != nil {
		return domain.Response[domain.Unit]{Err: out.Err}
	}
	return domain.Processed(domain.Unit{})
}

func (s *TeamService) AddMember(ctx context.Context, teamID, senderID, memberID uuid.UUID) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.AddMember{SenderID: senderID, MemberID: memberID}))
}

func (s *TeamService) KickMember(ctx context.Context, teamID, senderID, memberID uuid.UUID) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.KickMember{SenderID: senderID, MemberID: memberID}))
}

func (s *TeamService) Leave(ctx context.Context, teamID, memberID uuid.UUID) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.Leave{MemberID: memberID}))
}

func (s *TeamService) ChangeMode(ctx context.Context, teamID, senderID uuid.UUID, mode domain.Mode) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.ChangeMode{SenderID: senderID, Mode: mode}))
}

func (s *TeamService) ChangeLeader(ctx context.Context, teamID, senderID, memberID uuid.UUID) domain.Response[domain.Team] {
	return teamResponse(s.reg.Execute(ctx, teamID, domain.ChangeLeader{SenderID: senderID, MemberID: memberID}))
}

func teamResponse(out domain.Outcome) domain.Response[domain.Team] {
	if out.Err != nil {
		return domain.Response[domain.Team]{Err: out.Err}
	}
	return domain.Processed(*out.Team)
}
