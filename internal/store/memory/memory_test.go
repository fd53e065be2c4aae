package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/domain/repository"
	"github.com/dropDatabas3/teamster/internal/store/memory"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	id := uuid.New()
	team := domain.Team{
		LeaderID: uuid.New(),
		Mode:     domain.ModeTeamVsTeam,
		Members:  domain.NewIDSet(uuid.New(), uuid.New()),
	}

	if err := s.Store(ctx, id, team); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(team) {
		t.Fatalf("round trip mismatch: %+v != %+v", got, team)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, id); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	if err := memory.New().Delete(context.Background(), uuid.New()); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAllSkipsMissing(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	a, b, missing := uuid.New(), uuid.New(), uuid.New()
	teamA := domain.NewTeam(uuid.New(), domain.ModeTeamDeathMatch)
	teamB := domain.NewTeam(uuid.New(), domain.ModeTeamVsTeam)

	if err := s.Store(ctx, a, teamA); err != nil {
		t.Fatal(err)
	}
	if err := s.Store(ctx, b, teamB); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadAll(ctx, []uuid.UUID{a, missing, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	if !got[a].Equal(teamA) || !got[b].Equal(teamB) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestWipe(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	id := uuid.New()
	if err := s.Store(ctx, id, domain.NewTeam(uuid.New(), domain.ModeTeamVsTeam)); err != nil {
		t.Fatal(err)
	}
	if err := s.Wipe(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, id); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound after wipe, got %v", err)
	}
}
