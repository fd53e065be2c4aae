package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dropDatabas3/teamster/internal/domain"
)

func newTeam() domain.Team {
	return domain.NewTeam(uuid.New(), domain.ModeTeamVsTeam)
}

func TestAddMemberFailsForNonLeader(t *testing.T) {
	team := newTeam()

	res := team.AddMember(uuid.New(), uuid.New())

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeForbidden, res.Err.Code)
}

func TestAddMemberFailsForLeader(t *testing.T) {
	team := newTeam()

	res := team.AddMember(team.LeaderID, team.LeaderID)

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeInvalidMemberID, res.Err.Code)
}

func TestAddMemberFailsIfTeamIsFull(t *testing.T) {
	members := domain.IDSet{}
	for i := 1; i < domain.ModeTeamVsTeam.MembersPerTeam(); i++ {
		members = members.With(uuid.New())
	}
	team := domain.Team{LeaderID: uuid.New(), Mode: domain.ModeTeamVsTeam, Members: members}

	res := team.AddMember(team.LeaderID, uuid.New())

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeMembersCountExceeded, res.Err.Code)
}

func TestAddMemberPassesIfTeamIsNotFull(t *testing.T) {
	members := domain.IDSet{}
	for i := 1; i < domain.ModeTeamVsTeam.MembersPerTeam()-1; i++ {
		members = members.With(uuid.New())
	}
	leaderID := uuid.New()
	added := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: members}

	res := team.AddMember(leaderID, added)

	want := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: members.With(added)}
	assert.Equal(t, domain.Processed(want), res)
}

func TestAddMemberMakesNothingForAlreadyAdded(t *testing.T) {
	memberID := uuid.New()
	leaderID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}

	res := team.AddMember(leaderID, memberID)

	assert.Equal(t, domain.Processed(team), res)
}

func TestKickMemberFailsForNonLeader(t *testing.T) {
	memberID := uuid.New()
	team := domain.Team{LeaderID: uuid.New(), Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}

	res := team.KickMember(memberID, memberID)

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeForbidden, res.Err.Code)
}

func TestCanNotKickLeader(t *testing.T) {
	leaderID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(uuid.New())}

	res := team.KickMember(leaderID, leaderID)

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeInvalidMemberID, res.Err.Code)
}

func TestKickMemberRemoves(t *testing.T) {
	leaderID := uuid.New()
	memberID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}

	res := team.KickMember(leaderID, memberID)

	want := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.IDSet{}}
	assert.Equal(t, domain.Processed(want), res)
}

func TestKickAbsentMemberIsNoop(t *testing.T) {
	leaderID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.IDSet{}}

	res := team.KickMember(leaderID, uuid.New())

	assert.Equal(t, domain.Processed(team), res)
}

func TestLeaveRemovesSelfWithoutLeaderCheck(t *testing.T) {
	memberID := uuid.New()
	team := domain.Team{LeaderID: uuid.New(), Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}

	res := team.RemoveMember(memberID)

	if !res.OK() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	assert.False(t, res.Value.Members.Contains(memberID))
}

func TestLeaveByLeaderIsRejected(t *testing.T) {
	team := newTeam()

	res := team.RemoveMember(team.LeaderID)

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeInvalidMemberID, res.Err.Code)
}

func TestChangeLeaderSwapsLeadership(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	team := domain.Team{LeaderID: a, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(b, c)}

	res := team.ChangeLeader(a, b)

	want := domain.Team{LeaderID: b, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(a, c)}
	assert.Equal(t, domain.Processed(want), res)
}

func TestChangeLeaderToSelfIsNoop(t *testing.T) {
	team := newTeam()

	res := team.ChangeLeader(team.LeaderID, team.LeaderID)

	assert.Equal(t, domain.Processed(team), res)
}

func TestChangeLeaderToStrangerFails(t *testing.T) {
	team := newTeam()

	res := team.ChangeLeader(team.LeaderID, uuid.New())

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeInvalidMemberID, res.Err.Code)
}

func TestChangeModeRejectedWhenMembersDoNotFit(t *testing.T) {
	leaderID := uuid.New()
	members := domain.NewIDSet(uuid.New(), uuid.New(), uuid.New(), uuid.New())
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: members}

	res := team.ChangeMode(leaderID, domain.ModeTeamDeathMatch)

	if res.OK() {
		t.Fatal("expected error")
	}
	assert.Equal(t, domain.CodeMembersCountExceeded, res.Err.Code)
}

func TestChangeModeReplacesMode(t *testing.T) {
	leaderID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.IDSet{}}

	res := team.ChangeMode(leaderID, domain.ModeTeamDeathMatch)

	want := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamDeathMatch, Members: domain.IDSet{}}
	assert.Equal(t, domain.Processed(want), res)
}

// Las reglas son puras: el receptor nunca se modifica.
func TestRulesDoNotMutateReceiver(t *testing.T) {
	leaderID := uuid.New()
	memberID := uuid.New()
	team := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}

	_ = team.AddMember(leaderID, uuid.New())
	_ = team.KickMember(leaderID, memberID)
	_ = team.ChangeLeader(leaderID, memberID)
	_ = team.ChangeMode(leaderID, domain.ModeTeamDeathMatch)

	want := domain.Team{LeaderID: leaderID, Mode: domain.ModeTeamVsTeam, Members: domain.NewIDSet(memberID)}
	assert.True(t, team.Equal(want))
}

func TestModeCapacity(t *testing.T) {
	assert.Equal(t, 3, domain.ModeTeamDeathMatch.MembersPerTeam())
	assert.Equal(t, 5, domain.ModeTeamVsTeam.MembersPerTeam())

	if _, err := domain.ParseMode("RANKED"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
