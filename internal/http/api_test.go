package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamster/internal/domain"
	httpx "github.com/dropDatabas3/teamster/internal/http"
	teamsctrl "github.com/dropDatabas3/teamster/internal/http/controllers/teams"
	"github.com/dropDatabas3/teamster/internal/registry"
	"github.com/dropDatabas3/teamster/internal/service"
	"github.com/dropDatabas3/teamster/internal/store/memory"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := memory.New()
	svc := service.New(registry.New(repo))
	handler := httpx.NewRouter(teamsctrl.NewController(svc), repo)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func createTeam(t *testing.T, srv *httptest.Server, teamID, leaderID uuid.UUID, mode domain.Mode) {
	t.Helper()
	body := fmt.Sprintf(`{"id":%q,"leaderId":%q,"mode":%q}`, teamID, leaderID, mode)
	resp, err := http.Post(srv.URL+"/api/teams/create", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", resp.StatusCode)
	}
}

func doPut(t *testing.T, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCreateAndGetTeam(t *testing.T) {
	srv := newServer(t)

	teamID, leaderID := uuid.New(), uuid.New()
	createTeam(t, srv, teamID, leaderID, domain.ModeTeamDeathMatch)

	resp, err := http.Get(srv.URL + "/api/teams/" + teamID.String())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", resp.StatusCode)
	}

	var team domain.Team
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		t.Fatal(err)
	}
	if team.LeaderID != leaderID || team.Mode != domain.ModeTeamDeathMatch {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestGetMissingTeamIs404(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/teams/" + uuid.NewString())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", resp.StatusCode)
	}

	var e domain.Error
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.Code != domain.CodeNotFound {
		t.Fatalf("code=%s", e.Code)
	}
}

func TestAddByNonLeaderIs403(t *testing.T) {
	srv := newServer(t)

	teamID, leaderID := uuid.New(), uuid.New()
	createTeam(t, srv, teamID, leaderID, domain.ModeTeamVsTeam)

	url := fmt.Sprintf("%s/api/teams/%s/add?sender=%s&member=%s",
		srv.URL, teamID, uuid.New(), uuid.New())
	resp := doPut(t, url)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}

func TestAddLeaderAsMemberIs400(t *testing.T) {
	srv := newServer(t)

	teamID, leaderID := uuid.New(), uuid.New()
	createTeam(t, srv, teamID, leaderID, domain.ModeTeamVsTeam)

	url := fmt.Sprintf("%s/api/teams/%s/add?sender=%s&member=%s",
		srv.URL, teamID, leaderID, leaderID)
	resp := doPut(t, url)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}

func TestBadUUIDIs400(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/teams/not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}

func TestDisbandFlow(t *testing.T) {
	srv := newServer(t)

	teamID, leaderID := uuid.New(), uuid.New()
	createTeam(t, srv, teamID, leaderID, domain.ModeTeamVsTeam)

	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/teams/%s/disband?sender=%s", srv.URL, teamID, leaderID), nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("disband status=%d", resp.StatusCode)
	}

	getResp, err := http.Get(srv.URL + "/api/teams/" + teamID.String())
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after disband status=%d", getResp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d", path, resp.StatusCode)
		}
	}
}
