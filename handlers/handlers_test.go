package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/models"
	"github.com/seangjr/ythwknd25/services"
	"github.com/seangjr/ythwknd25/sheets"
	"github.com/seangjr/ythwknd25/testutil"
	"gorm.io/gorm"
)

type fakeAppender struct {
	err   error
	calls int
}

func (f *fakeAppender) AppendRegistration(models.Registration) error {
	f.calls++
	return f.err
}

func newTestApp(t *testing.T, appender sheets.Appender) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	hub := services.NewHub()
	syncer := sheets.NewSyncerWithAppender(appender)
	invites := services.NewInviteService(db)
	availability := services.NewAvailabilityService(db)
	registrations := services.NewRegistrationService(db, hub, syncer)

	app := fiber.New()
	h := New(cfg, db, registrations, availability, invites, syncer, hub)
	SetupRoutes(app, h)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %v (%s)", err, raw)
		}
	}
	return resp.StatusCode, decoded
}

func registerBody(line int, email, heroID string, teamID uint) services.RegisterInput {
	return services.RegisterInput{
		LineNumber:                   line,
		TeamID:                       teamID,
		HeroID:                       heroID,
		Email:                        email,
		FullName:                     "Test Person",
		Age:                          16,
		Gender:                       "Female",
		NricPassport:                 "B7654321",
		ContactNumber:                "0123456789",
		SchoolName:                   "Test High",
		YMMember:                     true,
		CGLeader:                     "Leader Lee",
		EmergencyContactName:         "Parent Person",
		EmergencyContactRelationship: "Parent",
		EmergencyContactPhone:        "0198765432",
		EmergencyContactEmail:        "parent@example.com",
	}
}

func TestRegisterEndToEnd(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// Line 1 of team 1 with hero alex succeeds.
	status, body := doJSON(t, app, "POST", "/api/register", registerBody(1, "one@example.com", "alex", 1))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["success"] != true {
		t.Errorf("expected success=true, got %v", body)
	}

	// Same line again with a different hero conflicts on the line.
	status, body = doJSON(t, app, "POST", "/api/register", registerBody(1, "two@example.com", "suzzy", 1))
	if status != http.StatusConflict {
		t.Errorf("expected 409 on duplicate line, got %d (%v)", status, body)
	}

	// A free line with the taken hero conflicts on the hero.
	status, body = doJSON(t, app, "POST", "/api/register", registerBody(2, "three@example.com", "alex", 1))
	if status != http.StatusConflict {
		t.Errorf("expected 409 on taken hero, got %d (%v)", status, body)
	}

	// A duplicate email across a different line conflicts on the email.
	status, body = doJSON(t, app, "POST", "/api/register", registerBody(3, "one@example.com", "max", 1))
	if status != http.StatusConflict {
		t.Errorf("expected 409 on duplicate email, got %d (%v)", status, body)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := newTestApp(t, nil)

	input := registerBody(1, "", "alex", 1)
	status, body := doJSON(t, app, "POST", "/api/register", input)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email, got %d (%v)", status, body)
	}
}

func TestRegisterBusinessRuleScreen(t *testing.T) {
	app, _ := newTestApp(t, nil)

	input := registerBody(1, "closed@example.com", "alex", 1)
	input.YMMember = false
	input.CGLeader = ""
	input.IsChristian = "attending_other"
	input.EventSource = "friend"

	status, body := doJSON(t, app, "POST", "/api/register", input)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d (%v)", status, body)
	}
	if body["registrationUnavailable"] != true {
		t.Errorf("expected registrationUnavailable flag, got %v", body)
	}
}

func TestRegisterSurvivesSheetsFailure(t *testing.T) {
	failing := &fakeAppender{err: errors.New("credential parse failure")}
	app, _ := newTestApp(t, failing)

	status, body := doJSON(t, app, "POST", "/api/register", registerBody(1, "one@example.com", "alex", 1))
	if status != http.StatusOK {
		t.Fatalf("register must succeed despite sheets failure, got %d (%v)", status, body)
	}
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, body := doJSON(t, app, "GET", "/api/health-check", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body)
	}
}

func TestTeamMembersEndpoint(t *testing.T) {
	app, _ := newTestApp(t, nil)

	for i, line := range []int{5, 2, 4} {
		hero := models.Heroes[i].ID
		email := fmt.Sprintf("m%d@example.com", line)
		status, body := doJSON(t, app, "POST", "/api/register", registerBody(line, email, hero, 1))
		if status != http.StatusOK {
			t.Fatalf("seed registration failed: %d (%v)", status, body)
		}
	}

	status, body := doJSON(t, app, "GET", "/api/team-members?teamId=1", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	members, ok := body["members"].([]any)
	if !ok || len(members) != 3 {
		t.Fatalf("expected 3 members, got %v", body["members"])
	}
	var lastLine float64
	for _, raw := range members {
		member := raw.(map[string]any)
		line := member["line_number"].(float64)
		if line <= lastLine {
			t.Errorf("members not ordered by line: %v after %v", line, lastLine)
		}
		lastLine = line
	}

	// Missing teamId is rejected.
	status, _ = doJSON(t, app, "GET", "/api/team-members", nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 without teamId, got %d", status)
	}
}

func TestHeroAvailabilityEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest("GET", "/api/hero-availability?teamId=1", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var statuses []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(statuses) != len(models.Heroes) {
		t.Fatalf("expected %d rows, got %d", len(models.Heroes), len(statuses))
	}
	for _, st := range statuses {
		if st["isAvailable"] != true {
			t.Errorf("expected every hero available on a fresh team: %v", st)
		}
	}

	// Flip one flag through the write endpoint.
	status, _ := doJSON(t, app, "POST", "/api/hero-availability", map[string]any{
		"teamId": 1, "heroId": "rex", "isAvailable": false,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 updating availability, got %d", status)
	}

	status, body := doJSON(t, app, "GET", "/api/team-allocation?teamId=1", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	alloc := body["allocation"].(map[string]any)
	available := alloc["availableHeroes"].([]any)
	if len(available) != len(models.Heroes)-1 {
		t.Errorf("expected %d available heroes after flip, got %d", len(models.Heroes)-1, len(available))
	}
}

func TestTeamFullBlocksAllocation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	start, end := models.LineRange(2)
	for i := start; i <= end; i++ {
		hero := models.Heroes[i-start].ID
		email := fmt.Sprintf("full%d@example.com", i)
		status, body := doJSON(t, app, "POST", "/api/register", registerBody(i, email, hero, 2))
		if status != http.StatusOK {
			t.Fatalf("seed registration failed: %d (%v)", status, body)
		}
	}

	status, body := doJSON(t, app, "GET", "/api/team-allocation?teamId=2", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	alloc := body["allocation"].(map[string]any)
	if alloc["teamFull"] != true {
		t.Errorf("expected teamFull=true, got %v", alloc)
	}
	if lines := alloc["freeLines"].([]any); len(lines) != 0 {
		t.Errorf("expected no free lines, got %v", lines)
	}
}

func TestInviteEndpoints(t *testing.T) {
	app, db := newTestApp(t, nil)

	// Issue.
	status, body := doJSON(t, app, "POST", "/api/team-invite", map[string]any{"teamId": 3})
	if status != http.StatusOK {
		t.Fatalf("expected 200 issuing invite, got %d (%v)", status, body)
	}
	code, _ := body["inviteCode"].(string)
	if len(code) != 10 {
		t.Fatalf("expected 10-char invite code, got %q", code)
	}
	url, _ := body["inviteUrl"].(string)
	want := "https://ythwknd.example.com/invite/" + code
	if url != want {
		t.Errorf("expected invite URL %q, got %q", want, url)
	}

	// Resolve.
	status, body = doJSON(t, app, "GET", "/api/team-invite?code="+code, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 resolving invite, got %d (%v)", status, body)
	}
	if body["teamId"].(float64) != 3 {
		t.Errorf("expected team 3, got %v", body["teamId"])
	}
	team, _ := models.TeamByID(3)
	if body["teamName"] != team.Name || body["teamColor"] != team.Color {
		t.Errorf("team details mismatch: %v", body)
	}

	// Check returns the same invite.
	status, body = doJSON(t, app, "GET", "/api/team-invite/check?teamId=3", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 checking invite, got %d", status)
	}
	if body["inviteCode"] != code {
		t.Errorf("expected latest invite %q, got %v", code, body)
	}

	// Unknown code.
	status, _ = doJSON(t, app, "GET", "/api/team-invite?code=zzzzzzzzzz", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown code, got %d", status)
	}

	// Expired code.
	db.Model(&models.TeamInvite{}).Where("invite_code = ?", code).
		Update("expires_at", time.Now().Add(-time.Hour))
	status, _ = doJSON(t, app, "GET", "/api/team-invite?code="+code, nil)
	if status != http.StatusGone {
		t.Errorf("expected 410 for expired code, got %d", status)
	}

	// Check now finds nothing.
	status, body = doJSON(t, app, "GET", "/api/team-invite/check?teamId=3", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if _, has := body["inviteCode"]; has {
		t.Errorf("expected empty object for expired invite, got %v", body)
	}
}

func TestSheetsSyncEndpoint(t *testing.T) {
	t.Run("skipped when unconfigured", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		status, body := doJSON(t, app, "POST", "/api/sheets-sync", registerBody(1, "s@example.com", "alex", 1))
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		if body["sheetsSyncSkipped"] != true {
			t.Errorf("expected sheetsSyncSkipped flag, got %v", body)
		}
	})

	t.Run("failed flag on API error", func(t *testing.T) {
		app, _ := newTestApp(t, &fakeAppender{err: errors.New("append failed")})
		status, body := doJSON(t, app, "POST", "/api/sheets-sync", registerBody(1, "s@example.com", "alex", 1))
		if status != http.StatusOK {
			t.Fatalf("expected 200 even on failure, got %d", status)
		}
		if body["sheetsSyncFailed"] != true {
			t.Errorf("expected sheetsSyncFailed flag, got %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		appender := &fakeAppender{}
		app, _ := newTestApp(t, appender)
		status, body := doJSON(t, app, "POST", "/api/sheets-sync", registerBody(1, "s@example.com", "alex", 1))
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		if body["sheetsSyncSkipped"] == true || body["sheetsSyncFailed"] == true {
			t.Errorf("expected clean success, got %v", body)
		}
		if appender.calls != 1 {
			t.Errorf("expected 1 append call, got %d", appender.calls)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		status, _ := doJSON(t, app, "POST", "/api/sheets-sync", map[string]any{"email": "x@example.com"})
		if status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", status)
		}
	})
}

func TestGetTeamsCatalog(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, body := doJSON(t, app, "GET", "/api/teams", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	teams := body["teams"].([]any)
	if len(teams) != models.TeamCount {
		t.Fatalf("expected %d teams, got %d", models.TeamCount, len(teams))
	}
	first := teams[0].(map[string]any)
	if first["lineStart"].(float64) != 1 || first["lineEnd"].(float64) != 5 {
		t.Errorf("team 1 line range wrong: %v", first)
	}
	heroes := body["heroes"].([]any)
	if len(heroes) != len(models.Heroes) {
		t.Errorf("expected %d heroes, got %d", len(models.Heroes), len(heroes))
	}
}
