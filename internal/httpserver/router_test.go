package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/handler"
	"portfoliokollen/internal/model"
	"portfoliokollen/internal/service/auth"
	"portfoliokollen/internal/service/portfolio"
	"portfoliokollen/internal/store/memory"
)

func newTestRouter(t *testing.T, ready ReadyChecker) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	st := memory.New(log)
	authService := auth.NewService(st, auth.NewMemoryBlacklist(), "test-secret", log)
	portfolioService := portfolio.NewService(st, log)

	return NewRouter(
		handler.NewAuthHandler(authService, log),
		handler.NewProjectHandler(portfolioService, log),
		handler.NewActivityHandler(portfolioService, log),
		handler.NewMilestoneHandler(portfolioService, log),
		handler.NewDependencyHandler(portfolioService, log),
		authService,
		ready,
		log,
	)
}

func doJSON(t *testing.T, r *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func sessionToken(t *testing.T, r *Router) string {
	t.Helper()

	w := doJSON(t, r, "POST", "/register", "", gin.H{"email": "pm@example.com", "password": "pw"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/login", "", gin.H{"email": "pm@example.com", "password": "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("empty session token")
	}
	return resp.Token
}

func TestHealthAndReadiness(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })

	w := doJSON(t, r, "GET", "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("healthz: status %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/readyz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("readyz: status %d", w.Code)
	}
}

func TestReadinessReportsStoreFailure(t *testing.T) {
	r := newTestRouter(t, func() error { return errors.New("connection refused") })

	w := doJSON(t, r, "GET", "/readyz", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("readyz with failing store: status %d", w.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })

	w := doJSON(t, r, "GET", "/projects", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", w.Code)
	}

	w = doJSON(t, r, "GET", "/projects", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", w.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })
	token := sessionToken(t, r)

	if w := doJSON(t, r, "GET", "/projects", token, nil); w.Code != http.StatusOK {
		t.Fatalf("before logout: status %d", w.Code)
	}

	if w := doJSON(t, r, "POST", "/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout: status %d, body %s", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, "GET", "/projects", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("after logout: status %d, want 401", w.Code)
	}
}

func TestProjectCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })
	token := sessionToken(t, r)

	w := doJSON(t, r, "POST", "/projects", token, gin.H{
		"name":       "Cloud migration",
		"status":     model.StatusPlanned,
		"start_date": "2024-05-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created model.Project
	decode(t, w, &created)
	if created.ID == "" || created.Name != "Cloud migration" {
		t.Fatalf("create response: %+v", created)
	}

	w = doJSON(t, r, "GET", "/projects/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}

	w = doJSON(t, r, "PUT", "/projects/"+created.ID, token, gin.H{"status": model.StatusInProgress})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}
	var updated model.Project
	decode(t, w, &updated)
	if updated.Status != model.StatusInProgress || updated.Name != "Cloud migration" {
		t.Errorf("update response: %+v", updated)
	}

	w = doJSON(t, r, "DELETE", "/projects/"+created.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/projects/"+created.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", w.Code)
	}

	// Idempotent: deleting again still succeeds.
	w = doJSON(t, r, "DELETE", "/projects/"+created.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("second delete: status %d, want 204", w.Code)
	}
}

func TestValidationAndNotFoundMapping(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })
	token := sessionToken(t, r)

	// Nameless project fails validation.
	w := doJSON(t, r, "POST", "/projects", token, gin.H{"status": model.StatusPlanned})
	if w.Code != http.StatusBadRequest {
		t.Errorf("nameless project: status %d, want 400", w.Code)
	}

	// Self-dependency fails validation.
	w = doJSON(t, r, "POST", "/dependencies", token, gin.H{
		"from_activity_id": "a",
		"to_activity_id":   "a",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("self dependency: status %d, want 400", w.Code)
	}

	// Updating an unknown project is 404.
	w = doJSON(t, r, "PUT", "/projects/missing", token, gin.H{"name": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing: status %d, want 404", w.Code)
	}

	// Details for an unknown project is 404.
	w = doJSON(t, r, "GET", "/projects/missing/details", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("details missing: status %d, want 404", w.Code)
	}
}

func TestProjectDetailsOverHTTP(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })
	token := sessionToken(t, r)

	var project model.Project
	w := doJSON(t, r, "POST", "/projects", token, gin.H{"name": "Detailed"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: status %d", w.Code)
	}
	decode(t, w, &project)

	var a1, a2 model.Activity
	w = doJSON(t, r, "POST", "/projects/"+project.ID+"/activities", token, gin.H{"name": "first", "start_date": "2024-05-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create activity: status %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &a1)
	w = doJSON(t, r, "POST", "/projects/"+project.ID+"/activities", token, gin.H{"name": "second", "start_date": "2024-06-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create activity: status %d", w.Code)
	}
	decode(t, w, &a2)

	w = doJSON(t, r, "POST", "/projects/"+project.ID+"/milestones", token, gin.H{"name": "BP1", "date": "2024-07-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create milestone: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/dependencies", token, gin.H{
		"from_activity_id": a2.ID,
		"to_activity_id":   a1.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create dependency: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/projects/"+project.ID+"/details", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("details: status %d, body %s", w.Code, w.Body.String())
	}
	var details model.ProjectDetails
	decode(t, w, &details)

	if details.Project.ID != project.ID {
		t.Errorf("wrong project in details: %+v", details.Project)
	}
	if len(details.Activities) != 2 || details.Activities[0].Name != "first" {
		t.Errorf("wrong activities: %+v", details.Activities)
	}
	if len(details.Milestones) != 1 {
		t.Errorf("wrong milestones: %+v", details.Milestones)
	}
	if len(details.Dependencies) != 1 || details.Dependencies[0].FromActivityID != a2.ID {
		t.Errorf("wrong dependencies: %+v", details.Dependencies)
	}
}

func TestActivityRoutesBindProjectFromPath(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })
	token := sessionToken(t, r)

	var project model.Project
	w := doJSON(t, r, "POST", "/projects", token, gin.H{"name": "Scoped"})
	decode(t, w, &project)

	// project_id in the body is ignored; the path wins.
	var a model.Activity
	w = doJSON(t, r, "POST", "/projects/"+project.ID+"/activities", token, gin.H{
		"name":       "task",
		"project_id": "somewhere-else",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create activity: status %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &a)
	if a.ProjectID != project.ID {
		t.Errorf("activity bound to %q, want %q", a.ProjectID, project.ID)
	}

	w = doJSON(t, r, "GET", "/projects/"+project.ID+"/activities", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list activities: status %d", w.Code)
	}
}

func TestRegisterConflictAndLoginFailure(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })

	w := doJSON(t, r, "POST", "/register", "", gin.H{"email": "x@example.com", "password": "pw"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/register", "", gin.H{"email": "x@example.com", "password": "pw"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: status %d, want 409", w.Code)
	}

	w = doJSON(t, r, "POST", "/login", "", gin.H{"email": "x@example.com", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login: status %d, want 401", w.Code)
	}

	w = doJSON(t, r, "POST", "/login", "", gin.H{"email": "x@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing password: status %d, want 400", w.Code)
	}
}

func TestTraceHeaderPropagation(t *testing.T) {
	r := newTestRouter(t, func() error { return nil })

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Errorf("incoming trace id not honored: got %q", got)
	}

	req = httptest.NewRequest("GET", "/healthz", nil)
	w = httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	if w.Header().Get("X-Trace-ID") == "" {
		t.Error("expected a generated trace id")
	}
}
