package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/domain/session"
	"github.com/memad/portfolio/internal/filestore"
	"github.com/memad/portfolio/internal/memstore"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "s3cret"

func newTestServer(t *testing.T, gated bool) *httptest.Server {
	t.Helper()
	return newTestServerWithOptions(t, gated, Options{})
}

func newTestServerWithOptions(t *testing.T, gated bool, opts Options) *httptest.Server {
	t.Helper()

	store := filestore.OpenMemory(nil)
	activities := activity.NewService(store.Activity(), nil)

	var cfg session.Config
	if gated {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.PasswordHash = string(hash)
	}

	svcs := Services{
		Projects:      project.NewService(store.Projects(), activities, nil),
		Presentations: presentation.NewService(store.Presentations(), activities, nil),
		Sessions:      session.NewService(memstore.NewSessionRepository(), activities, cfg, nil),
		Activity:      activities,
	}

	server := httptest.NewServer(NewServer(svcs, opts))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func projectIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	list, ok := body["projects"].([]any)
	require.True(t, ok)
	ids := make([]string, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.(map[string]any)["id"].(string))
	}
	return ids
}

func validProject() map[string]any {
	return map[string]any{
		"title":        "A",
		"description":  "d",
		"category":     "Web",
		"status":       "planning",
		"technologies": []string{"TS"},
	}
}

func TestHTTPServer_Health(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_ProjectLifecycle(t *testing.T) {
	server := newTestServer(t, false)
	base := server.URL + "/api/projects"

	status, body := doJSON(t, http.MethodPost, base, "", validProject())
	require.Equal(t, http.StatusCreated, status)
	created := body["project"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "A", created["title"])
	require.Equal(t, "planning", created["status"])

	status, body = doJSON(t, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, projectIDs(t, body), id)

	status, body = doJSON(t, http.MethodGet, base+"/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, created, body["project"])

	status, body = doJSON(t, http.MethodDelete, base+"/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])

	status, body = doJSON(t, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotContains(t, projectIDs(t, body), id)

	status, body = doJSON(t, http.MethodDelete, base+"/"+id, "", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Project not found", body["error"])
}

func TestHTTPServer_CreateValidation(t *testing.T) {
	server := newTestServer(t, false)
	base := server.URL + "/api/projects"

	_, before := doJSON(t, http.MethodGet, base, "", nil)

	for _, field := range []string{"title", "description", "category", "status"} {
		payload := validProject()
		delete(payload, field)
		status, body := doJSON(t, http.MethodPost, base, "", payload)
		require.Equal(t, http.StatusBadRequest, status, field)
		require.NotEmpty(t, body["error"])
	}

	archived := validProject()
	archived["status"] = "archived"
	status, _ := doJSON(t, http.MethodPost, base, "", archived)
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, http.MethodPost, base, "", "{not json")
	require.Equal(t, http.StatusBadRequest, status)

	_, after := doJSON(t, http.MethodGet, base, "", nil)
	require.Equal(t, projectIDs(t, before), projectIDs(t, after))
}

func TestHTTPServer_ReplaceProject(t *testing.T) {
	server := newTestServer(t, false)
	base := server.URL + "/api/projects"

	mismatch := validProject()
	mismatch["id"] = "6"
	status, body := doJSON(t, http.MethodPut, base+"/5", "", mismatch)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Project ID mismatch", body["error"])

	ghost := validProject()
	ghost["id"] = "ghost"
	status, _ = doJSON(t, http.MethodPut, base+"/ghost", "", ghost)
	require.Equal(t, http.StatusNotFound, status)

	_, list := doJSON(t, http.MethodGet, base, "", nil)
	require.Equal(t, []string{"1", "2", "3", "4"}, projectIDs(t, list))

	replacement := validProject()
	replacement["id"] = "2"
	replacement["title"] = "Renamed"
	status, body = doJSON(t, http.MethodPut, base+"/2", "", replacement)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Renamed", body["project"].(map[string]any)["title"])
}

func TestHTTPServer_PresentationSlides(t *testing.T) {
	server := newTestServer(t, false)
	base := server.URL + "/api/presentations"

	status, body := doJSON(t, http.MethodPost, base, "", map[string]any{
		"title": map[string]string{"en": "Deck", "ar": "عرض"},
		"type":  "slides",
		"slides": []map[string]any{
			{"title": map[string]string{"en": "one"}, "color": "red"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	id := body["presentation"].(map[string]any)["id"].(string)

	slide := func(title string) map[string]any {
		return map[string]any{"title": map[string]string{"en": title}, "color": "blue"}
	}

	status, _ = doJSON(t, http.MethodPost, base+"/"+id+"/slides", "", slide("two"))
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, http.MethodPost, base+"/"+id+"/slides", "", slide("three"))
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, http.MethodPut, base+"/"+id+"/slides/order", "", map[string]any{"order": []int{2, 0, 1}})
	require.Equal(t, http.StatusOK, status)
	slides := body["presentation"].(map[string]any)["slides"].([]any)
	require.Equal(t, "three", slides[0].(map[string]any)["title"].(map[string]any)["en"])

	status, _ = doJSON(t, http.MethodPut, base+"/"+id+"/slides/1", "", slide("uno"))
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodPut, base+"/"+id+"/slides/9", "", slide("x"))
	require.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, http.MethodDelete, base+"/"+id+"/slides/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, http.MethodDelete, base+"/"+id+"/slides/0", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["presentation"].(map[string]any)["slides"], 2)

	status, body = doJSON(t, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["presentations"], 4)
}

func TestHTTPServer_AdminGate(t *testing.T) {
	server := newTestServer(t, true)
	projects := server.URL + "/api/projects"
	login := server.URL + "/api/admin/login"

	status, _ := doJSON(t, http.MethodGet, projects, "", nil)
	require.Equal(t, http.StatusOK, status, "reads stay public")

	status, _ = doJSON(t, http.MethodPost, projects, "", validProject())
	require.Equal(t, http.StatusUnauthorized, status)

	status, body := doJSON(t, http.MethodPost, login, "", map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, float64(4), body["remainingAttempts"])

	status, body = doJSON(t, http.MethodPost, login, "", map[string]string{"password": adminPassword})
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)
	require.Len(t, token, 64)

	status, _ = doJSON(t, http.MethodPost, projects, token, validProject())
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, http.MethodGet, server.URL+"/api/admin/session", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["authenticated"])

	status, body = doJSON(t, http.MethodGet, server.URL+"/api/admin/activity?type=project_created", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["activity"], 1)

	status, _ = doJSON(t, http.MethodPost, server.URL+"/api/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodDelete, projects+"/1", token, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestHTTPServer_AdminLockout(t *testing.T) {
	server := newTestServer(t, true)
	login := server.URL + "/api/admin/login"

	for i := 0; i < session.DefaultMaxAttempts-1; i++ {
		status, _ := doJSON(t, http.MethodPost, login, "", map[string]string{"password": "wrong"})
		require.Equal(t, http.StatusUnauthorized, status)
	}

	status, body := doJSON(t, http.MethodPost, login, "", map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusTooManyRequests, status)
	require.Equal(t, float64(15*60), body["retryAfterSeconds"])

	status, _ = doJSON(t, http.MethodPost, login, "", map[string]string{"password": adminPassword})
	require.Equal(t, http.StatusTooManyRequests, status)
}

func TestHTTPServer_LoginWithoutGate(t *testing.T) {
	server := newTestServer(t, false)

	status, _ := doJSON(t, http.MethodPost, server.URL+"/api/admin/login", "", map[string]string{"password": "x"})
	require.Equal(t, http.StatusNotFound, status)

	status, body := doJSON(t, http.MethodGet, server.URL+"/api/admin/session", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, body["gateEnabled"])
}

// loginFrom posts a login with the given X-Real-IP header and returns the response.
func loginFrom(t *testing.T, url, realIP, password string) *http.Response {
	t.Helper()

	data, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url+"/api/admin/login", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if realIP != "" {
		req.Header.Set("X-Real-IP", realIP)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	return resp
}

func TestHTTPServer_LockoutIgnoresForwardedHeaders(t *testing.T) {
	server := newTestServer(t, true)

	statuses := make([]int, 0, 12)
	for i := 0; i < 12; i++ {
		resp := loginFrom(t, server.URL, fmt.Sprintf("10.0.0.%d", i+1), "wrong")
		statuses = append(statuses, resp.StatusCode)
	}

	for i, status := range statuses {
		if i < session.DefaultMaxAttempts-1 {
			require.Equal(t, http.StatusUnauthorized, status, "attempt %d", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, status, "attempt %d", i+1)
		}
	}
}

func TestHTTPServer_LockoutTrustedProxy(t *testing.T) {
	server := newTestServerWithOptions(t, true, Options{
		TrustedProxies: []netip.Prefix{netip.MustParsePrefix("127.0.0.0/8")},
	})

	// Behind a trusted proxy each forwarded client has its own budget.
	for i := 0; i < session.DefaultMaxAttempts+2; i++ {
		resp := loginFrom(t, server.URL, fmt.Sprintf("10.0.0.%d", i+1), "wrong")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "client %d", i+1)
	}

	var last int
	for i := 0; i < session.DefaultMaxAttempts; i++ {
		last = loginFrom(t, server.URL, "10.9.9.9", "wrong").StatusCode
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestHTTPServer_UntrustedPeerKeepsRemoteAddr(t *testing.T) {
	trusted := []netip.Prefix{netip.MustParsePrefix("192.168.0.0/16")}

	var seen string
	handler := TrustedRealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClientKey(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:4000"
	req.Header.Set("X-Real-IP", "10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "203.0.113.7", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:4000"
	req.Header.Set("X-Real-IP", "10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "10.0.0.1", seen)
}

func TestHTTPServer_SecureCookies(t *testing.T) {
	plain := newTestServer(t, true)
	resp := loginFrom(t, plain.URL, "", adminPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, resp.Cookies(), 1)
	require.False(t, resp.Cookies()[0].Secure)

	secure := newTestServerWithOptions(t, true, Options{SecureCookies: true})
	resp = loginFrom(t, secure.URL, "", adminPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Set-Cookie"), "Secure")
	require.True(t, resp.Cookies()[0].Secure)
}
