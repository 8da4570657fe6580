package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/memad/portfolio/internal/app"
	"github.com/memad/portfolio/internal/config"
)

// Options selects the backend and admin gate of a test server.
type Options struct {
	// Backend defaults to the file store.
	Backend string
	// DataDir reuses a data directory, e.g. to restart over the same files.
	DataDir string
	// Password enables the admin gate.
	Password string
	// SecureCookies marks the admin cookie Secure.
	SecureCookies bool
}

type TestServer struct {
	Server   *httptest.Server
	App      *app.App
	DataDir  string
	Password string
}

func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.Store.Backend = config.BackendFile
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = t.TempDir()
	}
	cfg.Store.DataDir = dataDir
	cfg.Store.FallbackDir = filepath.Join(t.TempDir(), "fallback")
	cfg.Store.SQLitePath = filepath.Join(dataDir, "portfolio.db")
	cfg.Server.SecureCookies = opts.SecureCookies
	if opts.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.Admin.PasswordHash = string(hash)
	}

	a, err := app.New(context.Background(), cfg, "test", nil)
	require.NoError(t, err)

	server := httptest.NewServer(a.Handler)
	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return &TestServer{
		Server:   server,
		App:      a,
		DataDir:  dataDir,
		Password: opts.Password,
	}
}

// Do sends a JSON request and decodes the JSON response body, if any.
func (ts *TestServer) Do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

// Login returns an admin token for the configured password.
func (ts *TestServer) Login(t *testing.T) string {
	t.Helper()
	status, body := ts.Do(t, http.MethodPost, "/api/admin/login", "", map[string]any{"password": ts.Password})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// MCPSession connects an MCP client over the streamable HTTP endpoint.
func (ts *TestServer) MCPSession(t *testing.T, token string) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := &http.Client{Transport: bearerTransport{token: token, base: http.DefaultTransport}}
	transport := &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(context.Background(), transport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if b.token == "" {
		return b.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(req)
}
