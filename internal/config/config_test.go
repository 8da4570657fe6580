package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	require.Equal(t, BackendFile, cfg.Store.Backend)
	require.Equal(t, "data", cfg.Store.DataDir)
	require.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	require.Equal(t, 5, cfg.Admin.MaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.Admin.Lockout)
	require.True(t, cfg.MCP.Enabled)
	require.Equal(t, TransportHTTP, cfg.MCP.Transport)
	require.Empty(t, cfg.Admin.PasswordHash)
	require.Empty(t, cfg.Server.TrustedProxies)
	require.False(t, cfg.Server.SecureCookies)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	yaml := `
server:
  port: 9090
  secure_cookies: true
  trusted_proxies:
    - 10.0.0.0/8
store:
  backend: sqlite
  sqlite_path: /var/lib/portfolio.db
admin:
  session_ttl: 2h
  max_attempts: 3
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("PORTFOLIO_CONFIG_PATH", path)
	t.Setenv("PORTFOLIO_SERVER_HOST", "127.0.0.1")
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("PORTFOLIO_MCP_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	require.Equal(t, BackendSQLite, cfg.Store.Backend)
	require.Equal(t, "/var/lib/portfolio.db", cfg.Store.SQLitePath)
	require.Equal(t, 2*time.Hour, cfg.Admin.SessionTTL)
	require.Equal(t, 3, cfg.Admin.MaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.Admin.Lockout, "unset keys keep defaults")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "$2a$10$abc", cfg.Admin.PasswordHash)
	require.False(t, cfg.MCP.Enabled)
	require.True(t, cfg.Server.SecureCookies)
	require.Equal(t, []string{"10.0.0.0/8"}, cfg.Server.TrustedProxies)
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_PORT", "eighty")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := Default()
	bad.Store.Backend = "postgres"
	require.Error(t, bad.Validate())

	bad = Default()
	bad.Server.Port = 70000
	require.Error(t, bad.Validate())

	bad = Default()
	bad.Admin.MaxAttempts = 0
	require.Error(t, bad.Validate())

	bad = Default()
	bad.Server.TrustedProxies = []string{"not-an-ip"}
	require.Error(t, bad.Validate())

	bad = Default()
	bad.MCP.Transport = "websocket"
	require.Error(t, bad.Validate())

	bad = Default()
	bad.MCP.Transport = TransportStdio
	bad.MCP.Enabled = false
	require.Error(t, bad.Validate())
}

func TestLoadStdioTransport(t *testing.T) {
	t.Setenv("PORTFOLIO_MCP_TRANSPORT", "stdio")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, TransportStdio, cfg.MCP.Transport)
}

func TestLoadProxyAndCookieEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_TRUSTED_PROXIES", "127.0.0.1, 192.168.0.0/16")
	t.Setenv("PORTFOLIO_SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Server.SecureCookies)

	prefixes, err := cfg.Server.TrustedProxyPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	require.Equal(t, "127.0.0.1/32", prefixes[0].String())
	require.Equal(t, "192.168.0.0/16", prefixes[1].String())
}

func TestLoadInvalidSecureCookies(t *testing.T) {
	t.Setenv("PORTFOLIO_SECURE_COOKIES", "sometimes")
	_, err := Load()
	require.Error(t, err)
}
