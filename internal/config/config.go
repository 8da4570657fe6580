package config

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// MCP transports.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Admin  AdminConfig  `yaml:"admin"`
	MCP    MCPConfig    `yaml:"mcp"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// TrustedProxies are IPs or CIDRs allowed to set the client address via
	// X-Forwarded-For or X-Real-IP. Empty means the TCP peer is always used.
	TrustedProxies []string `yaml:"trusted_proxies"`
	// SecureCookies marks the admin session cookie Secure. Enable behind HTTPS.
	SecureCookies bool `yaml:"secure_cookies"`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare IP becomes a single-host prefix.
func (s ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, raw := range s.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StoreConfig struct {
	Backend     string `yaml:"backend"`
	DataDir     string `yaml:"data_dir"`
	FallbackDir string `yaml:"fallback_dir"`
	SQLitePath  string `yaml:"sqlite_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path enables a size-capped log file in addition to stderr.
	Path string `yaml:"path"`
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash. Leave empty to disable the admin gate.
	PasswordHash string        `yaml:"password_hash"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	MaxAttempts  int           `yaml:"max_attempts"`
	Lockout      time.Duration `yaml:"lockout"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
	// Transport is "http" (mounted at /mcp) or "stdio" (no HTTP listener).
	Transport string `yaml:"transport"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: StoreConfig{
			Backend:     BackendFile,
			DataDir:     "data",
			FallbackDir: filepath.Join(os.TempDir(), "portfolio"),
			SQLitePath:  filepath.Join("data", "portfolio.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
		Admin: AdminConfig{
			SessionTTL:  24 * time.Hour,
			MaxAttempts: 5,
			Lockout:     15 * time.Minute,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: TransportHTTP,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("PORTFOLIO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PORTFOLIO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORTFOLIO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORTFOLIO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if proxies := os.Getenv("PORTFOLIO_TRUSTED_PROXIES"); proxies != "" {
		cfg.Server.TrustedProxies = strings.Split(proxies, ",")
	}
	if secure := os.Getenv("PORTFOLIO_SECURE_COOKIES"); secure != "" {
		v, err := strconv.ParseBool(secure)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORTFOLIO_SECURE_COOKIES: %w", err)
		}
		cfg.Server.SecureCookies = v
	}
	if backend := os.Getenv("PORTFOLIO_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if dir := os.Getenv("PORTFOLIO_DATA_DIR"); dir != "" {
		cfg.Store.DataDir = dir
	}
	if dir := os.Getenv("PORTFOLIO_FALLBACK_DIR"); dir != "" {
		cfg.Store.FallbackDir = dir
	}
	if path := os.Getenv("PORTFOLIO_SQLITE_PATH"); path != "" {
		cfg.Store.SQLitePath = path
	}
	if level := os.Getenv("PORTFOLIO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("PORTFOLIO_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if hash := os.Getenv("PORTFOLIO_ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.Admin.PasswordHash = hash
	}
	if enabled := os.Getenv("PORTFOLIO_MCP_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORTFOLIO_MCP_ENABLED: %w", err)
		}
		cfg.MCP.Enabled = v
	}
	if mode := os.Getenv("PORTFOLIO_MCP_TRANSPORT"); mode != "" {
		cfg.MCP.Transport = mode
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return err
	}
	switch c.MCP.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("unknown mcp transport %q", c.MCP.Transport)
	}
	if c.MCP.Transport == TransportStdio && !c.MCP.Enabled {
		return fmt.Errorf("mcp transport stdio requires mcp enabled")
	}
	if c.Admin.MaxAttempts < 1 {
		return fmt.Errorf("admin max_attempts must be at least 1")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
