package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.Catalog.Source != CatalogSQLite || !cfg.Catalog.Seed {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.HTTP.ReadHeaderTimeout != 10*time.Second {
		t.Errorf("read header timeout = %v", cfg.HTTP.ReadHeaderTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("expected error for a missing --config file")
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeFile(t, "config.yml", `
http:
  port: "9090"
  write_timeout: 5s
log:
  level: debug
  format: json
catalog:
  source: builtin
rate_limit:
  rps: 2
  burst: 4
`)
	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "9090" || cfg.HTTP.WriteTimeout != 5*time.Second {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Catalog.Source != CatalogBuiltin {
		t.Errorf("catalog source = %q", cfg.Catalog.Source)
	}
	if cfg.RateLimit.RPS != 2 || cfg.RateLimit.Burst != 4 {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "http:\n  port: \"9090\"\n")
	t.Setenv("HEATER_HTTP_PORT", "7070")
	t.Setenv("HEATER_DB_PATH", "/tmp/other.db")

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.HTTP.Port)
	}
	if cfg.DB.Path != "/tmp/other.db" {
		t.Errorf("db path = %q", cfg.DB.Path)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown catalog source", "catalog:\n  source: postgres\n"},
		{"zero burst", "rate_limit:\n  enabled: true\n  burst: 0\n"},
		{"zero ws limit", "ws:\n  max_message_bytes: 0\n"},
		{"origin without scheme", "cors:\n  allowed_origins:\n    - heater.example\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(viper.New(), writeFile(t, "config.yml", tt.body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env must be ignored: %v", err)
	}

	path := writeFile(t, ".env", "HEATER_LOG_LEVEL=warn\n")
	t.Setenv("HEATER_LOG_LEVEL", "")
	os.Unsetenv("HEATER_LOG_LEVEL")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("HEATER_LOG_LEVEL"); got != "warn" {
		t.Fatalf("HEATER_LOG_LEVEL = %q, want warn", got)
	}
}

func TestHTTPConfig_Addr(t *testing.T) {
	cases := map[string]string{"8080": ":8080", ":9000": ":9000"}
	for in, want := range cases {
		if got := (HTTPConfig{Port: in}).Addr(); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
