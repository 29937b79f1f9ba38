package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "tasklist" {
		t.Errorf("app.name = %q, want tasklist", cfg.App.Name)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("server.port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server.shutdown_timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.RateLimit.Enabled || cfg.Server.RateLimit.Burst != 200 {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.Server.RateLimit)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env, got %q", cfg.App.Env)
	}
	if cfg.Web.TemplateDir != "" || cfg.Web.StaticDir != "" {
		t.Errorf("web dirs should default to embedded assets, got %+v", cfg.Web)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  env: production
server:
  port: "9090"
  rate_limit:
    enabled: true
log:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TASKLIST_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IsDevelopment() || cfg.App.Env != "production" {
		t.Errorf("app.env = %q, want production", cfg.App.Env)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("server.port = %q, want 9090", cfg.Server.Port)
	}
	if !cfg.Server.RateLimit.Enabled {
		t.Error("rate limit should be enabled by file")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want env override warn", cfg.Log.Level)
	}
	// untouched keys keep their defaults
	if cfg.Log.Format != "console" {
		t.Errorf("log.format = %q, want console", cfg.Log.Format)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "8000" || cfg.Log.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.CORS.AllowMethods) == 0 {
		t.Error("cors.allow_methods should have defaults")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore Chdir(%q) error = %v", prev, err)
		}
	})
}
