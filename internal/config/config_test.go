package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dropDatabas3/teamster/internal/config"
)

func TestDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr=%s", cfg.Server.Addr)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("driver=%s", cfg.Storage.Driver)
	}
	if cfg.App.Env != "dev" || cfg.Log.Level != "info" {
		t.Fatalf("env=%s level=%s", cfg.App.Env, cfg.Log.Level)
	}
}

func TestYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  addr: ":9090"
storage:
  driver: postgres
  dsn: postgres://localhost/teams
  postgres:
    conn_max_lifetime: 5m
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEAMSTER_STORAGE_DRIVER", "redis")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr=%s", cfg.Server.Addr)
	}
	// el entorno pisa al YAML
	if cfg.Storage.Driver != "redis" {
		t.Fatalf("driver=%s", cfg.Storage.Driver)
	}
}

func TestInvalidDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
storage:
  postgres:
    conn_max_lifetime: nope
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
