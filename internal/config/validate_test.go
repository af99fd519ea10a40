package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cex.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.DataModels.Label != "datamodels" {
		t.Fatalf("Label = %q, want datamodels", cfg.DataModels.Label)
	}
	if cfg.DataModels.ModelColumn != "Model" || cfg.DataModels.CollectionColumn != "Collection" {
		t.Fatalf("unexpected columns: %+v", cfg.DataModels)
	}
	if cfg.Fetch.Timeout != 30 {
		t.Fatalf("Timeout = %d, want 30", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MaxBytes != 50<<20 {
		t.Fatalf("MaxBytes = %d", cfg.Fetch.MaxBytes)
	}
	if cfg.Serve.Addr != ":8090" {
		t.Fatalf("Addr = %q", cfg.Serve.Addr)
	}
	if !cfg.IncludeRelationHeader() {
		t.Fatal("relation header should be included by default")
	}
}

func TestValidate_SameColumns(t *testing.T) {
	cfg := &Config{DataModels: DataModels{ModelColumn: "X", CollectionColumn: "X"}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "both") {
		t.Fatalf("expected duplicate column error, got %v", err)
	}
}

func TestValidate_ColumnWithSeparator(t *testing.T) {
	cfg := &Config{DataModels: DataModels{ModelColumn: "A|B"}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "separator") {
		t.Fatalf("expected separator error, got %v", err)
	}
}

func TestValidate_MarkerInLabel(t *testing.T) {
	cfg := &Config{DataModels: DataModels{Label: "#!datamodels"}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "marker") {
		t.Fatalf("expected marker error, got %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{Fetch: Fetch{Timeout: -1}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestValidate_BadAddr(t *testing.T) {
	cfg := &Config{Serve: Serve{Addr: "8090"}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "addr") {
		t.Fatalf("expected addr error, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `datamodels:
  model-column: Kind
relations:
  include-header: false
fetch:
  timeout: 5
  user-agent: test-agent
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataModels.ModelColumn != "Kind" {
		t.Fatalf("ModelColumn = %q, want Kind", cfg.DataModels.ModelColumn)
	}
	if cfg.DataModels.CollectionColumn != "Collection" {
		t.Fatalf("CollectionColumn = %q, want default", cfg.DataModels.CollectionColumn)
	}
	if cfg.IncludeRelationHeader() {
		t.Fatal("include-header: false was ignored")
	}
	if cfg.Fetch.TimeoutDuration() != 5*time.Second {
		t.Fatalf("TimeoutDuration = %v", cfg.Fetch.TimeoutDuration())
	}
	if cfg.Fetch.UserAgent != "test-agent" {
		t.Fatalf("UserAgent = %q", cfg.Fetch.UserAgent)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "datamodels: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := writeConfig(t, "serve:\n  addr: \"127.0.0.1:9000\"\n")
	cfg, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Serve.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q", cfg.Serve.Addr)
	}
}

func TestResolve_EnvVar(t *testing.T) {
	path := writeConfig(t, "fetch:\n  timeout: 7\n")
	t.Setenv("CEX_CONFIG", path)
	cfg, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fetch.Timeout != 7 {
		t.Fatalf("Timeout = %d, want 7", cfg.Fetch.Timeout)
	}
}

func TestResolve_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("CEX_CONFIG", "")
	t.Chdir(t.TempDir())
	cfg, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataModels.ModelColumn != "Model" {
		t.Fatalf("expected defaults, got %+v", cfg.DataModels)
	}
}

func TestResolve_MissingExplicitPath(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}
