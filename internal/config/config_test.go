package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.ViewVariant() != viewstate.VariantRich {
		t.Errorf("ViewVariant() = %q, want rich", cfg.ViewVariant())
	}
	if cfg.ToastDelay() != 3*time.Second {
		t.Errorf("ToastDelay() = %v, want 3s", cfg.ToastDelay())
	}
	if cfg.Assets.TailwindCDN != DefaultTailwindCDN {
		t.Errorf("Assets.TailwindCDN = %q", cfg.Assets.TailwindCDN)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_JSON(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("expected error for missing config")
	}

	configJSON := `{
  "name": "demo",
  "variant": "simple",
  "server": {"host": "0.0.0.0", "port": 8080},
  "toast": {"delay": "1500ms"},
  "metrics": {"enabled": false}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.ViewVariant() != viewstate.VariantSimple {
		t.Errorf("ViewVariant() = %q, want simple", cfg.ViewVariant())
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.ToastDelay() != 1500*time.Millisecond {
		t.Errorf("ToastDelay() = %v, want 1.5s", cfg.ToastDelay())
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %q, want default", cfg.Server.ShutdownTimeout)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `name: yamlish
server:
  port: 9000
catalog: widgets.yaml
publish:
  bucket: site
assets:
  favicon: /favicon.svg
  description: Widget gallery
`
	if err := os.WriteFile(filepath.Join(tmpDir, YAMLConfigFileName), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.CatalogPath() != filepath.Join(tmpDir, "widgets.yaml") {
		t.Errorf("CatalogPath() = %q", cfg.CatalogPath())
	}
	if cfg.Publish.Bucket != "site" || cfg.Publish.Key != DefaultPublishKey {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Assets.Favicon != "/favicon.svg" || cfg.Assets.Description != "Widget gallery" {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing", filepath.Join(tmpDir, "nope.json"), "E100"},
		{"bad json", write("bad.json", "{"), "E101"},
		{"bad yaml", write("bad.yaml", "server: ["), "E101"},
		{"bad variant", write("variant.json", `{"variant":"fancy"}`), "E102"},
		{"bad port", write("port.json", `{"server":{"port":70000}}`), "E102"},
		{"bad delay", write("delay.json", `{"toast":{"delay":"soon"}}`), "E102"},
		{"zero delay", write("zero.json", `{"toast":{"delay":"0s"}}`), "E102"},
		{"unsupported", write("cfg.toml", "name = 'x'"), "E103"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			se, ok := err.(*errors.ShowcaseError)
			if !ok {
				t.Fatalf("error type = %T, want *errors.ShowcaseError", err)
			}
			if se.Code != tt.code {
				t.Errorf("Code = %q, want %q (%v)", se.Code, tt.code, err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with a newline")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want saved", loaded.Name)
	}
}

func TestSave_NoPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("Save without a path should fail")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, YAMLConfigFileName), []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, want)
	}
}

func TestCatalogPath(t *testing.T) {
	cfg := New()
	if cfg.CatalogPath() != "" {
		t.Errorf("CatalogPath() = %q, want empty", cfg.CatalogPath())
	}
	cfg.Catalog = "/abs/catalog.yaml"
	if cfg.CatalogPath() != "/abs/catalog.yaml" {
		t.Errorf("CatalogPath() = %q", cfg.CatalogPath())
	}
}
