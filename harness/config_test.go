package harness

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "harness.yaml", `
echo: {}
mini:
  group: test
  entries:
    - echo
    - ping
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New on loaded config returned error: %v", err)
	}
	utils := p.Utilities()
	if len(utils) != 2 {
		t.Fatalf("expected 2 utilities, got %d", len(utils))
	}
	if got := utils["mini"].Names(); len(got) != 2 {
		t.Errorf("mini: expected 2 entries, got %v", got)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "harness.json", `{"echo": {}, "gen": {"entries": ["uuid"]}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New on loaded config returned error: %v", err)
	}
	u := p.Utilities()["gen"]
	if !u.Has("uuid") || u.Has("when") {
		t.Errorf("gen: expected only the uuid entry, got %v", u.Names())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist for missing file, got %v", err)
	}

	bad := writeFile(t, "harness.yaml", "echo: [broken")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error for malformed YAML")
	}

	txt := writeFile(t, "harness.txt", "echo")
	if _, err := Load(txt); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unsupported extension, got %v", err)
	}
}

func TestLoadDefaultFromEnv(t *testing.T) {
	path := writeFile(t, "harness.yaml", "echo: {}\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault returned error: %v", err)
	}
	if _, ok := cfg["echo"]; !ok || len(cfg) != 1 {
		t.Errorf("expected config from %s, got %v", path, cfg)
	}
}

func TestLoadDefaultFallsBack(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Chdir(t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault returned error: %v", err)
	}

	// No config file anywhere: the built-in defaults apply and are valid.
	if len(cfg) == 0 {
		t.Fatal("expected built-in default config")
	}
	if _, err := New(cfg); err != nil {
		t.Errorf("default config must be valid: %v", err)
	}
}
