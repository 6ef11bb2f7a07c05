package harness

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable LoadDefault consults for the
// configuration file path.
const EnvConfigPath = "SHAPE_HARNESS_CONFIG"

// defaultConfigFiles are tried in order by LoadDefault when EnvConfigPath is
// not set.
var defaultConfigFiles = []string{"harness.yaml", "harness.yml", "harness.json"}

// Load reads a Provider configuration from a YAML or JSON file, chosen by
// extension, into the generic tree New consumes.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
	return cfg, nil
}

// LoadDefault resolves the default Provider configuration. A .env file in the
// working directory is sourced first if present. The configuration file path
// is taken from the SHAPE_HARNESS_CONFIG environment variable, else the first
// of harness.yaml, harness.yml or harness.json that exists; when none does,
// the built-in DefaultConfig is returned. Unreadable or malformed files are
// errors.
func LoadDefault() (map[string]any, error) {
	_ = godotenv.Load()

	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, path := range defaultConfigFiles {
		cfg, err := Load(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return DefaultConfig(), nil
}
