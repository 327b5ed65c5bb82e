package uniset

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .uniset.yaml configuration file: default CLI
// flags, read from a single small YAML document walked up from the
// current directory rather than a layered/merged config system.
type Config struct {
	// IgnoreSpace sets the default for --ignore-space.
	IgnoreSpace bool `yaml:"ignore_space,omitempty"`

	// CaseMode sets the default case-folding mode: "none",
	// "insensitive", "simple-insensitive", or "add-mappings".
	CaseMode string `yaml:"case_mode,omitempty"`

	// Ruleset is the default ruleset file path, used when a command
	// accepts --ruleset but none is given.
	Ruleset string `yaml:"ruleset,omitempty"`

	// LogLevel is a zap log level name ("debug", "info", "warn",
	// "error"). It is read from the file, but no command uses it.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfigNames are the filenames LoadConfig searches for.
var DefaultConfigNames = []string{".uniset.yaml", ".uniset.yml", "uniset.yaml", "uniset.yml"}

// LoadConfig finds and loads the nearest .uniset.yaml, walking up from
// dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking
// up to the filesystem root.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for d := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(d)
		if parent == d {
			return "", os.ErrNotExist
		}
		d = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveCaseMode maps the config's string case mode to a CaseMode,
// defaulting to CaseNone for an empty or unrecognised value.
func (c *Config) ResolveCaseMode() CaseMode {
	if c == nil {
		return CaseNone
	}
	switch c.CaseMode {
	case "insensitive":
		return CaseInsensitive
	case "simple-insensitive":
		return CaseSimpleInsensitive
	case "add-mappings":
		return CaseAddMappings
	default:
		return CaseNone
	}
}
