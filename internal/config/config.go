package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/neocompliance/neocompliance/internal/analyzer"
)

const (
	DefaultConfigDir  = ".neocompliance"
	DefaultConfigFile = "config.yaml"
	DefaultPacksDir   = "packs"
	DefaultLogFile    = "audit.jsonl"

	// EnvPrefix marks environment overrides. A double underscore separates
	// nesting levels: NEOCOMPLIANCE_AUDIT__ENABLED sets audit.enabled.
	EnvPrefix = "NEOCOMPLIANCE_"
)

type Config struct {
	// ConfigDir is ~/.neocompliance; it is derived, never loaded.
	ConfigDir string `koanf:"-"`

	LogLevel    string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string `koanf:"log_format" validate:"oneof=console json"`
	Output      string `koanf:"output" validate:"oneof=text json yaml markdown"`
	CatalogPath string `koanf:"catalog_path"`
	PacksDir    string `koanf:"packs_dir"`

	Audit     AuditConfig         `koanf:"audit"`
	Metrics   MetricsConfig       `koanf:"metrics"`
	Source    SourceConfig        `koanf:"source"`
	Detection analyzer.Thresholds `koanf:"detection"`
}

// AuditConfig controls the JSONL analysis audit trail.
type AuditConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"required_if=Enabled true"`
}

// MetricsConfig controls the Prometheus textfile export. An empty path
// disables it.
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

// SourceConfig bounds document acquisition.
type SourceConfig struct {
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxBytes int64         `koanf:"max_bytes" validate:"gt=0"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults(configDir string) *Config {
	return &Config{
		ConfigDir:   configDir,
		LogLevel:    "info",
		LogFormat:   "console",
		Output:      "text",
		CatalogPath: "",
		PacksDir:    filepath.Join(configDir, DefaultPacksDir),
		Audit: AuditConfig{
			Enabled: false,
			Path:    filepath.Join(configDir, DefaultLogFile),
		},
		Source: SourceConfig{
			Timeout:  15 * time.Second,
			MaxBytes: 5 << 20,
		},
		Detection: analyzer.DefaultThresholds(),
	}
}

// Load layers struct defaults, the YAML config file and NEOCOMPLIANCE_*
// environment variables. configFile overrides ~/.neocompliance/config.yaml;
// only an explicitly named file must exist.
func Load(configFile string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(configDir), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path := configFile
	if path == "" {
		path = filepath.Join(configDir, DefaultConfigFile)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if configFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := Config{ConfigDir: configDir}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.CatalogPath = expandHome(cfg.CatalogPath, homeDir)
	cfg.PacksDir = expandHome(cfg.PacksDir, homeDir)
	cfg.Audit.Path = expandHome(cfg.Audit.Path, homeDir)
	cfg.Metrics.Textfile = expandHome(cfg.Metrics.Textfile, homeDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

var validate = validator.New()

// Validate checks value ranges the loaders cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s has invalid value %v (%s %s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	d := c.Detection
	switch {
	case !d.DefaultCategory.Valid():
		return fmt.Errorf("invalid config: detection.default_category %q is not a known category", d.DefaultCategory)
	case d.Floor < 0 || d.Detect < d.Floor || d.Detect > 100:
		return fmt.Errorf("invalid config: detection thresholds must satisfy 0 <= floor (%v) <= threshold (%v) <= 100", d.Floor, d.Detect)
	case d.DefaultConfidence < 0 || d.DefaultConfidence > 100:
		return fmt.Errorf("invalid config: detection.default_confidence %v out of range 0-100", d.DefaultConfidence)
	case d.Alternatives < 0 || d.Alternatives > 100:
		return fmt.Errorf("invalid config: detection.alternatives_min %v out of range 0-100", d.Alternatives)
	}
	return nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
