package logging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/foliocms/shared-go/env"
)

// Environment variables read by ConfigFromEnv.
const (
	// EnvServiceName sets the service name of the default logger.
	EnvServiceName = "FOLIO_SERVICE_NAME"

	// EnvEnvironment sets the deployment environment.
	EnvEnvironment = "FOLIO_ENV"

	// EnvLogLevel sets the minimum log level.
	EnvLogLevel = "FOLIO_LOG_LEVEL"
)

// Config holds the configuration for a root logger.
//
// The three *bool fields are tri-state so a partially specified config
// does not clobber defaults: nil means "use the default", while an
// explicit false is honored.
type Config struct {
	// Service is the service name recorded on every entry (required).
	Service string `yaml:"service"`

	// Version is the deployed service version.
	Version string `yaml:"version"`

	// Environment is the deployment environment. Defaults to "development".
	Environment string `yaml:"environment"`

	// Level is the minimum enabled level name
	// (trace, debug, info, warn, error, fatal). Defaults to "info".
	Level string `yaml:"level"`

	// Console enables writing to the sink at all. Defaults to true;
	// false makes every emission a no-op at the write stage.
	Console *bool `yaml:"console"`

	// JSON selects single-line JSON output. Defaults to true except in
	// development-like environments, which default to console lines.
	JSON *bool `yaml:"json"`

	// StackTrace enables stack capture on Error/Fatal entries.
	// Defaults to true.
	StackTrace *bool `yaml:"stack_trace"`

	// Metrics enables the per-level emission counters on the shared
	// prometheus registry.
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns a development-oriented configuration for the given
// service name.
func DefaultConfig(service string) Config {
	return Config{
		Service:     service,
		Environment: "development",
		Level:       "info",
	}
}

// ConfigFromEnv builds a Config from process environment variables,
// applying the documented defaults for unset values. The environment is
// read once; later changes are not observed.
func ConfigFromEnv() Config {
	return Config{
		Service:     env.GetDefault(EnvServiceName, "folio"),
		Environment: env.GetDefault(EnvEnvironment, "development"),
		Level:       env.GetDefault(EnvLogLevel, "info"),
	}
}

// LoadConfig reads a Config from a YAML file. Validation of the loaded
// values happens in New.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read logger config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse logger config %s: %w", path, err)
	}
	return cfg, nil
}

// settings is a Config with every default resolved.
type settings struct {
	service     Service
	level       Level
	console     bool
	json        bool
	stackTrace  bool
	development bool
	metrics     bool
}

// resolve validates the config and fills defaults. Construction fails fast
// on a missing service name or an unknown level, since either indicates a
// misconfigured service.
func (c Config) resolve() (settings, error) {
	if c.Service == "" {
		return settings{}, fmt.Errorf("logger config: service name is required")
	}

	levelName := c.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return settings{}, fmt.Errorf("logger config: %w", err)
	}

	environment := c.Environment
	if environment == "" {
		environment = "development"
	}
	development := environment == "development" || environment == "dev" || environment == "local"

	set := settings{
		service: Service{
			Name:        c.Service,
			Version:     c.Version,
			Environment: environment,
		},
		level:       level,
		console:     boolOr(c.Console, true),
		json:        boolOr(c.JSON, !development),
		stackTrace:  boolOr(c.StackTrace, true),
		development: development,
		metrics:     c.Metrics,
	}
	return set, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
