package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/spiffy/internal/validator"
	"github.com/msto63/spiffy/internal/workbook"
	spferror "github.com/msto63/spiffy/pkg/core/error"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPIFFY_"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general" envPrefix:"GENERAL_"`
	Workbook   WorkbookConfig   `toml:"workbook" yaml:"workbook" envPrefix:"WORKBOOK_"`
	Validation ValidationConfig `toml:"validation" yaml:"validation" envPrefix:"VALIDATION_"`
	Watch      WatchConfig      `toml:"watch" yaml:"watch" envPrefix:"WATCH_"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// WorkbookConfig names the sheet and columns of the SPIF master data
type WorkbookConfig struct {
	Sheet                   string `toml:"sheet" yaml:"sheet" env:"SHEET"`
	ApplicationColumn       string `toml:"application_column" yaml:"application_column" env:"APPLICATION_COLUMN"`
	PublicationColumn       string `toml:"publication_column" yaml:"publication_column" env:"PUBLICATION_COLUMN"`
	ApplicationErrorsColumn string `toml:"application_errors_column" yaml:"application_errors_column" env:"APPLICATION_ERRORS_COLUMN"`
	PublicationErrorsColumn string `toml:"publication_errors_column" yaml:"publication_errors_column" env:"PUBLICATION_ERRORS_COLUMN"`
	OutputSuffix            string `toml:"output_suffix" yaml:"output_suffix" env:"OUTPUT_SUFFIX"`
}

// ValidationConfig holds the supported jurisdictions per identifier kind
type ValidationConfig struct {
	ApplicationCountries []string `toml:"application_countries" yaml:"application_countries" env:"APPLICATION_COUNTRIES" envSeparator:","`
	PublicationCountries []string `toml:"publication_countries" yaml:"publication_countries" env:"PUBLICATION_COUNTRIES" envSeparator:","`
}

// WatchConfig holds settings of the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce" env:"DEBOUNCE"`
}

// Duration wraps time.Duration for TOML, YAML and environment parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file (chosen by extension),
// then applies defaults and environment overrides
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, spferror.Newf("config file not found: %s", path).
				WithCode(spferror.CodeConfigError).
				WithOperation("config.Load")
		}
		return nil, spferror.Wrap(err, "failed to read config").
			WithCode(spferror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, spferror.Wrap(err, "failed to parse config").
			WithCode(spferror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.source = path

	return finish(&cfg)
}

// DefaultPaths lists the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{
		"./spiffy.toml",
		"./spiffy.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "spiffy", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from the SPIFFY_CONFIG environment variable
// or the first existing default path. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	loadDotEnv()

	path := os.Getenv(EnvPrefix + "CONFIG")
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return finish(&Config{})
	}

	return Load(path)
}

// Resolve loads the explicit path if set, otherwise falls back to LoadFromEnv
func Resolve(path string) (*Config, error) {
	if path != "" {
		loadDotEnv()
		return Load(path)
	}
	return LoadFromEnv()
}

// loadDotEnv reads ./.env; a missing file is not an error
func loadDotEnv() {
	_ = godotenv.Load()
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, spferror.Wrap(err, "failed to parse environment overrides").
			WithCode(spferror.CodeConfigError).
			WithOperation("config.finish")
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Workbook
	layout := workbook.DefaultLayout()
	if c.Workbook.Sheet == "" {
		c.Workbook.Sheet = layout.Sheet
	}
	if c.Workbook.ApplicationColumn == "" {
		c.Workbook.ApplicationColumn = layout.ApplicationColumn
	}
	if c.Workbook.PublicationColumn == "" {
		c.Workbook.PublicationColumn = layout.PublicationColumn
	}
	if c.Workbook.ApplicationErrorsColumn == "" {
		c.Workbook.ApplicationErrorsColumn = layout.ApplicationErrorsColumn
	}
	if c.Workbook.PublicationErrorsColumn == "" {
		c.Workbook.PublicationErrorsColumn = layout.PublicationErrorsColumn
	}
	if c.Workbook.OutputSuffix == "" {
		c.Workbook.OutputSuffix = "-results"
	}

	// Validation
	if len(c.Validation.ApplicationCountries) == 0 {
		c.Validation.ApplicationCountries = append([]string(nil), validator.DefaultCountries...)
	}
	if len(c.Validation.PublicationCountries) == 0 {
		c.Validation.PublicationCountries = append([]string(nil), validator.DefaultCountries...)
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 500 * time.Millisecond
	}
}

// normalize trims list entries coming from comma-separated overrides
func (c *Config) normalize() {
	c.Validation.ApplicationCountries = trimAll(c.Validation.ApplicationCountries)
	c.Validation.PublicationCountries = trimAll(c.Validation.PublicationCountries)
	c.General.LogLevel = strings.ToLower(strings.TrimSpace(c.General.LogLevel))
	c.General.LogFormat = strings.ToLower(strings.TrimSpace(c.General.LogFormat))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks the configuration for values the checker cannot work with
func (c *Config) Validate() error {
	var problems []string

	names := map[string]string{
		"workbook.sheet":                     c.Workbook.Sheet,
		"workbook.application_column":        c.Workbook.ApplicationColumn,
		"workbook.publication_column":        c.Workbook.PublicationColumn,
		"workbook.application_errors_column": c.Workbook.ApplicationErrorsColumn,
		"workbook.publication_errors_column": c.Workbook.PublicationErrorsColumn,
	}
	for key, v := range names {
		if strings.TrimSpace(v) == "" {
			problems = append(problems, key+" must not be blank")
		}
	}
	if c.Workbook.ApplicationColumn == c.Workbook.PublicationColumn {
		problems = append(problems, "workbook.application_column and workbook.publication_column must differ")
	}
	if c.Workbook.ApplicationErrorsColumn == c.Workbook.PublicationErrorsColumn {
		problems = append(problems, "workbook result columns must differ")
	}

	for key, codes := range map[string][]string{
		"validation.application_countries": c.Validation.ApplicationCountries,
		"validation.publication_countries": c.Validation.PublicationCountries,
	} {
		for _, cc := range codes {
			if !validator.IsCountryCode(cc) {
				problems = append(problems, fmt.Sprintf("%s: %q is not a two-letter upper-case code", key, cc))
			}
		}
	}

	switch c.General.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("general.log_format: %q (want text or json)", c.General.LogFormat))
	}

	if c.Watch.Debounce.Duration < 0 {
		problems = append(problems, "watch.debounce must not be negative")
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return spferror.New("invalid configuration: " + strings.Join(problems, "; ")).
			WithCode(spferror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	return nil
}

// Source returns the file the configuration was read from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Layout returns the workbook names as a workbook.Layout
func (c *Config) Layout() workbook.Layout {
	return workbook.Layout{
		Sheet:                   c.Workbook.Sheet,
		ApplicationColumn:       c.Workbook.ApplicationColumn,
		PublicationColumn:       c.Workbook.PublicationColumn,
		ApplicationErrorsColumn: c.Workbook.ApplicationErrorsColumn,
		PublicationErrorsColumn: c.Workbook.PublicationErrorsColumn,
	}
}

// ValidatorOptions returns the supported jurisdictions as validator.Options
func (c *Config) ValidatorOptions() validator.Options {
	return validator.Options{
		ApplicationCountries: append([]string(nil), c.Validation.ApplicationCountries...),
		PublicationCountries: append([]string(nil), c.Validation.PublicationCountries...),
	}
}
