package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/spiffy/internal/validator"
	"github.com/msto63/spiffy/internal/workbook"
	spferror "github.com/msto63/spiffy/pkg/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.Equal(t, workbook.DefaultLayout(), cfg.Layout())
	assert.Equal(t, "-results", cfg.Workbook.OutputSuffix)
	assert.Equal(t, validator.DefaultCountries, cfg.Validation.ApplicationCountries)
	assert.Equal(t, validator.DefaultCountries, cfg.Validation.PublicationCountries)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce.Duration)
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Source())
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiffy.toml")
	content := `
[general]
log_level = "debug"

[workbook]
sheet = "Stammdaten"
output_suffix = "_checked"

[validation]
application_countries = ["US", "EP"]

[watch]
debounce = "2s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "Stammdaten", cfg.Workbook.Sheet)
	assert.Equal(t, workbook.DefaultApplicationColumn, cfg.Workbook.ApplicationColumn)
	assert.Equal(t, "_checked", cfg.Workbook.OutputSuffix)
	assert.Equal(t, []string{"US", "EP"}, cfg.Validation.ApplicationCountries)
	assert.Equal(t, validator.DefaultCountries, cfg.Validation.PublicationCountries)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce.Duration)
	assert.Equal(t, path, cfg.Source())
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiffy.yaml")
	content := `
general:
  log_format: json
workbook:
  publication_column: "Pub No"
validation:
  publication_countries: [EP, WO]
watch:
  debounce: 100ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, "Pub No", cfg.Workbook.PublicationColumn)
	assert.Equal(t, []string{"EP", "WO"}, cfg.Validation.PublicationCountries)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce.Duration)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiffy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[workbook]\nsheet = \"From File\"\n"), 0o644))

	t.Setenv("SPIFFY_WORKBOOK_SHEET", "From Env")
	t.Setenv("SPIFFY_VALIDATION_APPLICATION_COUNTRIES", "US, JP")
	t.Setenv("SPIFFY_GENERAL_LOG_LEVEL", "WARN")
	t.Setenv("SPIFFY_WATCH_DEBOUNCE", "1s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Workbook.Sheet)
	assert.Equal(t, []string{"US", "JP"}, cfg.Validation.ApplicationCountries)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, time.Second, cfg.Watch.Debounce.Duration)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.True(t, spferror.HasCode(err, spferror.CodeConfigError))

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[workbook\nsheet ="), 0o644))
	_, err = Load(broken)
	require.Error(t, err)
	assert.True(t, spferror.HasCode(err, spferror.CodeConfigError))

	badCodes := filepath.Join(dir, "codes.toml")
	require.NoError(t, os.WriteFile(badCodes, []byte("[validation]\napplication_countries = [\"usa\"]\n"), 0o644))
	_, err = Load(badCodes)
	require.Error(t, err)
	assert.True(t, spferror.HasCode(err, spferror.CodeInvalidConfig))
	assert.Contains(t, err.Error(), `"usa"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"blank sheet", func(c *Config) { c.Workbook.Sheet = "  " }, true},
		{"same identifier columns", func(c *Config) { c.Workbook.PublicationColumn = c.Workbook.ApplicationColumn }, true},
		{"same result columns", func(c *Config) { c.Workbook.PublicationErrorsColumn = c.Workbook.ApplicationErrorsColumn }, true},
		{"lower-case country", func(c *Config) { c.Validation.PublicationCountries = []string{"ep"} }, true},
		{"unknown log format", func(c *Config) { c.General.LogFormat = "xml" }, true},
		{"negative debounce", func(c *Config) { c.Watch.Debounce.Duration = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[workbook]\nsheet = \"Via Env\"\n"), 0o644))

	t.Setenv("SPIFFY_CONFIG", path)
	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "Via Env", cfg.Workbook.Sheet)

	explicit := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("workbook:\n  sheet: Explicit\n"), 0o644))
	cfg, err = Resolve(explicit)
	require.NoError(t, err)
	assert.Equal(t, "Explicit", cfg.Workbook.Sheet)
}

func TestValidatorOptions(t *testing.T) {
	cfg := Default()
	cfg.Validation.ApplicationCountries = []string{"US"}

	opts := cfg.ValidatorOptions()
	opts.ApplicationCountries[0] = "EP"

	assert.Equal(t, []string{"US"}, cfg.Validation.ApplicationCountries, "options must be a copy")

	_, err := validator.New(cfg.ValidatorOptions())
	assert.NoError(t, err)
}
