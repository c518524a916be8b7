package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// SettingsFile is the TOML layout of the organization settings
type SettingsFile struct {
	Organization SettingsOrganization `toml:"organization"`
	Program      SettingsProgram      `toml:"program"`
}

type SettingsOrganization struct {
	Name     string `toml:"name"`
	Currency string `toml:"currency"`
}

type SettingsProgram struct {
	Standard          string `toml:"standard"`
	ReviewCycleMonths int    `toml:"review_cycle_months"`
}

// Validate checks the values present in the file. Missing values fall back to defaults.
func (s *SettingsFile) Validate() error {
	if s.Program.ReviewCycleMonths < 0 {
		return goerr.Wrap(ErrInvalidConfig, "review cycle must not be negative",
			goerr.V(FieldKey, "program.review_cycle_months"), goerr.V(ValueKey, s.Program.ReviewCycleMonths))
	}
	return nil
}

// ToModel merges the file over the default settings
func (s *SettingsFile) ToModel() *model.Settings {
	settings := model.DefaultSettings()
	if s.Organization.Name != "" {
		settings.OrganizationName = s.Organization.Name
	}
	if s.Organization.Currency != "" {
		settings.Currency = s.Organization.Currency
	}
	if s.Program.Standard != "" {
		settings.Standard = s.Program.Standard
	}
	if s.Program.ReviewCycleMonths > 0 {
		settings.ReviewCycleMonths = s.Program.ReviewCycleMonths
	}
	return settings
}

// LoadSettings loads the organization settings from a TOML file
func LoadSettings(path string) (*model.Settings, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, err.Error(), goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V(ConfigPathKey, path))
	}

	var file SettingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML settings",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "settings validation failed", goerr.V(ConfigPathKey, path))
	}

	return file.ToModel(), nil
}

// Settings holds CLI flags for the organization settings and record checks
type Settings struct {
	path             string
	strictReferences bool
}

func (x *Settings) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "settings",
			Usage:       "Path to the organization settings TOML file",
			Category:    "Settings",
			Sources:     cli.EnvVars("CONTINUUM_SETTINGS"),
			Destination: &x.path,
		},
		&cli.BoolFlag{
			Name:        "strict-references",
			Usage:       "Reject records referring to missing resources or activities",
			Category:    "Settings",
			Sources:     cli.EnvVars("CONTINUUM_STRICT_REFERENCES"),
			Destination: &x.strictReferences,
		},
	}
}

func (x Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Bool("strict_references", x.strictReferences),
	)
}

// StrictReferences reports whether dangling references are rejected
func (x *Settings) StrictReferences() bool {
	return x.strictReferences
}

// Configure returns the settings from the file, or the defaults without one
func (x *Settings) Configure() (*model.Settings, error) {
	if x.path == "" {
		return model.DefaultSettings(), nil
	}
	return LoadSettings(x.path)
}
