// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

// EnvConfigFile names the environment variable holding the configuration file path.
const EnvConfigFile = "GH_CONTENT_MODELS_CONFIG"

// DefaultConfigFile is read when EnvConfigFile is unset.
const DefaultConfigFile = "config.yaml"

const (
	// FormatJSON renders payloads as JSON.
	FormatJSON = "json"
	// FormatYAML renders payloads as YAML.
	FormatYAML = "yaml"
)

// Payload kinds accepted by the decode command.
const (
	KindAuto = "auto"
	KindBlob = "blob"
	KindFile = "file"
	KindDir  = "dir"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Decode is a struct that contains the configuration of the decode command.
	Decode decode
)

type global struct {
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
	// Output controls how payloads are rendered.
	Output struct {
		Format string `yaml:"format,omitempty" default:"json"`
		// Compact disables JSON indentation.
		Compact bool `yaml:"compact,omitempty"`
	} `yaml:"output,omitempty"`
}

type decode struct {
	// Kind is one of auto, blob, file and dir.
	Kind string `yaml:"kind,omitempty" default:"auto"`
	// Raw writes the decoded body instead of the re-rendered payload.
	Raw bool `yaml:"raw,omitempty"`
}

// Reset clears every configuration struct.
func Reset() {
	Global = global{}
	Decode = decode{}
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Decode),
	)
}

// FilePath returns the configuration file path, honouring EnvConfigFile.
func FilePath() string {
	if p, ok := os.LookupEnv(EnvConfigFile); ok && p != "" {
		return p
	}
	return DefaultConfigFile
}

// LoadFromFile loads the configuration from a file. A missing file is not an error.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global global `yaml:"global,omitempty"`
		Decode decode `yaml:"decode,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Decode = a.Decode

	return nil
}

// Validate checks the enumerated settings.
func Validate() error {
	var errs []error
	switch Global.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unsupported output format: %s", Global.Output.Format))
	}
	switch Decode.Kind {
	case KindAuto, KindBlob, KindFile, KindDir:
	default:
		errs = append(errs, fmt.Errorf("unsupported decode kind: %s", Decode.Kind))
	}
	return errors.Join(errs...)
}
