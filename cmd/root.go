// Package cmd provides the entrypoint for the gh-content-models cli.
package cmd

import (
	"errors"
	"log/slog"

	"github.com/isometry/gh-content-models/internal/config"
	"github.com/isometry/gh-content-models/internal/helpers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GH_CONTENT_MODELS"

var logger = helpers.NewNoopLogger()

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
}

// New returns the root command for gh-content-models.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gh-content-models",
		Short:        "Build GitHub blob API URLs and decode blob and contents payloads",
		SilenceUsage: true,
	}

	// Configuration loading & defaults
	config.Reset()
	loadErr := errors.Join(
		config.LoadFromFile(config.FilePath()),
		config.SetDefaults(),
	)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if loadErr != nil {
			return loadErr
		}
		logger = helpers.NewLogger(cmd.ErrOrStderr(), config.Global.Logging.Verbosity, config.Global.Logging.CallerTrace)
		return config.Validate()
	}

	// Dynamic flags
	v := newViper()
	bindEnvMap(cmd, v, envMapString)
	bindEnvMap(cmd, v, envMapBool)
	bindEnvMap(cmd, v, envMapCount)

	// Subcommands
	cmd.AddCommand(
		cmdURL(),
		cmdHeader(),
		cmdDecode(v),
	)

	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()
	return v
}

func componentLogger(name string) *slog.Logger {
	return logger.With("component", name)
}
