package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/isometry/gh-content-models/internal/config"
	"github.com/isometry/gh-content-models/internal/helpers"
	"github.com/isometry/gh-content-models/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func cmdDecode(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [path|-]",
		Short: "Decode a blob or contents payload and render it again",
		Long: `Read a payload returned by the Git blobs or repository contents endpoints,
from a file or from stdin, and render it in the configured output format.
With --raw, write the decoded body of a blob or file instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := componentLogger("decode")

			data, err := readPayload(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			log.Debug("read payload", slog.Int("bytes", len(data)), slog.String("kind", config.Decode.Kind))

			value, kind, err := decodePayload(config.Decode.Kind, data)
			if err != nil {
				return err
			}
			log.Debug("decoded payload", slog.String("kind", kind))

			if !config.Decode.Raw {
				return render(cmd.OutOrStdout(), value)
			}
			body, err := rawBody(value, kind)
			if err != nil {
				return err
			}
			log.Debug("decoded body", slog.Int("bytes", len(body)), slog.String("preview", helpers.Truncate(string(body), 64)))
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	bindEnvMap(cmd, v, envMapDecodeString)
	bindEnvMap(cmd, v, envMapDecodeBool)

	return cmd
}

func readPayload(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "failed to read payload from stdin")
	}
	data, err := os.ReadFile(filepath.Clean(args[0]))
	return data, errors.Wrapf(err, "failed to read payload from %s", args[0])
}

// decodePayload decodes data as kind and reports the kind it resolved to.
func decodePayload(kind string, data []byte) (any, string, error) {
	switch kind {
	case config.KindBlob:
		blob, err := models.DecodeBlob(data)
		return blob, kind, err
	case config.KindFile:
		file, err := models.DecodeFileContent(data)
		return file, kind, err
	case config.KindDir:
		entries, err := models.DecodeDirectoryListing(data)
		return entries, kind, err
	case config.KindAuto:
		file, entries, err := models.DecodeContents(data)
		switch {
		case err != nil:
			return nil, kind, err
		case entries != nil:
			return entries, config.KindDir, nil
		case file.Type == nil && file.Encoding != nil:
			// Blob payloads carry an encoding but never a type.
			return decodePayload(config.KindBlob, data)
		default:
			return file, config.KindFile, nil
		}
	default:
		return nil, kind, errors.Errorf("unsupported decode kind: %s", kind)
	}
}

func rawBody(value any, kind string) ([]byte, error) {
	switch v := value.(type) {
	case *models.Blob:
		return v.Decoded()
	case *models.FileContent:
		return v.Decoded()
	default:
		return nil, errors.Errorf("--raw needs a blob or file payload, got %s", kind)
	}
}
