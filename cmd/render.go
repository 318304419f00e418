package cmd

import (
	"encoding/json"
	"io"

	"github.com/isometry/gh-content-models/internal/config"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

// render writes v in the configured output format.
func render(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	switch config.Global.Output.Format {
	case config.FormatYAML:
		out, err = yaml.Marshal(v)
	default:
		if config.Global.Output.Compact {
			out, err = json.Marshal(v)
		} else {
			out, err = json.MarshalIndent(v, "", "  ")
		}
		out = append(out, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, "failed to render %s output", config.Global.Output.Format)
	}
	_, err = w.Write(out)
	return err
}
