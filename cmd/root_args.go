package cmd

import (
	"github.com/isometry/gh-content-models/internal/config"
	"github.com/isometry/gh-content-models/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Output.Format: {
		Name:        "output",
		Description: "Output format of rendered payloads. Supported values are 'json' and 'yaml'",
		Short:       helpers.Ptr("o"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Global.Output.Compact: {
		Name:        "compact",
		Description: "Render JSON on a single line",
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapDecodeString = map[*string]boundEnvVar[string]{
	&config.Decode.Kind: {
		Name:        "kind",
		Description: "Payload kind. Supported values are 'auto', 'blob', 'file' and 'dir'",
		Short:       helpers.Ptr("k"),
	},
}

var envMapDecodeBool = map[*bool]boundEnvVar[bool]{
	&config.Decode.Raw: {
		Name:        "raw",
		Description: "Write the decoded content body instead of the payload",
		Short:       helpers.Ptr("r"),
	},
}
