package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/veriscan/veriscan-go/internal/flagx"
	"github.com/veriscan/veriscan-go/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type jsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StorePath      string         `json:"store_path"`
	SnapshotLimit  int            `json:"snapshot_limit"`
}

// parseJson overlays cfg with values loaded from a JSON file whose path is
// given via the -c/-config flags. Absent flag means no JSON is loaded.
// Fields left empty in the file keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.SnapshotLimit != 0 {
		cfg.SnapshotLimit = jc.SnapshotLimit
	}
}
