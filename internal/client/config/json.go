package config

import (
	"encoding/json"
	"os"

	"github.com/caojohnny91/hoot-client/internal/flagx"
	"github.com/caojohnny91/hoot-client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can spell the timeout either as a string like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DatabasePath       string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c/-config flag. When the flag is absent, nothing is loaded. Only
// fields present in the file override the current values. Read or
// unmarshal errors panic; the caller may recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
