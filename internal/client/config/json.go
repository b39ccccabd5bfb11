package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fileblock/internal/flagx"
)

// JsonConfig is the DTO for reading JSON configuration files; non-empty
// fields are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DatabaseDSN        string `json:"database_dsn"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flags, if any. Unreadable or invalid files panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
}
