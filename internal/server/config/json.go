package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fileblock/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its non-empty fields are copied
// into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr       string `json:"endpoint_addr"`
	DatabaseDSN        string `json:"database_dsn"`
	CORSAllowedOrigins string `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
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

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}
