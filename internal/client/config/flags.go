package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/fileblock/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   server base URL (e.g., "http://127.0.0.1:8080")
//	-d string   local sqlite database path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "s", config.ServerEndpointAddr, "server base URL")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "local database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
