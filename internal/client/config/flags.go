package config

import (
	"flag"
	"os"

	"github.com/mindfulhq/mindful/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend record store
//	-d string   path of the SQLite file backing the Local Mirror
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend record store")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local mirror database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
