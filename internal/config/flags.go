package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/qrkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path or DSN of the local database (default from Config)
//	-s string   entitlement token verification secret (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path or DSN of the local database")
	fs.StringVar(&cfg.EntitlementSecret, "s", cfg.EntitlementSecret, "entitlement token secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
