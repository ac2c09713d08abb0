package config

import (
	"flag"
	"os"
	"time"

	"github.com/gallerie-app/gallerie/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-k string   Harvard Art Museums API key
//	-s string   key-value storage backend (sqlite|postgres|redis|memory)
//	-d string   database DSN (sqlite path or postgres DSN)
//	-r string   redis address (host:port)
//	-p int      museum API page size
//	-t int      HTTP timeout for museum API calls (in seconds)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-s", "-d", "-r", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.HarvardAPIKey, "k", cfg.HarvardAPIKey, "Harvard Art Museums API key")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite|postgres|redis|memory)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address (host:port)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "museum API page size")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
