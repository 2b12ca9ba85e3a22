package config

import (
	"flag"
	"os"

	"printwatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   path of the local state database
//	-l string   path of the log file (empty logs to stderr)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path of the local state database")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path (empty for stderr)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
