package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/appengine-ltd/kingdom-heroes/internal/save"
)

// version, commit, date are injected at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	classic     bool
	dataDir     string
	level       int
	seed        int64
	debugLog    string
}

func parseOptions() options {
	var opts options
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&opts.classic, "classic", false, "use the terminal interface")
	flag.StringVar(&opts.dataDir, "data-dir", "", "directory for campaign progress (default: user config dir)")
	flag.IntVar(&opts.level, "level", 0, "preselect a campaign level (clamped to what is unlocked)")
	flag.Int64Var(&opts.seed, "seed", 0, "battle seed; 0 picks one from the clock")
	flag.StringVar(&opts.debugLog, "debug", "", "write debug logs to this file")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts
}

func versionLine() string {
	return fmt.Sprintf("Kingdom Heroes %s (%s) %s", version, commit, date)
}

func openStore(opts options) (*save.Store, error) {
	dir := opts.dataDir
	if dir == "" {
		d, err := save.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locate save directory: %w", err)
		}
		dir = d
	}
	return save.NewStore(dir), nil
}
