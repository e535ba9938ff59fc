//go:build !cgo

package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/kingdom-heroes/internal/ui"
)

func main() {
	opts := parseOptions()
	if opts.showVersion {
		fmt.Println(versionLine())
		return
	}

	store, err := openStore(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !opts.classic {
		fmt.Fprintln(os.Stderr, "This build has no graphics support (cgo disabled); using the terminal interface.")
	}
	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Store:     store,
		Seed:      opts.seed,
		Level:     opts.level,
		DebugLog:  opts.debugLog,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
