//go:build cgo

package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/kingdom-heroes/internal/gui"
	"github.com/appengine-ltd/kingdom-heroes/internal/ui"
)

type runner interface {
	Run() error
}

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

	var app runner
	if opts.classic {
		app = ui.NewApp(ui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Store:     store,
			Seed:      opts.seed,
			Level:     opts.level,
			DebugLog:  opts.debugLog,
		})
	} else {
		app = gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Store:     store,
			Seed:      opts.seed,
			Level:     opts.level,
			DebugLog:  opts.debugLog,
		})
	}

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
