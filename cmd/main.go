// Package cmd implements the CLI application to manage the stockbook ledger.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/stockbook/stockbook"
)

// Register the subcommands.
// A main package calls Register() to install subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")

	c.Register(&addCmd{}, "inventory")
	c.Register(&updateCmd{}, "inventory")
	c.Register(&deleteCmd{}, "inventory")
	c.Register(&listCmd{}, "inventory")

	c.Register(&purchaseCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&clearCmd{}, "data")
	c.Register(&settingsCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", "stockbook.db", "Path to the ledger database file")
var settingsFile = flag.String("settings-file", "stockbook.yaml", "Path to the settings file")

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// openTracker opens the store, loads the ledger into a tracker, and returns
// a cleanup function releasing the database file.
func openTracker() (*stockbook.Tracker, func(), error) {
	log := newLogger()
	store, err := stockbook.OpenStore(*dataFile, log)
	if err != nil {
		return nil, nil, err
	}
	tracker := stockbook.NewTracker(store, log)
	return tracker, func() { store.Close() }, nil
}
