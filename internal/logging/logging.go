// Package logging provides the structured logging every package in this
// repository shares (SPEC_FULL.md §10.1). It wraps log15 with a "pkg"
// child-logger convention, the same shape the pack's other structured
// logging wrappers use for per-subsystem loggers.
package logging

import (
	"os"

	log15 "github.com/ChainSafe/log15"
)

// Logger is a named child of the process-wide root logger.
type Logger = log15.Logger

var root = log15.New()

func init() {
	root.SetHandler(log15.LvlFilterHandler(
		log15.LvlInfo,
		log15.StreamHandler(os.Stderr, log15.LogfmtFormat()),
	))
}

// SetLevel adjusts the minimum level the process-wide root logger emits.
func SetLevel(lvl log15.Lvl) {
	root.SetHandler(log15.LvlFilterHandler(
		lvl,
		log15.StreamHandler(os.Stderr, log15.LogfmtFormat()),
	))
}

// Module returns a child logger tagged with the given subsystem name, the
// primary way a package (store, db, merkle, ...) obtains its own
// contextual logger.
func Module(name string) Logger {
	return root.New("pkg", name)
}
