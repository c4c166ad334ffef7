// Package cli provides the Cobra command tree of namelint. This file
// defines the Dependencies struct (Composition Root) shared by all
// commands.
package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/modu-ai/namelint/internal/config"
	"github.com/modu-ai/namelint/internal/ui"
)

// Dependencies holds the process-level services used by CLI commands.
// This is the Composition Root: the only place where they are created.
type Dependencies struct {
	Logger    *slog.Logger
	LogLevel  *slog.LevelVar
	LookupEnv config.LookupFunc
	Headless  *ui.HeadlessManager
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the dependencies for a real process: logs go
// to stderr and the environment is the process environment.
func InitDependencies() {
	deps = NewDependencies(os.Stderr, os.LookupEnv)
}

// NewDependencies creates Dependencies logging to w.
func NewDependencies(w io.Writer, lookup config.LookupFunc) *Dependencies {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	return &Dependencies{
		Logger:    slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		LogLevel:  level,
		LookupEnv: lookup,
		Headless:  ui.NewHeadlessManager(),
	}
}

// SetLogLevel changes the level of Logger. Unknown names are ignored; the
// configuration validator rejects them before this is reached.
func (d *Dependencies) SetLogLevel(name string) {
	if name == "" {
		return
	}
	if err := d.LogLevel.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		d.Logger.Warn("ignoring unknown log level", "level", name)
	}
}

// getDeps returns the initialized dependencies, creating defaults when a
// command runs without Execute (as in tests).
func getDeps() *Dependencies {
	if deps == nil {
		deps = NewDependencies(io.Discard, os.LookupEnv)
	}
	return deps
}
