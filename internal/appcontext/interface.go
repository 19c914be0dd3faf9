// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/karnadigital/atlas"
	"github.com/karnadigital/atlas/internal/cmd/output"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/atlas/app implements it; tests use Mock.
type Interface interface {
	// Atlas creates an atlas instance from the configuration plus opts.
	Atlas(opts ...atlas.Option) (atlas.Atlas, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Context attaches the logger to ctx.
	Context(ctx context.Context) context.Context

	// OutputFormat returns the configured output format.
	OutputFormat() output.Format

	// OutputDir returns the configured catalog output directory.
	OutputDir() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
