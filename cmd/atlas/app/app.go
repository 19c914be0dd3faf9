// Package app provides the application context and dependency management
// for the atlas CLI. It centralizes configuration, logging and construction
// of the ingestion pipeline.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/karnadigital/atlas"
	"github.com/karnadigital/atlas/internal/cmd/output"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/logging"
)

// App represents the atlas application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Command output, stdout when nil
	out io.Writer
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Context attaches the application logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.logger)
}

// OutputFormat returns the resolved output format.
func (a *App) OutputFormat() output.Format {
	return output.DetectFormat(a.config.Format)
}

// Atlas creates an atlas instance from the configuration. Extra options
// are applied after the configured ones, so command flags win.
func (a *App) Atlas(opts ...atlas.Option) (atlas.Atlas, error) {
	all := append(a.atlasOptions(), opts...)
	at, err := atlas.New(all...)
	if err != nil {
		return nil, errors.WrapResource("create", "atlas", "", err)
	}
	return at, nil
}

// atlasOptions constructs atlas options from the app configuration.
func (a *App) atlasOptions() []atlas.Option {
	var opts []atlas.Option

	if a.config.DataDir != "" {
		opts = append(opts, atlas.WithDataDir(a.config.DataDir))
	}
	if a.config.OutputDir != "" {
		opts = append(opts, atlas.WithOutputDir(a.config.OutputDir))
	}
	if a.config.Manifest != "" {
		opts = append(opts, atlas.WithManifestFile(a.config.Manifest))
	}
	if a.config.SQLitePath != "" {
		opts = append(opts, atlas.WithSQLite(a.config.SQLitePath))
	}
	opts = append(opts, atlas.WithCompression(a.config.Compress))

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// OutputDir returns the configured catalog output directory.
func (a *App) OutputDir() string {
	return a.config.OutputDir
}

// WithOutput redirects command output.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
