package atlas

import (
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/emit"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/ingest"
	"github.com/karnadigital/atlas/pkg/sources"
)

// config holds the settings of an Atlas instance
type config struct {
	dataDir   string
	outputDir string
	manifest  *sources.Manifest
	sqlite    string
	compress  bool
	dryRun    bool
	factory   ingest.SourceFactory
}

func defaultConfig() *config {
	return &config{
		dataDir:   constants.DefaultDataDir,
		outputDir: constants.DefaultOutputDir,
	}
}

func (c *config) pipelineOptions() []ingest.Option {
	var opts []ingest.Option
	if c.manifest != nil {
		opts = append(opts, ingest.WithManifest(c.manifest))
	}
	if c.factory != nil {
		opts = append(opts, ingest.WithSourceFactory(c.factory))
	}
	return opts
}

func (c *config) writerOptions() []emit.Option {
	opts := []emit.Option{emit.WithCompression(c.compress)}
	if c.sqlite != "" {
		opts = append(opts, emit.WithSQLite(c.sqlite))
	}
	return opts
}

// Option is a function that configures an Atlas instance
type Option func(*config) error

// WithDataDir configures the data root the sources are read from
func WithDataDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("data_dir", dir, "cannot be empty")
		}
		c.dataDir = dir
		return nil
	}
}

// WithOutputDir configures where the catalog documents are written
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("output_dir", dir, "cannot be empty")
		}
		c.outputDir = dir
		return nil
	}
}

// WithManifest configures the declared sources, replacing the default layout
func WithManifest(m *sources.Manifest) Option {
	return func(c *config) error {
		c.manifest = m
		return nil
	}
}

// WithManifestFile loads the declared sources from a YAML or TOML file.
// An empty path keeps the default layout.
func WithManifestFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return nil
		}
		m, err := sources.LoadManifest(path)
		if err != nil {
			return err
		}
		c.manifest = m
		return nil
	}
}

// WithSQLite also writes a SQLite snapshot under the given file name.
// An empty name disables it.
func WithSQLite(name string) Option {
	return func(c *config) error {
		c.sqlite = name
		return nil
	}
}

// WithCompression configures whether zstd copies of the documents are written
func WithCompression(enabled bool) Option {
	return func(c *config) error {
		c.compress = enabled
		return nil
	}
}

// WithDryRun configures whether Ingest skips writing the catalog
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithSourceFactory replaces how source readers are constructed
func WithSourceFactory(fn ingest.SourceFactory) Option {
	return func(c *config) error {
		c.factory = fn
		return nil
	}
}
