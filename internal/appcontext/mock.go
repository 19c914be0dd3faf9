package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/karnadigital/atlas"
	"github.com/karnadigital/atlas/internal/cmd/output"
	"github.com/karnadigital/atlas/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// Unset fields yield defaults.
type Mock struct {
	AtlasFunc func(...atlas.Option) (atlas.Atlas, error)
	Log       *zerolog.Logger
	Format    output.Format
	Dir       string
}

// Atlas returns an instance from AtlasFunc, or one built from opts alone.
func (m *Mock) Atlas(opts ...atlas.Option) (atlas.Atlas, error) {
	if m.AtlasFunc != nil {
		return m.AtlasFunc(opts...)
	}
	return atlas.New(opts...)
}

// Logger returns Log or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.Log != nil {
		return m.Log
	}
	return logging.NewNopLogger()
}

// Context attaches the mock logger to ctx.
func (m *Mock) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, m.Logger())
}

// OutputFormat returns Format, JSON when unset.
func (m *Mock) OutputFormat() output.Format {
	if m.Format == "" {
		return output.FormatJSON
	}
	return m.Format
}

// OutputDir returns Dir.
func (m *Mock) OutputDir() string {
	return m.Dir
}

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
