// Package constants provides shared constants used throughout the atlas codebase.
// This includes file layout, limits, file permissions, and other values
// that should be consistent across the ingestion pipeline and the CLI.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Input layout, relative to the data root
const (
	// DefaultDataDir is the data root used when none is configured
	DefaultDataDir = "Data"

	// DatasetsDir holds the per-schema JSON documents
	DatasetsDir = "astronomy_data"

	// CompleteFile is the consolidated JSON document
	CompleteFile = "astronomy_data_complete.json"

	// StardroidDir holds the brace-ASCII documents
	StardroidDir = "stardroid"
)

// Output layout, relative to the output directory
const (
	// DefaultOutputDir is where emitted documents land when none is configured
	DefaultOutputDir = "assets"

	// ObjectsFile is the emitted object list
	ObjectsFile = "astronomy_objects.json"

	// GalleryFile is the emitted image gallery
	GalleryFile = "image_gallery.json"

	// CategoriesFile is the emitted category index
	CategoriesFile = "categories.json"

	// SQLiteFile is the default name of the SQLite snapshot
	SQLiteFile = "atlas.db"

	// CompressedExt is appended to compressed copies of emitted documents
	CompressedExt = ".zst"

	// LocalImagesDir is the prefix for app-bundled image paths
	LocalImagesDir = "images"
)

// Limit constants
const (
	// MaxFacts is the number of interesting facts folded into a description
	MaxFacts = 5

	// MaxConstellationFacts is the fact limit for constellations
	MaxConstellationFacts = 3

	// DwarfPlanetMagnitude is the fixed magnitude assigned to dwarf planets
	DwarfPlanetMagnitude = 14.0

	// SunMagnitude is the apparent magnitude of the Sun
	SunMagnitude = -26.74

	// StarSizeBase converts brace-ASCII star sizes to magnitudes
	StarSizeBase = 6.0

	// MessierSizeBase converts brace-ASCII Messier sizes to magnitudes
	MessierSizeBase = 8.0
)

// Network constants
const (
	// DefaultHTTPTimeout bounds a single image download
	DefaultHTTPTimeout = 30 * time.Second
)

// JSON output formatting
const (
	// JSONIndent is the indentation used for every emitted document
	JSONIndent = "  "
)
