package catalogs

import (
	"encoding/json"
)

// MetadataKind names the source schema a metadata variant came from.
type MetadataKind string

// Metadata kinds.
const (
	MetadataPlanet          MetadataKind = "planet"
	MetadataDwarfPlanet     MetadataKind = "dwarf_planet"
	MetadataSun             MetadataKind = "sun"
	MetadataStar            MetadataKind = "star"
	MetadataMoon            MetadataKind = "moon"
	MetadataNebula          MetadataKind = "nebula"
	MetadataGalaxy          MetadataKind = "galaxy"
	MetadataConstellation   MetadataKind = "constellation"
	MetadataAsteroid        MetadataKind = "asteroid"
	MetadataComet           MetadataKind = "comet"
	MetadataExoplanetSystem MetadataKind = "exoplanet_system"
	MetadataRaw             MetadataKind = "raw"
)

// Metadata is the schema-specific extra data attached to an object.
// Each variant serializes as a flat JSON object of its own fields.
type Metadata interface {
	Kind() MetadataKind
}

// PlanetMetadata carries the planets.json extras.
type PlanetMetadata struct {
	MassKg              *float64 `json:"mass_kg,omitempty" yaml:"mass_kg,omitempty"`
	OrbitalPeriodDays   *float64 `json:"orbital_period_days,omitempty" yaml:"orbital_period_days,omitempty"`
	RotationPeriodHours *float64 `json:"rotation_period_hours,omitempty" yaml:"rotation_period_hours,omitempty"`
	MoonsCount          *int     `json:"moons_count,omitempty" yaml:"moons_count,omitempty"`
	HasRings            *bool    `json:"has_rings,omitempty" yaml:"has_rings,omitempty"`
	Atmosphere          Value    `json:"atmosphere,omitempty" yaml:"atmosphere,omitempty"` // string or list, passed through
}

// Kind implements Metadata.
func (PlanetMetadata) Kind() MetadataKind { return MetadataPlanet }

// DwarfPlanetMetadata carries the dwarf planet extras.
type DwarfPlanetMetadata struct {
	MoonsCount *int `json:"moons_count,omitempty" yaml:"moons_count,omitempty"`
}

// Kind implements Metadata.
func (DwarfPlanetMetadata) Kind() MetadataKind { return MetadataDwarfPlanet }

// SunMetadata carries the Sun's extras.
type SunMetadata struct {
	SpectralClass   string   `json:"spectral_class,omitempty" yaml:"spectral_class,omitempty"`
	SurfaceTempC    *float64 `json:"surface_temp_c,omitempty" yaml:"surface_temp_c,omitempty"`
	AgeBillionYears *float64 `json:"age_billion_years,omitempty" yaml:"age_billion_years,omitempty"`
}

// Kind implements Metadata.
func (SunMetadata) Kind() MetadataKind { return MetadataSun }

// StarMetadata carries bright-star extras.
type StarMetadata struct {
	SpectralType    string   `json:"spectral_type,omitempty" yaml:"spectral_type,omitempty"`
	MassSolar       *float64 `json:"mass_solar,omitempty" yaml:"mass_solar,omitempty"`
	RadiusSolar     *float64 `json:"radius_solar,omitempty" yaml:"radius_solar,omitempty"`
	LuminositySolar *float64 `json:"luminosity_solar,omitempty" yaml:"luminosity_solar,omitempty"`
}

// Kind implements Metadata.
func (StarMetadata) Kind() MetadataKind { return MetadataStar }

// MoonMetadata carries moon extras.
type MoonMetadata struct {
	MassKg               *float64 `json:"mass_kg,omitempty" yaml:"mass_kg,omitempty"`
	OrbitalPeriodDays    *float64 `json:"orbital_period_days,omitempty" yaml:"orbital_period_days,omitempty"`
	Discovered           Value    `json:"discovered,omitempty" yaml:"discovered,omitempty"` // year or free text
	DistanceFromPlanetKm *float64 `json:"distance_from_planet_km,omitempty" yaml:"distance_from_planet_km,omitempty"`
}

// Kind implements Metadata.
func (MoonMetadata) Kind() MetadataKind { return MetadataMoon }

// NebulaMetadata carries nebula extras.
type NebulaMetadata struct {
	NebulaType string `json:"nebula_type,omitempty" yaml:"nebula_type,omitempty"`
	SizeLy     Value  `json:"size_ly,omitempty" yaml:"size_ly,omitempty"`
}

// Kind implements Metadata.
func (NebulaMetadata) Kind() MetadataKind { return MetadataNebula }

// GalaxyMetadata carries galaxy extras.
type GalaxyMetadata struct {
	GalaxyType string `json:"galaxy_type,omitempty" yaml:"galaxy_type,omitempty"`
	DiameterLy Value  `json:"diameter_ly,omitempty" yaml:"diameter_ly,omitempty"`
}

// Kind implements Metadata.
func (GalaxyMetadata) Kind() MetadataKind { return MetadataGalaxy }

// ConstellationMetadata carries constellation extras.
type ConstellationMetadata struct {
	Abbreviation  string   `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	AreaSqDeg     *float64 `json:"area_sq_deg,omitempty" yaml:"area_sq_deg,omitempty"`
	BrightestStar string   `json:"brightest_star,omitempty" yaml:"brightest_star,omitempty"`
	Mythology     Value    `json:"mythology,omitempty" yaml:"mythology,omitempty"`
}

// Kind implements Metadata.
func (ConstellationMetadata) Kind() MetadataKind { return MetadataConstellation }

// AsteroidMetadata carries asteroid extras.
type AsteroidMetadata struct {
	DiscoveryYear Value  `json:"discovery_year,omitempty" yaml:"discovery_year,omitempty"`
	Discoverer    string `json:"discoverer,omitempty" yaml:"discoverer,omitempty"`
	Location      string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Kind implements Metadata.
func (AsteroidMetadata) Kind() MetadataKind { return MetadataAsteroid }

// CometMetadata carries comet extras.
type CometMetadata struct {
	OrbitalPeriodYears *float64 `json:"orbital_period_years,omitempty" yaml:"orbital_period_years,omitempty"`
	DiscoveryYear      Value    `json:"discovery_year,omitempty" yaml:"discovery_year,omitempty"`
	Discoverer         string   `json:"discoverer,omitempty" yaml:"discoverer,omitempty"`
}

// Kind implements Metadata.
func (CometMetadata) Kind() MetadataKind { return MetadataComet }

// ExoplanetSystemMetadata carries exoplanet system extras.
type ExoplanetSystemMetadata struct {
	StarType      string `json:"star_type,omitempty" yaml:"star_type,omitempty"`
	DiscoveryYear Value  `json:"discovery_year,omitempty" yaml:"discovery_year,omitempty"`
	PlanetsCount  int    `json:"planets_count" yaml:"planets_count"`
}

// Kind implements Metadata.
func (ExoplanetSystemMetadata) Kind() MetadataKind { return MetadataExoplanetSystem }

// Value is a JSON value of loosely specified shape (a year or free text,
// a string or a list) carried through to the output unchanged.
type Value []byte

// MarshalJSON writes the value unchanged.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON keeps a copy of the raw value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = nil
		return nil
	}
	*v = append((*v)[0:0], data...)
	return nil
}

// MarshalYAML renders the value as its decoded YAML equivalent.
func (v Value) MarshalYAML() (any, error) {
	return decodeRaw(v)
}

func decodeRaw(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RawMetadata is metadata read back from an emitted catalog.
type RawMetadata json.RawMessage

// Kind implements Metadata.
func (RawMetadata) Kind() MetadataKind { return MetadataRaw }

// MarshalJSON writes the raw bytes unchanged.
func (m RawMetadata) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

// MarshalYAML renders the raw object as a YAML mapping.
func (m RawMetadata) MarshalYAML() (any, error) {
	return decodeRaw(m)
}
