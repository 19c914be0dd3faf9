package catalogs

import (
	"encoding/json"
	"slices"

	"github.com/karnadigital/atlas/internal/utils/ptr"
)

// Object is the unified, per-object catalog record.
//
// Optional scalars are pointers: nil means the value is unknown and is
// omitted from JSON, never written as 0.
type Object struct {
	// Core identity
	ID       string     `json:"id" yaml:"id"`             // Canonical id, unique across the catalog
	Name     string     `json:"name" yaml:"name"`         // Display name
	Type     ObjectType `json:"type" yaml:"type"`         // Object type
	Category Category   `json:"category" yaml:"category"` // Browsing category

	// Description with bullet-joined facts appended
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Physical and observational scalars
	Magnitude  *float64 `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`   // Apparent magnitude
	DistanceLy *float64 `json:"distanceLy,omitempty" yaml:"distanceLy,omitempty"` // Distance in light years
	DistanceAu *float64 `json:"distanceAu,omitempty" yaml:"distanceAu,omitempty"` // Distance from the Sun in AU
	RadiusKm   *float64 `json:"radiusKm,omitempty" yaml:"radiusKm,omitempty"`     // Mean radius in km
	MassKg     *float64 `json:"massKg,omitempty" yaml:"massKg,omitempty"`         // Mass in kg

	Constellation string `json:"constellation,omitempty" yaml:"constellation,omitempty"` // Host constellation
	ImageURL      string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`           // Primary image reference, URL or local path

	// Equatorial coordinates in degrees
	RightAscension *float64 `json:"rightAscension,omitempty" yaml:"rightAscension,omitempty"` // [0, 360)
	Declination    *float64 `json:"declination,omitempty" yaml:"declination,omitempty"`       // [-90, 90]

	// ParentID is a weak reference (moon to planet, planet to sun). It may dangle.
	ParentID string `json:"parentId,omitempty" yaml:"parentId,omitempty"`

	InterestingFacts []string `json:"interestingFacts,omitempty" yaml:"interestingFacts,omitempty"`

	// Metadata holds the schema-specific fields of the contributing source.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// HasCoordinates reports whether both RA and Dec are known.
func (o *Object) HasCoordinates() bool {
	return o.RightAscension != nil && o.Declination != nil
}

// SetCoordinates sets RA and Dec.
func (o *Object) SetCoordinates(ra, dec float64) {
	o.RightAscension = ptr.Float64(ra)
	o.Declination = ptr.Float64(dec)
}

// Clone returns a deep copy of the object. Metadata variants are immutable
// values once built, so they are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Magnitude = ptr.Clone(o.Magnitude)
	cp.DistanceLy = ptr.Clone(o.DistanceLy)
	cp.DistanceAu = ptr.Clone(o.DistanceAu)
	cp.RadiusKm = ptr.Clone(o.RadiusKm)
	cp.MassKg = ptr.Clone(o.MassKg)
	cp.RightAscension = ptr.Clone(o.RightAscension)
	cp.Declination = ptr.Clone(o.Declination)
	cp.InterestingFacts = slices.Clone(o.InterestingFacts)
	return &cp
}

// UnmarshalJSON decodes an emitted object. Metadata comes back as RawMetadata
// since the contributing schema is not recorded in the output.
func (o *Object) UnmarshalJSON(data []byte) error {
	type plain Object
	var aux struct {
		plain
		Metadata json.RawMessage `json:"metadata,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*o = Object(aux.plain)
	if len(aux.Metadata) > 0 && string(aux.Metadata) != "null" {
		o.Metadata = RawMetadata(aux.Metadata)
	}
	return nil
}
