package sources

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/reconcile"
)

// Definition declares one source: where its document lives, relative to the
// data root, and which policy its records are upserted with.
type Definition struct {
	ID      ID               `json:"id" yaml:"id" toml:"id"`
	Path    string           `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Policy  reconcile.Policy `json:"policy,omitempty" yaml:"policy,omitempty" toml:"policy,omitempty"`
	Enabled *bool            `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
}

// IsEnabled reports whether the source runs. Unset means enabled.
func (d Definition) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Format returns the document format implied by the source id.
func (d Definition) Format() Format {
	if d.ID == StardroidStarsID || d.ID == StardroidMessierID {
		return FormatBraceASCII
	}
	return FormatJSON
}

// Manifest is the ordered list of declared sources.
type Manifest struct {
	Sources []Definition `json:"sources" yaml:"sources" toml:"sources"`
}

var defaults = map[ID]Definition{
	PlanetsID:          {ID: PlanetsID, Path: dataset("planets.json"), Policy: reconcile.PolicyReplace},
	StarsID:            {ID: StarsID, Path: dataset("stars.json"), Policy: reconcile.PolicyReplace},
	MoonsID:            {ID: MoonsID, Path: dataset("moons.json"), Policy: reconcile.PolicyReplace},
	NebulaeID:          {ID: NebulaeID, Path: dataset("nebulae.json"), Policy: reconcile.PolicyReplace},
	GalaxiesID:         {ID: GalaxiesID, Path: dataset("galaxies.json"), Policy: reconcile.PolicyReplace},
	ConstellationsID:   {ID: ConstellationsID, Path: dataset("constellations.json"), Policy: reconcile.PolicyReplace},
	SmallBodiesID:      {ID: SmallBodiesID, Path: dataset("small_bodies.json"), Policy: reconcile.PolicyReplace},
	ExoplanetsID:       {ID: ExoplanetsID, Path: dataset("exoplanets.json"), Policy: reconcile.PolicyReplace},
	CompleteID:         {ID: CompleteID, Path: constants.CompleteFile, Policy: reconcile.PolicyMerge},
	StardroidStarsID:   {ID: StardroidStarsID, Path: stardroid("stars.ascii"), Policy: reconcile.PolicyMerge},
	StardroidMessierID: {ID: StardroidMessierID, Path: stardroid("messier.ascii"), Policy: reconcile.PolicyMerge},
}

func dataset(name string) string {
	return filepath.Join(constants.DatasetsDir, name)
}

func stardroid(name string) string {
	return filepath.Join(constants.StardroidDir, name)
}

// DefaultDefinition returns the built-in definition for id.
func DefaultDefinition(id ID) (Definition, bool) {
	d, ok := defaults[id]
	return d, ok
}

// DefaultManifest returns every known source in default order.
func DefaultManifest() *Manifest {
	m := &Manifest{}
	for _, id := range IDs() {
		m.Sources = append(m.Sources, defaults[id])
	}
	return m
}

// Enabled returns the enabled definitions in declared order.
func (m *Manifest) Enabled() []Definition {
	out := make([]Definition, 0, len(m.Sources))
	for _, d := range m.Sources {
		if d.IsEnabled() {
			out = append(out, d)
		}
	}
	return out
}

// Normalize fills empty paths and policies from the defaults.
func (m *Manifest) Normalize() {
	for i := range m.Sources {
		d := &m.Sources[i]
		def, ok := defaults[d.ID]
		if !ok {
			continue
		}
		if d.Path == "" {
			d.Path = def.Path
		}
		if d.Policy == "" {
			d.Policy = def.Policy
		}
	}
}

// Validate checks ids, policies and duplicates.
func (m *Manifest) Validate() error {
	if len(m.Sources) == 0 {
		return errors.NewValidationError("sources", nil, "manifest declares no sources")
	}
	seen := make(map[ID]struct{}, len(m.Sources))
	for i, d := range m.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if !d.ID.IsValid() {
			return errors.NewValidationError(field+".id", d.ID, fmt.Sprintf("unknown source %q", d.ID))
		}
		if _, dup := seen[d.ID]; dup {
			return errors.NewValidationError(field+".id", d.ID, fmt.Sprintf("source %q declared twice", d.ID))
		}
		seen[d.ID] = struct{}{}
		if d.Policy != "" && !d.Policy.Valid() {
			return errors.NewValidationError(field+".policy", d.Policy, fmt.Sprintf("unknown policy %q", d.Policy))
		}
	}
	return nil
}

// LoadManifest reads a manifest file. The format follows the extension:
// .toml uses TOML, anything else YAML.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("manifest", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseManifest(data, manifestFormat(path), path)
}

// ParseManifest decodes manifest bytes in the given format ("yaml" or "toml").
func ParseManifest(data []byte, format, name string) (*Manifest, error) {
	var m Manifest
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
			return nil, errors.WrapParse("toml", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}
	}
	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func manifestFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}
