// Package coords resolves canonical object ids to static equatorial coordinates.
//
// The table covers the bright stars and deep-sky objects the catalog ships
// with, keyed by both common name and Messier number. Solar-system bodies
// move, so their entries are fixed placeholders and are flagged as such;
// callers that need real positions must compute an ephemeris elsewhere.
package coords

import "sort"

// Coordinates are J2000 equatorial coordinates in degrees.
type Coordinates struct {
	RA          float64 // right ascension, [0, 360)
	Dec         float64 // declination, [-90, 90]
	Placeholder bool    // true for bodies whose position is not fixed
}

var placeholder = Coordinates{Placeholder: true}

var table = map[string]Coordinates{
	// Planets
	"mercury": placeholder,
	"venus":   placeholder,
	"mars":    placeholder,
	"jupiter": placeholder,
	"saturn":  placeholder,
	"uranus":  placeholder,
	"neptune": placeholder,

	// Bright stars
	"sirius":     {RA: 101.25, Dec: -16.71},
	"canopus":    {RA: 96.0, Dec: -52.7},
	"arcturus":   {RA: 213.9, Dec: 19.19},
	"vega":       {RA: 279.3, Dec: 38.78},
	"rigel":      {RA: 78.6, Dec: -8.2},
	"betelgeuse": {RA: 88.8, Dec: 7.41},
	"polaris":    {RA: 37.95, Dec: 89.26},
	"aldebaran":  {RA: 68.98, Dec: 16.51},
	"antares":    {RA: 247.35, Dec: -26.43},
	"spica":      {RA: 201.3, Dec: -11.16},
	"altair":     {RA: 297.7, Dec: 8.87},
	"deneb":      {RA: 310.4, Dec: 45.28},

	// Deep sky
	"andromeda_galaxy": {RA: 10.68, Dec: 41.27},
	"m31":              {RA: 10.68, Dec: 41.27},
	"orion_nebula":     {RA: 83.82, Dec: -5.39},
	"m42":              {RA: 83.82, Dec: -5.39},
	"pleiades":         {RA: 56.75, Dec: 24.11},
	"m45":              {RA: 56.75, Dec: 24.11},
	"crab_nebula":      {RA: 83.63, Dec: 22.01},
	"m1":               {RA: 83.63, Dec: 22.01},
	"whirlpool_galaxy": {RA: 202.47, Dec: 47.20},
	"m51":              {RA: 202.47, Dec: 47.20},
	"ring_nebula":      {RA: 283.4, Dec: 33.03},
	"m57":              {RA: 283.4, Dec: 33.03},
	"sombrero_galaxy":  {RA: 189.99, Dec: -11.62},
	"m104":             {RA: 189.99, Dec: -11.62},
}

// Resolve looks up a canonical id. Unknown ids report ok == false.
func Resolve(id string) (Coordinates, bool) {
	c, ok := table[id]
	return c, ok
}

// IsPlaceholder reports whether id is a known body with placeholder coordinates.
func IsPlaceholder(id string) bool {
	c, ok := table[id]
	return ok && c.Placeholder
}

// IDs returns every id in the table, sorted.
func IDs() []string {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
