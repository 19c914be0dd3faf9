package catalogs

// ObjectType classifies an astronomical object.
type ObjectType string

// String returns the string representation of an ObjectType.
func (t ObjectType) String() string {
	return string(t)
}

// Object types, serialized as-is.
const (
	TypeStar            ObjectType = "STAR"
	TypePlanet          ObjectType = "PLANET"
	TypeDwarfPlanet     ObjectType = "DWARF_PLANET"
	TypeMoon            ObjectType = "MOON"
	TypeNebula          ObjectType = "NEBULA"
	TypeGalaxy          ObjectType = "GALAXY"
	TypeConstellation   ObjectType = "CONSTELLATION"
	TypeAsteroid        ObjectType = "ASTEROID"
	TypeComet           ObjectType = "COMET"
	TypeExoplanetSystem ObjectType = "EXOPLANET_SYSTEM"
	TypeBlackHole       ObjectType = "BLACK_HOLE"
	TypeStarCluster     ObjectType = "STAR_CLUSTER"
)

var objectTypes = []ObjectType{
	TypeStar, TypePlanet, TypeDwarfPlanet, TypeMoon, TypeNebula, TypeGalaxy,
	TypeConstellation, TypeAsteroid, TypeComet, TypeExoplanetSystem,
	TypeBlackHole, TypeStarCluster,
}

// ObjectTypes returns every known object type.
func ObjectTypes() []ObjectType {
	return append([]ObjectType(nil), objectTypes...)
}

// Valid reports whether t is a known object type.
func (t ObjectType) Valid() bool {
	for _, known := range objectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Category groups objects for browsing.
type Category string

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Categories, in index order.
const (
	CategorySolarSystem    Category = "Solar System"
	CategoryStars          Category = "Stars"
	CategoryConstellations Category = "Constellations"
	CategoryDeepSky        Category = "Deep Sky"
	CategoryExoplanets     Category = "Exoplanets"
	CategorySmallBodies    Category = "Small Bodies"
)

var categoryOrder = []Category{
	CategorySolarSystem,
	CategoryStars,
	CategoryConstellations,
	CategoryDeepSky,
	CategoryExoplanets,
	CategorySmallBodies,
}

// Categories returns the fixed categories in index order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// SunID is the canonical id of the Sun, the only star filed under Solar System.
const SunID = "sun"

// DefaultCategory returns the category an object of type t is filed under.
func DefaultCategory(t ObjectType, id string) Category {
	switch t {
	case TypePlanet, TypeDwarfPlanet, TypeMoon:
		return CategorySolarSystem
	case TypeStar:
		if id == SunID {
			return CategorySolarSystem
		}
		return CategoryStars
	case TypeConstellation:
		return CategoryConstellations
	case TypeNebula, TypeGalaxy, TypeBlackHole, TypeStarCluster:
		return CategoryDeepSky
	case TypeExoplanetSystem:
		return CategoryExoplanets
	case TypeAsteroid, TypeComet:
		return CategorySmallBodies
	default:
		return ""
	}
}
