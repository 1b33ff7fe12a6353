// Package level defines the campaign data model: track definitions, the
// obstacles placed along them, and loading/validation of custom tracks.
// This package depends on nothing inside the module so both the simulation
// core and the presentation layer can read it.
package level

// Kind discriminates obstacle variants.
type Kind int

const (
	// Spike is a floor-mounted triangle. Collision uses an inset hitbox so
	// grazing the sloped edges is forgiven.
	Spike Kind = iota
	// Block is a solid rectangle. Its hitbox is the full silhouette.
	Block
)

// String returns the lowercase name used in level documents.
func (k Kind) String() string {
	switch k {
	case Spike:
		return "spike"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// ParseKind converts a level-document kind string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "spike":
		return Spike, true
	case "block":
		return Block, true
	default:
		return 0, false
	}
}

// Obstacle is a hazard placed along a track. X is the track distance of the
// obstacle's leading edge; Width and Height are in world units.
type Obstacle struct {
	Kind   Kind
	X      float64
	Width  float64
	Height float64
}

// Level is one track of the campaign. Obstacle positions are local to the
// track (distance from its start). Ascending X order is conventional but
// not required; the engine scans every obstacle each step.
type Level struct {
	ID              string
	Name            string
	Length          float64
	SpeedMultiplier float64
	Obstacles       []Obstacle
}
