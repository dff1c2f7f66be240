// Package components defines ECS components and grid primitives for the simulation.
package components

// AntKind identifies an ant's role in the colony.
type AntKind uint8

const (
	KindScout  AntKind = iota // wide-ranging explorer, lays exploration trails
	KindWorker                // follows resource trails to known food
)

// AntKinds lists every kind in update order. Colony spawning and per-tick
// updates iterate this slice so runs are reproducible for a given seed.
var AntKinds = [...]AntKind{KindScout, KindWorker}

func (k AntKind) String() string {
	switch k {
	case KindScout:
		return "Scout"
	case KindWorker:
		return "Worker"
	default:
		return "Unknown"
	}
}

// AntState is the ant's journey phase.
type AntState uint8

const (
	StateExploring AntState = iota // outbound from the colony
	StateReturning                 // heading back to the anchor
)

func (s AntState) String() string {
	if s == StateReturning {
		return "Returning"
	}
	return "Exploring"
}

// Position is the tile an entity currently occupies.
type Position struct {
	Cell Coord
}

// Ant holds the per-ant journey state machine.
//
// Transitions: Exploring -> Returning when food is found at the current tile
// or Steps exceeds the journey budget; Returning -> Exploring (with Steps and
// FoundFood reset) when the ant stands on its home anchor.
type Ant struct {
	Kind      AntKind
	Home      Coord // colony anchor, set at spawn, never changes
	Steps     int   // steps taken on the current journey
	State     AntState
	FoundFood bool
	DistHome  int // cached Manhattan distance to Home, refreshed after every move
}
