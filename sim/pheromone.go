// Package sim implements the foraging simulation engine: the per-tick
// pipeline that spawns and moves ants, lays and decays pheromone trails,
// and depletes food resources on a bounded grid.
package sim

import (
	"fmt"

	"github.com/pthm-cable/formic/config"
)

// PheromoneKind selects one of the two independent trail layers on a tile.
type PheromoneKind uint8

const (
	PheromoneExploration PheromoneKind = iota // laid by outbound scouts
	PheromoneResource                         // laid by any ant that has found food

	pheromoneKindCount = 2
)

// PheromoneKinds lists both layers in sweep order.
var PheromoneKinds = [...]PheromoneKind{PheromoneExploration, PheromoneResource}

func (k PheromoneKind) String() string {
	if k == PheromoneResource {
		return "Resource"
	}
	return "Exploration"
}

// Pheromone is a decaying scalar marker on one tile. At most one pheromone
// of each kind exists per tile. Strength never exceeds the configured cap
// and never goes below zero.
type Pheromone struct {
	Kind      PheromoneKind
	Strength  int
	DecayRate int
}

// NewPheromone builds a pheromone, rejecting values that would violate the
// strength invariant: strength above maxStrength, or below the decay rate
// (such a marker would die on its first tick).
func NewPheromone(kind PheromoneKind, strength, decayRate, maxStrength int) (Pheromone, error) {
	if strength > maxStrength {
		return Pheromone{}, fmt.Errorf("pheromone strength %d exceeds maximum %d", strength, maxStrength)
	}
	if strength < decayRate {
		return Pheromone{}, fmt.Errorf("pheromone strength %d below decay rate %d", strength, decayRate)
	}
	return Pheromone{Kind: kind, Strength: strength, DecayRate: decayRate}, nil
}

// defaultPheromone is a freshly laid marker at full strength.
func defaultPheromone(kind PheromoneKind, cfg *config.Config) Pheromone {
	decay := cfg.Pheromone.ExplorationDecay
	if kind == PheromoneResource {
		decay = cfg.Pheromone.ResourceDecay
	}
	return Pheromone{Kind: kind, Strength: cfg.Pheromone.MaxStrength, DecayRate: decay}
}

// Refresh adds amount to the strength, saturating at maxStrength. Amounts
// that would overflow the counter cap at the maximum instead of wrapping.
func (p *Pheromone) Refresh(amount, maxStrength int) {
	if amount < 0 {
		return
	}
	if amount > maxStrength-p.Strength {
		p.Strength = maxStrength
		return
	}
	p.Strength += amount
}

// Tick subtracts the decay rate for one simulation step. It returns false
// the instant strength reaches zero; the caller must then evict the marker
// from both the grid and the sparse index. Further calls stay at zero.
func (p *Pheromone) Tick() bool {
	p.Strength -= p.DecayRate
	if p.Strength <= 0 {
		p.Strength = 0
		return false
	}
	return true
}
