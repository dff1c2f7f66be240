package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/formic/components"
)

// cardinalMoves are the four legal step directions.
var cardinalMoves = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// updateAnt runs one ant's tick: count the step, eat whatever food is under
// it, move, then mark the trail at the new position.
func (w *World) updateAnt(e ecs.Entity) {
	pos := w.posMap.Get(e)
	ant := w.antMap.Get(e)

	ant.Steps++

	if res := w.resources[pos.Cell.X][pos.Cell.Y]; res != nil {
		_, depleted := res.Consume()
		ant.FoundFood = true
		ant.State = components.StateReturning
		if w.recorder != nil {
			w.recorder.RecordFoodConsumed()
		}
		if depleted {
			w.removeResource(pos.Cell)
		}
	}

	w.moveAnt(pos, ant)
	w.markTrail(pos.Cell, ant)
}

// moveAnt applies the state transitions, then picks a movement mode: with
// probability p the ant follows pheromones, otherwise it moves randomly.
func (w *World) moveAnt(pos *components.Position, ant *components.Ant) {
	if pos.Cell == ant.Home {
		if ant.State == components.StateReturning && w.recorder != nil {
			w.recorder.RecordJourneyHome(ant.FoundFood)
		}
		ant.Steps = 0
		ant.State = components.StateExploring
		ant.FoundFood = false
	} else if ant.Steps > w.cfg.Ant.MaxSteps {
		ant.Steps = 0
		ant.State = components.StateReturning
		if w.recorder != nil {
			w.recorder.RecordTimeout()
		}
	}

	var chance float64
	switch {
	case ant.Kind == components.KindWorker:
		chance = w.cfg.Ant.WorkerPheromoneChance
	case ant.State == components.StateReturning:
		chance = w.cfg.Ant.ScoutReturnPheromoneChance
	default:
		// An outbound scout's willingness to stay on established trails
		// falls off exponentially with distance from home.
		chance = math.Exp(-float64(ant.DistHome) / float64(w.cfg.Colony.TerritorySize))
	}

	if w.rng.Float64() < chance {
		w.movePheromones(pos, ant)
	} else {
		w.moveRandom(pos, ant)
	}
}

// correctDirection reports whether a candidate tile moves the ant the right
// way along its journey: closer to home while returning, farther while
// exploring.
func correctDirection(ant *components.Ant, candidate components.Coord) bool {
	d := candidate.ManhattanDist(ant.Home)
	if ant.State == components.StateReturning {
		return d < ant.DistHome
	}
	return d > ant.DistHome
}

// moveRandom steps to the first shuffled in-bounds direction that either
// passes the direction filter or was pre-allowed by the backwards roll.
// Bumping into the grid edge relaxes the filter so edge ants do not pin.
// If no direction passes, the ant falls back to the last in-bounds
// candidate; if every direction leaves the grid, it holds position for
// this tick.
func (w *World) moveRandom(pos *components.Position, ant *components.Ant) {
	moves := cardinalMoves
	w.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	allowBackwards := w.rng.Float64() < w.cfg.Ant.BackwardsChance

	var fallback components.Coord
	haveFallback := false
	for _, m := range moves {
		next, ok := pos.Cell.CheckedMove(w.bounds, m[0], m[1])
		if !ok {
			allowBackwards = true
			continue
		}
		fallback, haveFallback = next, true
		if allowBackwards || correctDirection(ant, next) {
			w.placeAnt(pos, ant, next)
			return
		}
	}
	if haveFallback {
		w.placeAnt(pos, ant, fallback)
	}
}

// movePheromones steps toward the strongest qualifying pheromone among the
// neighbor tiles in the semantically correct direction. Neighbors are
// shuffled first so ties go to a random tile instead of a fixed axis.
// Scouts read both layers, workers only the resource layer. With no
// qualifying pheromone anywhere, the ant moves randomly instead.
func (w *World) movePheromones(pos *components.Position, ant *components.Ant) {
	moves := cardinalMoves
	w.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	strongest := 0
	var best components.Coord
	for _, m := range moves {
		// Clamped look-ahead: edge neighbors stay inspectable. A clamped
		// tile that did not actually move fails the direction filter.
		next := pos.Cell.ClampedMove(w.bounds, m[0], m[1])
		if !correctDirection(ant, next) {
			continue
		}
		cell := w.pheromones[next.X][next.Y]
		if ant.Kind == components.KindScout {
			if p := cell[PheromoneExploration]; p != nil && p.Strength > strongest {
				strongest = p.Strength
				best = next
			}
		}
		if p := cell[PheromoneResource]; p != nil && p.Strength > strongest {
			strongest = p.Strength
			best = next
		}
	}

	if strongest == 0 {
		w.moveRandom(pos, ant)
		return
	}
	w.placeAnt(pos, ant, best)
}

// placeAnt moves the ant and refreshes its cached distance from home.
func (w *World) placeAnt(pos *components.Position, ant *components.Ant, cell components.Coord) {
	pos.Cell = cell
	ant.DistHome = cell.ManhattanDist(ant.Home)
}

// markTrail lays or reinforces a pheromone at the ant's position: the
// resource kind once it has found food, the exploration kind for an
// outbound scout, nothing otherwise.
func (w *World) markTrail(cell components.Coord, ant *components.Ant) {
	var kind PheromoneKind
	switch {
	case ant.FoundFood:
		kind = PheromoneResource
	case ant.Kind == components.KindScout && ant.State == components.StateExploring:
		kind = PheromoneExploration
	default:
		return
	}
	w.layPheromone(cell, kind)
}
