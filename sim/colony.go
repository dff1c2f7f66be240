package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/formic/components"
)

// Colony is a population container occupying one tile. It introduces new
// ants under a per-tick spawn quota and drives its members' updates. Ants
// never die; the population is bounded by the per-kind caps, not by death.
type Colony struct {
	pos       components.Coord
	members   map[components.AntKind][]ecs.Entity
	spawnRate int
}

func newColony(pos components.Coord, spawnRate int) *Colony {
	members := make(map[components.AntKind][]ecs.Entity, len(components.AntKinds))
	for _, kind := range components.AntKinds {
		members[kind] = nil
	}
	return &Colony{pos: pos, members: members, spawnRate: spawnRate}
}

// Position returns the colony's tile, which is also every member's anchor.
func (c *Colony) Position() components.Coord {
	return c.pos
}

// Count returns the number of members of one kind.
func (c *Colony) Count(kind components.AntKind) int {
	return len(c.members[kind])
}

// update spawns this tick's quota, then moves every member. Kinds run in
// declaration order and ants in spawn order, so a seeded run is reproducible.
func (c *Colony) update(w *World) {
	c.spawn(w)
	for _, kind := range components.AntKinds {
		for _, e := range c.members[kind] {
			w.updateAnt(e)
		}
	}
}

// spawn distributes the fixed per-tick spawn rate across under-filled kinds,
// proportionally to how many ants each kind is missing.
func (c *Colony) spawn(w *World) {
	var required [len(components.AntKinds)]int
	totalRequired := 0
	for i, kind := range components.AntKinds {
		need := w.maxAnts(kind) - len(c.members[kind])
		if need > 0 {
			required[i] = need
			totalRequired += need
		}
	}
	if totalRequired == 0 {
		return
	}

	quotas := allocateSpawns(required[:], c.spawnRate, totalRequired)
	for i, kind := range components.AntKinds {
		for n := 0; n < quotas[i]; n++ {
			c.members[kind] = append(c.members[kind], w.spawnAnt(kind, c.pos))
		}
	}
}

// allocateSpawns splits spawnRate across kinds in proportion to how many
// ants of each kind are required, flooring each share. A share never
// exceeds the requirement, so populations cannot overshoot their caps.
//
// Example: caps 50 scouts / 100 workers, current 10 / 50, rate 20:
// required 40 + 50 = 90, shares floor(40*20/90) = 8 and floor(50*20/90) = 11.
func allocateSpawns(required []int, spawnRate, totalRequired int) []int {
	quotas := make([]int, len(required))
	if totalRequired <= 0 || spawnRate <= 0 {
		return quotas
	}
	for i, need := range required {
		if need <= 0 {
			continue
		}
		q := need * spawnRate / totalRequired
		if q > need {
			q = need
		}
		quotas[i] = q
	}
	return quotas
}

// spawnAnt creates one ant entity at the given anchor with fresh journey state.
func (w *World) spawnAnt(kind components.AntKind, anchor components.Coord) ecs.Entity {
	pos := components.Position{Cell: anchor}
	ant := components.Ant{Kind: kind, Home: anchor}
	e := w.antMapper.NewEntity(&pos, &ant)
	if w.recorder != nil {
		w.recorder.RecordSpawn(kind)
	}
	return e
}
