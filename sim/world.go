package sim

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/config"
)

// pheromoneCell holds the two independent trail layers of one tile.
type pheromoneCell [pheromoneKindCount]*Pheromone

// pheromoneRef is one entry of the sparse pheromone index.
type pheromoneRef struct {
	Cell components.Coord
	Kind PheromoneKind
}

// Recorder receives engine events as they happen. All methods are invoked
// synchronously inside Update; implementations must not call back into the
// World. A nil recorder is valid and disables event collection.
type Recorder interface {
	RecordSpawn(kind components.AntKind)
	RecordFoodConsumed()
	RecordResourceDepleted()
	RecordPheromoneLaid(kind PheromoneKind)
	RecordPheromoneExpired(kind PheromoneKind)
	RecordJourneyHome(foundFood bool)
	RecordTimeout()
}

// World owns the full grid state: the dense resource and pheromone grids,
// their sparse index lists, and the colonies. The dense grids give O(1)
// point lookup during movement evaluation; the index lists give iteration
// over active entries without scanning empty tiles. Grid and index always
// move together: an entry exists in a grid cell iff it is in the index.
//
// A World is single-threaded. Nothing may read it while Update runs;
// renderers and telemetry read snapshots between ticks.
type World struct {
	cfg    *config.Config
	bounds components.Bounds
	rng    *rand.Rand

	world     *ecs.World
	antMapper *ecs.Map2[components.Position, components.Ant]
	antFilter *ecs.Filter2[components.Position, components.Ant]
	posMap    *ecs.Map1[components.Position]
	antMap    *ecs.Map1[components.Ant]

	resources     [][]*Resource
	resourceIndex []components.Coord

	pheromones     [][]pheromoneCell
	pheromoneIndex []pheromoneRef

	colonies []*Colony

	tick     int
	recorder Recorder
}

// NewWorld builds a world from the given configuration and seed: empty
// grids, one default colony at the grid center, and the configured number
// of resources at random unoccupied tiles. The config is read here and
// never re-read mid-run.
func NewWorld(cfg *config.Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds := components.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}
	world := ecs.NewWorld()

	w := &World{
		cfg:       cfg,
		bounds:    bounds,
		rng:       rand.New(rand.NewSource(seed)),
		world:     world,
		antMapper: ecs.NewMap2[components.Position, components.Ant](world),
		antFilter: ecs.NewFilter2[components.Position, components.Ant](world),
		posMap:    ecs.NewMap1[components.Position](world),
		antMap:    ecs.NewMap1[components.Ant](world),
	}

	w.resources = make([][]*Resource, bounds.Width)
	w.pheromones = make([][]pheromoneCell, bounds.Width)
	for x := 0; x < bounds.Width; x++ {
		w.resources[x] = make([]*Resource, bounds.Height)
		w.pheromones[x] = make([]pheromoneCell, bounds.Height)
	}

	w.AddColony(bounds.Center())
	for i := 0; i < cfg.Resource.Count; i++ {
		if err := w.AddResource(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// SetRecorder installs an event recorder. May only be called between ticks.
func (w *World) SetRecorder(r Recorder) {
	w.recorder = r
}

// AddColony creates a colony at the given position with the configured
// spawn rate. Ants are introduced by the colony's own spawn quota.
func (w *World) AddColony(pos components.Coord) *Colony {
	c := newColony(pos, w.cfg.Colony.SpawnRate)
	w.colonies = append(w.colonies, c)
	return c
}

// AddResource places a full resource at a random tile not already holding
// one, keeping grid and index consistent.
func (w *World) AddResource() error {
	if len(w.resourceIndex) >= w.bounds.Tiles() {
		return fmt.Errorf("no free tile for a new resource in a %dx%d world", w.bounds.Width, w.bounds.Height)
	}
	cell := w.bounds.Random(w.rng)
	for w.resources[cell.X][cell.Y] != nil {
		cell = w.bounds.Random(w.rng)
	}
	res := NewResource(w.cfg.Resource.Size)
	w.resources[cell.X][cell.Y] = &res
	w.resourceIndex = append(w.resourceIndex, cell)
	return nil
}

// removeResource clears a depleted tile from the grid and the index.
func (w *World) removeResource(cell components.Coord) {
	w.resources[cell.X][cell.Y] = nil
	for i, c := range w.resourceIndex {
		if c == cell {
			w.resourceIndex = append(w.resourceIndex[:i], w.resourceIndex[i+1:]...)
			break
		}
	}
	if w.recorder != nil {
		w.recorder.RecordResourceDepleted()
	}
}

// layPheromone reinforces the trail of the given kind at a tile, creating a
// full-strength marker (and registering it in the index) on first visit.
// Reinforcement adds the marker's own current strength, so an active trail
// saturates quickly.
func (w *World) layPheromone(cell components.Coord, kind PheromoneKind) {
	if p := w.pheromones[cell.X][cell.Y][kind]; p != nil {
		p.Refresh(p.Strength, w.cfg.Pheromone.MaxStrength)
		return
	}
	p := defaultPheromone(kind, w.cfg)
	w.pheromones[cell.X][cell.Y][kind] = &p
	w.pheromoneIndex = append(w.pheromoneIndex, pheromoneRef{Cell: cell, Kind: kind})
	if w.recorder != nil {
		w.recorder.RecordPheromoneLaid(kind)
	}
}

// Update advances the simulation by exactly one tick: every colony spawns
// its quota and moves its ants, then the pheromone index is swept once.
// Agents act on last tick's pheromone state before it weakens; decaying
// after movement gives ants a full tick to react to a fresh trail.
func (w *World) Update() {
	for _, c := range w.colonies {
		c.update(w)
	}

	retained := w.pheromoneIndex[:0]
	for _, ref := range w.pheromoneIndex {
		p := w.pheromones[ref.Cell.X][ref.Cell.Y][ref.Kind]
		if p.Tick() {
			retained = append(retained, ref)
			continue
		}
		w.pheromones[ref.Cell.X][ref.Cell.Y][ref.Kind] = nil
		if w.recorder != nil {
			w.recorder.RecordPheromoneExpired(ref.Kind)
		}
	}
	w.pheromoneIndex = retained

	w.tick++
}

// Tick returns the number of completed update calls.
func (w *World) Tick() int {
	return w.tick
}

// Bounds returns the world extent in tiles.
func (w *World) Bounds() components.Bounds {
	return w.bounds
}

// Colonies returns the colony list. Callers must treat it as read-only.
func (w *World) Colonies() []*Colony {
	return w.colonies
}

// ResourceAt returns the resource on a tile, or nil.
func (w *World) ResourceAt(cell components.Coord) *Resource {
	return w.resources[cell.X][cell.Y]
}

// PheromoneAt returns the pheromone of one kind on a tile, or nil.
func (w *World) PheromoneAt(cell components.Coord, kind PheromoneKind) *Pheromone {
	return w.pheromones[cell.X][cell.Y][kind]
}

// ForEachResource iterates the active resource tiles through the sparse
// index, yielding the remaining count and the remaining fraction.
func (w *World) ForEachResource(fn func(cell components.Coord, remaining int, fraction float64)) {
	for _, cell := range w.resourceIndex {
		r := w.resources[cell.X][cell.Y]
		fn(cell, r.Remaining, r.Fraction())
	}
}

// ForEachPheromone iterates the active pheromones through the sparse index.
func (w *World) ForEachPheromone(fn func(cell components.Coord, kind PheromoneKind, strength int)) {
	for _, ref := range w.pheromoneIndex {
		fn(ref.Cell, ref.Kind, w.pheromones[ref.Cell.X][ref.Cell.Y][ref.Kind].Strength)
	}
}

// ForEachAnt iterates every ant in the world, in no particular order.
func (w *World) ForEachAnt(fn func(pos components.Coord, ant components.Ant)) {
	query := w.antFilter.Query()
	for query.Next() {
		pos, ant := query.Get()
		fn(pos.Cell, *ant)
	}
}

// ForEachColonyAnt iterates one colony's ants in update order, per kind.
func (w *World) ForEachColonyAnt(c *Colony, fn func(kind components.AntKind, pos components.Coord)) {
	for _, kind := range components.AntKinds {
		for _, e := range c.members[kind] {
			fn(kind, w.posMap.Get(e).Cell)
		}
	}
}

// AntCount returns the number of ants of one kind across all colonies.
func (w *World) AntCount(kind components.AntKind) int {
	n := 0
	for _, c := range w.colonies {
		n += c.Count(kind)
	}
	return n
}

// Summary is a cheap snapshot of aggregate world state for dashboards,
// logging, and determinism checks.
type Summary struct {
	Tick             int
	Colonies         int
	Scouts           int
	Workers          int
	ResourceTiles    int
	FoodRemaining    int
	PheromoneEntries int
}

// Summarize collects a Summary from current state.
func (w *World) Summarize() Summary {
	s := Summary{
		Tick:             w.tick,
		Colonies:         len(w.colonies),
		Scouts:           w.AntCount(components.KindScout),
		Workers:          w.AntCount(components.KindWorker),
		ResourceTiles:    len(w.resourceIndex),
		PheromoneEntries: len(w.pheromoneIndex),
	}
	for _, cell := range w.resourceIndex {
		s.FoodRemaining += w.resources[cell.X][cell.Y].Remaining
	}
	return s
}

// maxAnts returns the configured population cap for a kind.
func (w *World) maxAnts(kind components.AntKind) int {
	if kind == components.KindWorker {
		return w.cfg.Colony.WorkerMax
	}
	return w.cfg.Colony.ScoutMax
}
