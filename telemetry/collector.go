// Package telemetry accumulates engine events into windowed statistics and
// writes them to structured logs and CSV files.
package telemetry

import (
	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/sim"
)

// Collector counts engine events within fixed tick windows. It implements
// sim.Recorder; install it with World.SetRecorder.
type Collector struct {
	windowTicks int
	windowStart int

	scoutSpawns  int
	workerSpawns int

	foodConsumed       int
	resourcesDepleted  int
	journeysHome       int
	journeysWithFood   int
	timeouts           int
	explorationLaid    int
	resourceLaid       int
	explorationExpired int
	resourceExpired    int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordSpawn implements sim.Recorder.
func (c *Collector) RecordSpawn(kind components.AntKind) {
	if kind == components.KindWorker {
		c.workerSpawns++
	} else {
		c.scoutSpawns++
	}
}

// RecordFoodConsumed implements sim.Recorder.
func (c *Collector) RecordFoodConsumed() {
	c.foodConsumed++
}

// RecordResourceDepleted implements sim.Recorder.
func (c *Collector) RecordResourceDepleted() {
	c.resourcesDepleted++
}

// RecordPheromoneLaid implements sim.Recorder.
func (c *Collector) RecordPheromoneLaid(kind sim.PheromoneKind) {
	if kind == sim.PheromoneResource {
		c.resourceLaid++
	} else {
		c.explorationLaid++
	}
}

// RecordPheromoneExpired implements sim.Recorder.
func (c *Collector) RecordPheromoneExpired(kind sim.PheromoneKind) {
	if kind == sim.PheromoneResource {
		c.resourceExpired++
	} else {
		c.explorationExpired++
	}
}

// RecordJourneyHome implements sim.Recorder.
func (c *Collector) RecordJourneyHome(foundFood bool) {
	c.journeysHome++
	if foundFood {
		c.journeysWithFood++
	}
}

// RecordTimeout implements sim.Recorder.
func (c *Collector) RecordTimeout() {
	c.timeouts++
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// Flush produces a WindowStats from the counted events plus the sampled
// world state, then resets the counters for the next window. strengths are
// the active pheromone strengths and distances the ants' distances from
// home, both sampled at window end.
func (c *Collector) Flush(currentTick int, summary sim.Summary, strengths, distances []float64) WindowStats {
	s := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   currentTick,

		Scouts:        summary.Scouts,
		Workers:       summary.Workers,
		ResourceTiles: summary.ResourceTiles,
		FoodRemaining: summary.FoodRemaining,
		Pheromones:    summary.PheromoneEntries,

		ScoutSpawns:        c.scoutSpawns,
		WorkerSpawns:       c.workerSpawns,
		FoodConsumed:       c.foodConsumed,
		ResourcesDepleted:  c.resourcesDepleted,
		JourneysHome:       c.journeysHome,
		JourneysWithFood:   c.journeysWithFood,
		Timeouts:           c.timeouts,
		ExplorationLaid:    c.explorationLaid,
		ResourceLaid:       c.resourceLaid,
		ExplorationExpired: c.explorationExpired,
		ResourceExpired:    c.resourceExpired,
	}

	strength := summarize(strengths)
	s.StrengthMean = strength.mean
	s.StrengthStd = strength.std
	s.StrengthP10 = strength.p10
	s.StrengthP50 = strength.p50
	s.StrengthP90 = strength.p90

	dist := summarize(distances)
	s.DistHomeMean = dist.mean
	s.DistHomeP50 = dist.p50
	s.DistHomeP90 = dist.p90

	*c = Collector{windowTicks: c.windowTicks, windowStart: currentTick}
	return s
}
