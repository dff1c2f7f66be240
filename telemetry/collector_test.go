package telemetry

import (
	"testing"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/sim"
)

// The collector must satisfy the engine's event interface.
var _ sim.Recorder = (*Collector)(nil)

func TestCollectorWindowing(t *testing.T) {
	c := NewCollector(100)

	if c.ShouldFlush(50) {
		t.Error("flush requested mid-window")
	}
	if !c.ShouldFlush(100) {
		t.Error("no flush at window end")
	}
	if !c.ShouldFlush(150) {
		t.Error("no flush past window end")
	}

	c.Flush(100, sim.Summary{}, nil, nil)
	if c.ShouldFlush(150) {
		t.Error("flush requested 50 ticks into the next window")
	}
	if !c.ShouldFlush(200) {
		t.Error("no flush at second window end")
	}
}

func TestCollectorCounts(t *testing.T) {
	c := NewCollector(10)

	c.RecordSpawn(components.KindScout)
	c.RecordSpawn(components.KindScout)
	c.RecordSpawn(components.KindWorker)
	c.RecordFoodConsumed()
	c.RecordResourceDepleted()
	c.RecordJourneyHome(true)
	c.RecordJourneyHome(false)
	c.RecordJourneyHome(true)
	c.RecordTimeout()
	c.RecordPheromoneLaid(sim.PheromoneExploration)
	c.RecordPheromoneLaid(sim.PheromoneResource)
	c.RecordPheromoneLaid(sim.PheromoneResource)
	c.RecordPheromoneExpired(sim.PheromoneExploration)

	summary := sim.Summary{Scouts: 5, Workers: 2, ResourceTiles: 3, FoodRemaining: 40, PheromoneEntries: 9}
	s := c.Flush(10, summary, nil, nil)

	if s.ScoutSpawns != 2 || s.WorkerSpawns != 1 {
		t.Errorf("spawns = %d/%d, want 2/1", s.ScoutSpawns, s.WorkerSpawns)
	}
	if s.FoodConsumed != 1 || s.ResourcesDepleted != 1 {
		t.Errorf("food = %d depleted = %d, want 1/1", s.FoodConsumed, s.ResourcesDepleted)
	}
	if s.JourneysHome != 3 || s.JourneysWithFood != 2 {
		t.Errorf("journeys = %d with food %d, want 3/2", s.JourneysHome, s.JourneysWithFood)
	}
	if s.Timeouts != 1 {
		t.Errorf("timeouts = %d, want 1", s.Timeouts)
	}
	if s.ExplorationLaid != 1 || s.ResourceLaid != 2 || s.ExplorationExpired != 1 || s.ResourceExpired != 0 {
		t.Errorf("pheromone events = %d/%d laid %d/%d expired",
			s.ExplorationLaid, s.ResourceLaid, s.ExplorationExpired, s.ResourceExpired)
	}
	if s.Scouts != 5 || s.Workers != 2 || s.FoodRemaining != 40 || s.Pheromones != 9 {
		t.Errorf("summary fields not carried: %+v", s)
	}

	// Flush resets every counter for the next window.
	next := c.Flush(20, sim.Summary{}, nil, nil)
	if next.ScoutSpawns != 0 || next.JourneysHome != 0 || next.ResourceLaid != 0 {
		t.Errorf("counters survived flush: %+v", next)
	}
	if next.WindowStart != 10 || next.WindowEnd != 20 {
		t.Errorf("window = [%d, %d], want [10, 20]", next.WindowStart, next.WindowEnd)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0)
	if !c.ShouldFlush(1) {
		t.Error("window below one tick not clamped")
	}
}
