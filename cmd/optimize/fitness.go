package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/config"
	"github.com/pthm-cable/formic/sim"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// foragingRecorder counts the engine events fitness is computed from.
type foragingRecorder struct {
	foodConsumed     int
	journeysWithFood int
	timeouts         int
}

func (r *foragingRecorder) RecordSpawn(components.AntKind)       {}
func (r *foragingRecorder) RecordFoodConsumed()                  { r.foodConsumed++ }
func (r *foragingRecorder) RecordResourceDepleted()              {}
func (r *foragingRecorder) RecordPheromoneLaid(sim.PheromoneKind) {}
func (r *foragingRecorder) RecordPheromoneExpired(sim.PheromoneKind) {}
func (r *foragingRecorder) RecordTimeout()                       { r.timeouts++ }
func (r *foragingRecorder) RecordJourneyHome(foundFood bool) {
	if foundFood {
		r.journeysWithFood++
	}
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness rewards food eaten and, more heavily, journeys that carried food
// all the way home; timeouts are penalized as wasted effort.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; each seed owns its own world.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation runs one seed to maxTicks and scores it.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) seedResult {
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, x)

	w, err := sim.NewWorld(&cfg, seed)
	if err != nil {
		return seedResult{fitness: math.Inf(1)}
	}

	rec := &foragingRecorder{}
	w.SetRecorder(rec)

	for t := 0; t < fe.maxTicks; t++ {
		w.Update()
		if w.Summarize().FoodRemaining == 0 {
			break
		}
	}

	score := float64(rec.foodConsumed) + 2.0*float64(rec.journeysWithFood) - 0.5*float64(rec.timeouts)
	quality := 0.0
	if rec.foodConsumed > 0 {
		quality = float64(rec.journeysWithFood) / float64(rec.foodConsumed)
	}
	return seedResult{fitness: -score, quality: quality}
}
