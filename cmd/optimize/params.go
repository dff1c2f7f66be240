// Package main provides CMA-ES optimization for foraging parameters.
package main

import (
	"math"

	"github.com/pthm-cable/formic/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters. Grid
// size, population caps, and resource layout are held fixed so fitness
// differences come from foraging behavior alone.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Pheromone layers
			{Name: "exploration_decay", Path: "pheromone.exploration_decay", Min: 1, Max: 50, Default: 5},
			{Name: "resource_decay", Path: "pheromone.resource_decay", Min: 1, Max: 100, Default: 10},
			// Colony
			{Name: "spawn_rate", Path: "colony.spawn_rate", Min: 1, Max: 10, Default: 2},
			{Name: "territory_size", Path: "colony.territory_size", Min: 1, Max: 32, Default: 12},
			// Ant behavior
			{Name: "worker_pheromone_chance", Path: "ant.worker_pheromone_chance", Min: 0, Max: 1, Default: 0.9},
			{Name: "scout_return_pheromone_chance", Path: "ant.scout_return_pheromone_chance", Min: 0, Max: 1, Default: 0.9},
			{Name: "backwards_chance", Path: "ant.backwards_chance", Min: 0, Max: 0.5, Default: 0.1},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct. Integer fields
// are rounded to the nearest step.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	i := 0
	cfg.Pheromone.ExplorationDecay = int(math.Round(clamped[i])); i++
	cfg.Pheromone.ResourceDecay = int(math.Round(clamped[i])); i++
	cfg.Colony.SpawnRate = int(math.Round(clamped[i])); i++
	cfg.Colony.TerritorySize = int(math.Round(clamped[i])); i++
	cfg.Ant.WorkerPheromoneChance = clamped[i]; i++
	cfg.Ant.ScoutReturnPheromoneChance = clamped[i]; i++
	cfg.Ant.BackwardsChance = clamped[i]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Pheromone.ExplorationDecay),
		float64(cfg.Pheromone.ResourceDecay),
		float64(cfg.Colony.SpawnRate),
		float64(cfg.Colony.TerritorySize),
		cfg.Ant.WorkerPheromoneChance,
		cfg.Ant.ScoutReturnPheromoneChance,
		cfg.Ant.BackwardsChance,
	}
}
