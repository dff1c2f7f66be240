package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStart int `csv:"-"`
	WindowEnd   int `csv:"window_end"`

	// Population and grid occupancy at window end
	Scouts        int `csv:"scouts"`
	Workers       int `csv:"workers"`
	ResourceTiles int `csv:"resource_tiles"`
	FoodRemaining int `csv:"food_remaining"`
	Pheromones    int `csv:"pheromones"`

	// Events during the window
	ScoutSpawns        int `csv:"scout_spawns"`
	WorkerSpawns       int `csv:"worker_spawns"`
	FoodConsumed       int `csv:"food_consumed"`
	ResourcesDepleted  int `csv:"resources_depleted"`
	JourneysHome       int `csv:"journeys_home"`
	JourneysWithFood   int `csv:"journeys_with_food"`
	Timeouts           int `csv:"timeouts"`
	ExplorationLaid    int `csv:"exploration_laid"`
	ResourceLaid       int `csv:"resource_laid"`
	ExplorationExpired int `csv:"exploration_expired"`
	ResourceExpired    int `csv:"resource_expired"`

	// Pheromone strength distribution (sampled at window end)
	StrengthMean float64 `csv:"strength_mean"`
	StrengthStd  float64 `csv:"strength_std"`
	StrengthP10  float64 `csv:"strength_p10"`
	StrengthP50  float64 `csv:"strength_p50"`
	StrengthP90  float64 `csv:"strength_p90"`

	// Ant distance-from-home distribution (sampled at window end)
	DistHomeMean float64 `csv:"dist_home_mean"`
	DistHomeP50  float64 `csv:"dist_home_p50"`
	DistHomeP90  float64 `csv:"dist_home_p90"`
}

// distSummary holds the summary statistics of one sampled distribution.
type distSummary struct {
	mean, std, p10, p50, p90 float64
}

// summarize computes mean, standard deviation, and quantiles of a sample.
// The input slice is sorted in place. Empty samples yield zeros.
func summarize(values []float64) distSummary {
	if len(values) == 0 {
		return distSummary{}
	}
	sort.Float64s(values)
	s := distSummary{
		mean: stat.Mean(values, nil),
		p10:  stat.Quantile(0.1, stat.Empirical, values, nil),
		p50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		p90:  stat.Quantile(0.9, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		s.std = stat.StdDev(values, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("scouts", s.Scouts),
		slog.Int("workers", s.Workers),
		slog.Int("resource_tiles", s.ResourceTiles),
		slog.Int("food_remaining", s.FoodRemaining),
		slog.Int("pheromones", s.Pheromones),
		slog.Int("scout_spawns", s.ScoutSpawns),
		slog.Int("worker_spawns", s.WorkerSpawns),
		slog.Int("food_consumed", s.FoodConsumed),
		slog.Int("resources_depleted", s.ResourcesDepleted),
		slog.Int("journeys_home", s.JourneysHome),
		slog.Int("journeys_with_food", s.JourneysWithFood),
		slog.Int("timeouts", s.Timeouts),
		slog.Int("exploration_laid", s.ExplorationLaid),
		slog.Int("resource_laid", s.ResourceLaid),
		slog.Int("exploration_expired", s.ExplorationExpired),
		slog.Int("resource_expired", s.ResourceExpired),
		slog.Float64("strength_mean", s.StrengthMean),
		slog.Float64("strength_p50", s.StrengthP50),
		slog.Float64("dist_home_mean", s.DistHomeMean),
		slog.Float64("dist_home_p90", s.DistHomeP90),
	)
}

// LogStats emits the window to the default slog logger.
func (s WindowStats) LogStats() {
	slog.Info("window stats", "stats", s)
}
