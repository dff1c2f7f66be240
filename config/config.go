// Package config provides configuration loading and validation for the simulation.
//
// There is deliberately no package-level config state: Load returns a value
// that is handed to sim.NewWorld once, at construction, and never re-read.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Pheromone PheromoneConfig `yaml:"pheromone"`
	Colony    ColonyConfig    `yaml:"colony"`
	Ant       AntConfig       `yaml:"ant"`
	Resource  ResourceConfig  `yaml:"resource"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	TileSize  int `yaml:"tile_size"` // pixels per world tile
	TargetFPS int `yaml:"target_fps"`
	HUDWidth  int `yaml:"hud_width"` // pixels reserved right of the grid
}

// WorldConfig holds the grid dimensions in tiles.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PheromoneConfig holds the strength cap and per-kind decay rates.
// Resource trails decay faster than exploration trails so stale food
// reports clear sooner.
type PheromoneConfig struct {
	MaxStrength      int `yaml:"max_strength"`
	ExplorationDecay int `yaml:"exploration_decay"`
	ResourceDecay    int `yaml:"resource_decay"`
}

// ColonyConfig holds population caps and spawn behavior.
type ColonyConfig struct {
	ScoutMax      int `yaml:"scout_max"`
	WorkerMax     int `yaml:"worker_max"`
	SpawnRate     int `yaml:"spawn_rate"`     // new ants per colony per tick
	TerritorySize int `yaml:"territory_size"` // distance scale for scout wander probability
}

// AntConfig holds movement parameters.
type AntConfig struct {
	MaxSteps                   int     `yaml:"max_steps"` // journey timeout
	WorkerPheromoneChance      float64 `yaml:"worker_pheromone_chance"`
	ScoutReturnPheromoneChance float64 `yaml:"scout_return_pheromone_chance"`
	BackwardsChance            float64 `yaml:"backwards_chance"`
}

// ResourceConfig holds food placement parameters.
type ResourceConfig struct {
	Size  int `yaml:"size"`  // units per resource tile
	Count int `yaml:"count"` // tiles placed at world creation
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would violate engine invariants.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Pheromone.MaxStrength <= 0 {
		return fmt.Errorf("config: pheromone max_strength must be positive, got %d", c.Pheromone.MaxStrength)
	}
	if c.Pheromone.ExplorationDecay <= 0 || c.Pheromone.ExplorationDecay > c.Pheromone.MaxStrength {
		return fmt.Errorf("config: exploration_decay %d outside (0, %d]", c.Pheromone.ExplorationDecay, c.Pheromone.MaxStrength)
	}
	if c.Pheromone.ResourceDecay <= 0 || c.Pheromone.ResourceDecay > c.Pheromone.MaxStrength {
		return fmt.Errorf("config: resource_decay %d outside (0, %d]", c.Pheromone.ResourceDecay, c.Pheromone.MaxStrength)
	}
	if c.Colony.ScoutMax < 0 || c.Colony.WorkerMax < 0 {
		return fmt.Errorf("config: population caps must be non-negative")
	}
	if c.Colony.SpawnRate < 0 {
		return fmt.Errorf("config: spawn_rate must be non-negative, got %d", c.Colony.SpawnRate)
	}
	if c.Colony.TerritorySize <= 0 {
		return fmt.Errorf("config: territory_size must be positive, got %d", c.Colony.TerritorySize)
	}
	if c.Ant.MaxSteps <= 0 {
		return fmt.Errorf("config: max_steps must be positive, got %d", c.Ant.MaxSteps)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"worker_pheromone_chance", c.Ant.WorkerPheromoneChance},
		{"scout_return_pheromone_chance", c.Ant.ScoutReturnPheromoneChance},
		{"backwards_chance", c.Ant.BackwardsChance},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("config: %s %v outside [0, 1]", p.name, p.value)
		}
	}
	if c.Resource.Size <= 0 {
		return fmt.Errorf("config: resource size must be positive, got %d", c.Resource.Size)
	}
	if c.Resource.Count < 0 || c.Resource.Count > c.World.Width*c.World.Height {
		return fmt.Errorf("config: resource count %d does not fit a %dx%d world", c.Resource.Count, c.World.Width, c.World.Height)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("config: stats_window must be positive, got %d", c.Telemetry.StatsWindow)
	}
	return nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
