package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.World.Width != 64 || cfg.World.Height != 64 {
		t.Errorf("world = %dx%d, want 64x64", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Pheromone.MaxStrength != 1000 {
		t.Errorf("max_strength = %d, want 1000", cfg.Pheromone.MaxStrength)
	}
	if cfg.Pheromone.ResourceDecay <= cfg.Pheromone.ExplorationDecay {
		t.Errorf("resource trails must decay faster than exploration trails: %d vs %d",
			cfg.Pheromone.ResourceDecay, cfg.Pheromone.ExplorationDecay)
	}
	if cfg.Colony.ScoutMax != 25 || cfg.Colony.WorkerMax != 10 {
		t.Errorf("caps = %d/%d, want 25/10", cfg.Colony.ScoutMax, cfg.Colony.WorkerMax)
	}
	if cfg.Ant.WorkerPheromoneChance != 0.9 {
		t.Errorf("worker_pheromone_chance = %v, want 0.9", cfg.Ant.WorkerPheromoneChance)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("world:\n  width: 32\n  height: 16\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 32 || cfg.World.Height != 16 {
		t.Errorf("world = %dx%d, want 32x16", cfg.World.Width, cfg.World.Height)
	}
	// Fields absent from the file keep their defaults
	if cfg.Pheromone.MaxStrength != 1000 {
		t.Errorf("max_strength = %d, want default 1000", cfg.Pheromone.MaxStrength)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load defaults: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name  string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }},
		{"negative world height", func(c *Config) { c.World.Height = -3 }},
		{"zero max strength", func(c *Config) { c.Pheromone.MaxStrength = 0 }},
		{"decay above max", func(c *Config) { c.Pheromone.ExplorationDecay = c.Pheromone.MaxStrength + 1 }},
		{"zero resource decay", func(c *Config) { c.Pheromone.ResourceDecay = 0 }},
		{"negative cap", func(c *Config) { c.Colony.ScoutMax = -1 }},
		{"negative spawn rate", func(c *Config) { c.Colony.SpawnRate = -2 }},
		{"zero territory", func(c *Config) { c.Colony.TerritorySize = 0 }},
		{"zero max steps", func(c *Config) { c.Ant.MaxSteps = 0 }},
		{"chance above one", func(c *Config) { c.Ant.BackwardsChance = 1.5 }},
		{"negative chance", func(c *Config) { c.Ant.WorkerPheromoneChance = -0.1 }},
		{"zero resource size", func(c *Config) { c.Resource.Size = 0 }},
		{"too many resources", func(c *Config) { c.Resource.Count = c.World.Width*c.World.Height + 1 }},
		{"zero stats window", func(c *Config) { c.Telemetry.StatsWindow = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Validate rejected defaults: %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width = 17

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.World.Width != 17 {
		t.Errorf("round-trip width = %d, want 17", loaded.World.Width)
	}
}
