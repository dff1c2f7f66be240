// Package game drives the simulation for interactive and headless runs. It
// is a thin shell around sim.World: it controls tick cadence, reads world
// state between ticks for rendering and telemetry, and never touches the
// engine while an update is in flight.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/config"
	"github.com/pthm-cable/formic/sim"
	"github.com/pthm-cable/formic/telemetry"
)

// Options control a run.
type Options struct {
	Seed           int64
	StatsWindow    int    // ticks per stats window (0 = use config)
	OutputDir      string // CSV output directory ("" = disabled)
	LogStats       bool   // emit window stats via slog
	StepsPerUpdate int    // simulation ticks per update call
}

// Game holds the world plus the viewer/reporting state around it.
type Game struct {
	cfg   *config.Config
	world *sim.World

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	paused         bool
	stepsPerUpdate int

	// Overlay toggles
	showExploration bool
	showResource    bool
	showAnts        bool

	// Pixel geometry, derived from config once
	gridW, gridH int32
}

// NewGame builds a world from the config and wires telemetry around it.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	world, err := sim.NewWorld(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}

	window := opts.StatsWindow
	if window <= 0 {
		window = cfg.Telemetry.StatsWindow
	}
	collector := telemetry.NewCollector(window)
	world.SetRecorder(collector)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	return &Game{
		cfg:             cfg,
		world:           world,
		collector:       collector,
		output:          output,
		logStats:        opts.LogStats,
		stepsPerUpdate:  steps,
		showExploration: true,
		showResource:    true,
		showAnts:        true,
		gridW:           int32(cfg.World.Width * cfg.Screen.TileSize),
		gridH:           int32(cfg.World.Height * cfg.Screen.TileSize),
	}, nil
}

// World exposes the engine for read-only inspection between ticks.
func (g *Game) World() *sim.World {
	return g.world
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int {
	return g.world.Tick()
}

// ScreenSize returns the window dimensions for this configuration.
func (g *Game) ScreenSize() (int32, int32) {
	return g.gridW + int32(g.cfg.Screen.HUDWidth), g.gridH
}

// Update handles input and advances the simulation according to the speed
// setting. Used in graphical mode.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without any input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs exactly one tick and flushes telemetry when a window completes.
func (g *Game) step() {
	g.world.Update()
	g.flushTelemetry()
}

// flushTelemetry samples world state at window boundaries and hands the
// finished window to the log and CSV sinks.
func (g *Game) flushTelemetry() {
	tick := g.world.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	var strengths []float64
	g.world.ForEachPheromone(func(_ components.Coord, _ sim.PheromoneKind, strength int) {
		strengths = append(strengths, float64(strength))
	})

	var distances []float64
	g.world.ForEachAnt(func(_ components.Coord, ant components.Ant) {
		distances = append(distances, float64(ant.DistHome))
	})

	stats := g.collector.Flush(tick, g.world.Summarize(), strengths, distances)

	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// Unload closes the output sinks.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
