package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/formic/components"
)

const maxStepsPerUpdate = 10

// drawHUD renders the stats panel and run controls right of the grid.
func (g *Game) drawHUD() {
	panelX := float32(g.gridW) + 10
	y := float32(10)

	summary := g.world.Summarize()
	lines := []string{
		fmt.Sprintf("Tick %d", summary.Tick),
		fmt.Sprintf("Colonies: %d", summary.Colonies),
		fmt.Sprintf("Scouts: %d  Workers: %d", summary.Scouts, summary.Workers),
		fmt.Sprintf("Resource tiles: %d (%d food)", summary.ResourceTiles, summary.FoodRemaining),
		fmt.Sprintf("Pheromones: %d", summary.PheromoneEntries),
	}
	for _, line := range lines {
		rl.DrawText(line, int32(panelX), int32(y), 16, rl.RayWhite)
		y += 22
	}

	// Per-colony breakdown, worker/scout counts per anchor
	for i, colony := range g.world.Colonies() {
		counts := map[components.AntKind]int{}
		g.world.ForEachColonyAnt(colony, func(kind components.AntKind, _ components.Coord) {
			counts[kind]++
		})
		line := fmt.Sprintf("C%d %s S:%d W:%d", i, colony.Position(),
			counts[components.KindScout], counts[components.KindWorker])
		rl.DrawText(line, int32(panelX), int32(y), 14, rl.LightGray)
		y += 18
	}
	y += 12

	// Speed slider and pause button
	speed := gui.SliderBar(
		rl.Rectangle{X: panelX + 44, Y: y, Width: 140, Height: 20},
		"speed", fmt.Sprintf("%dx", g.stepsPerUpdate),
		float32(g.stepsPerUpdate), 1, maxStepsPerUpdate,
	)
	g.stepsPerUpdate = int(speed + 0.5)
	y += 30

	label := "Pause"
	if g.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 100, Height: 26}, label) {
		g.paused = !g.paused
	}
	y += 40

	rl.DrawText("space pause  < > speed", int32(panelX), int32(y), 12, rl.Gray)
	rl.DrawText("E/R trails  A ants", int32(panelX), int32(y+16), 12, rl.Gray)
	rl.DrawFPS(int32(panelX), g.gridH-24)
}
