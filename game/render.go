package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/sim"
)

// Layer colors. Pheromone tiles ramp linearly from dim to bright with
// strength; ants keep the classic scout-blue / worker-teal scheme.
var (
	backgroundColor = rl.Color{R: 24, G: 20, B: 16, A: 255}
	colonyColor     = rl.Color{R: 212, G: 160, B: 23, A: 255}
	scoutColor      = rl.Color{R: 0, G: 0, B: 255, A: 255}
	workerColor     = rl.Color{R: 50, G: 190, B: 190, A: 255}
)

// Draw renders the world and HUD. Called between ticks only.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawPheromones()
	g.drawResources()
	g.drawColonies()
	if g.showAnts {
		g.drawAnts()
	}
	g.drawHUD()

	rl.EndDrawing()
}

// tileRect converts a grid coordinate to screen pixels.
func (g *Game) tileRect(cell components.Coord) (x, y, size int32) {
	size = int32(g.cfg.Screen.TileSize)
	return int32(cell.X) * size, int32(cell.Y) * size, size
}

// drawPheromones maps strength linearly to color intensity: exploration
// trails in magenta, resource trails in white.
func (g *Game) drawPheromones() {
	maxStrength := g.cfg.Pheromone.MaxStrength
	g.world.ForEachPheromone(func(cell components.Coord, kind sim.PheromoneKind, strength int) {
		intensity := uint8(55 + 200*strength/maxStrength)
		var c rl.Color
		switch kind {
		case sim.PheromoneExploration:
			if !g.showExploration {
				return
			}
			c = rl.Color{R: intensity, G: 0, B: intensity, A: 255}
		case sim.PheromoneResource:
			if !g.showResource {
				return
			}
			c = rl.Color{R: intensity, G: intensity, B: intensity, A: 255}
		}
		x, y, size := g.tileRect(cell)
		rl.DrawRectangle(x, y, size, size, c)
	})
}

// drawResources shades food tiles green by their remaining fraction.
func (g *Game) drawResources() {
	g.world.ForEachResource(func(cell components.Coord, _ int, fraction float64) {
		green := uint8(100 + 155*fraction)
		x, y, size := g.tileRect(cell)
		rl.DrawRectangle(x, y, size, size, rl.Color{R: 0, G: green, B: 40, A: 255})
	})
}

func (g *Game) drawColonies() {
	for _, colony := range g.world.Colonies() {
		x, y, size := g.tileRect(colony.Position())
		rl.DrawRectangle(x, y, size, size, colonyColor)
	}
}

// drawAnts paints each ant as a dot inside its tile.
func (g *Game) drawAnts() {
	size := int32(g.cfg.Screen.TileSize)
	radius := float32(size) * 0.35
	g.world.ForEachAnt(func(pos components.Coord, ant components.Ant) {
		c := scoutColor
		if ant.Kind == components.KindWorker {
			c = workerColor
		}
		cx := int32(pos.X)*size + size/2
		cy := int32(pos.Y)*size + size/2
		rl.DrawCircle(cx, cy, radius, c)
	})
}
