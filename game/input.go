package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	// Overlay toggles
	if rl.IsKeyPressed(rl.KeyE) {
		g.showExploration = !g.showExploration
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.showResource = !g.showResource
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.showAnts = !g.showAnts
	}
}
