package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(screen),
	}
}

// RenderFrame renders the entire game frame
// Draw order is background, player, bullets, enemies, bosses, then the text overlays
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.SetStyle(baseStyle())
	r.screen.Clear()

	r.canvas.Fill(constants.PlayfieldTop, constants.GridHeight, constants.GridWidth, constants.BackgroundChar, components.ColorBackground)

	ctx.Player.Render(r.canvas)
	for _, b := range ctx.Bullets {
		b.Render(r.canvas)
	}
	for _, e := range ctx.Enemies {
		e.Render(r.canvas)
	}
	for _, b := range ctx.Bosses {
		b.Render(r.canvas)
	}

	r.drawStatusLine(ctx)
	r.drawDebug(ctx)

	r.screen.Show()
}

// drawStatusLine draws score, lives and elapsed seconds on the top row
func (r *TerminalRenderer) drawStatusLine(ctx *engine.GameContext) {
	status := fmt.Sprintf("Score: %d | Lives: %d | Time: %d", ctx.Score, ctx.Player.Lives(), ctx.ElapsedSeconds())
	r.canvas.DrawText(0, constants.StatusRow, status, components.ColorStatus)
}

// drawDebug draws the last key code and the live player bullet count
func (r *TerminalRenderer) drawDebug(ctx *engine.GameContext) {
	r.canvas.DrawText(constants.DebugColumn, constants.DebugKeyRow, fmt.Sprintf("Key: %d", ctx.LastKey), components.ColorDebug)
	r.canvas.DrawText(constants.DebugColumn, constants.DebugBulletRow, fmt.Sprintf("Bullets: %d", ctx.PlayerBulletCount()), components.ColorDebug)
}

// RenderGameOver replaces the frame with the final score
func (r *TerminalRenderer) RenderGameOver(ctx *engine.GameContext) {
	r.screen.Clear()
	r.canvas.DrawText(constants.GameOverColumn, constants.GameOverRow, fmt.Sprintf("Game Over! Score: %d", ctx.Score), components.ColorGameOver)
	r.screen.Show()
}
