package racer

import (
	"fmt"

	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/scene"
)

// controlsHint is shown on the bottom row.
const controlsHint = "←/→ steer  ↑ center  W gas  S brake  F/R gear  C camera  P pause  Q quit"

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.car == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if h > 2 {
		view := core.NewRect(0, 1, w, h-2)
		g.camera.SetViewport(view.W, view.H)
		g.camera.Follow(g.car)
		g.renderer.Render(dst, scene.NewProjector(g.camera, view), g.track, g.pose, g.camera.Mode)
	}

	g.drawHUD(dst)
	if h > 1 {
		dst.DrawTextColored(1, h-1, controlsHint, core.ColorGray)
	}

	if g.colliding && !g.gameOver {
		dst.DrawTextColored((w-len("CRASH!"))/2, 2, "CRASH!", core.ColorBrightRed)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "TIME UP",
			fmt.Sprintf("Laps: %d  Best: %s  |  Press N to restart", g.laps.Count(), core.FormatLapTime(g.ticksToDuration(g.laps.Best()))))
	}
}

// drawHUD writes the status line on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(g.car.SpeedDisplay(), core.ColorBrightGreen)
	put(g.car.GearDisplay(), gearColor(g.car.GearDisplay()))
	put(fmt.Sprintf("Lap %d (%d/%d)", g.laps.Count()+1, g.laps.Progress(), checkpoints), core.ColorBrightWhite)
	put("Last "+core.FormatLapTime(g.ticksToDuration(g.laps.Last())), core.ColorWhite)
	put("Best "+core.FormatLapTime(g.ticksToDuration(g.laps.Best())), core.ColorBrightYellow)
	if g.remaining >= 0 {
		put("Time "+core.FormatClock(g.Remaining()), core.ColorBrightCyan)
	}
	put(g.camera.Mode.String(), core.ColorGray)
}

func gearColor(gear string) core.Color {
	if gear == "Reverse" {
		return core.ColorOrange
	}
	return core.ColorBrightBlue
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen, subtitleLen := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
