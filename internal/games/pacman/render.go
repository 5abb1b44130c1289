package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Terminal layout: each tile is two characters wide and one row tall,
// below a two-line HUD.
const (
	cellWidth = 2
	hudHeight = 2
	mapWidth  = Columns * cellWidth
	mapHeight = Rows
)

// MinScreenSize returns the smallest terminal that fits the board and HUD.
func MinScreenSize() (w, h int) {
	return mapWidth, mapHeight + hudHeight
}

var adversaryColors = map[Variant]core.Color{
	VariantBlue:   core.ColorCyan,
	VariantOrange: core.ColorOrange,
	VariantPink:   core.ColorBrightMagenta,
	VariantRed:    core.ColorRed,
}

func playerGlyph(h Heading) string {
	switch h {
	case Up:
		return `\/`
	case Down:
		return `/\`
	case Left:
		return ">)"
	default:
		return "(<"
	}
}

// Render draws the HUD, the board and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round == nil {
		msg := "configuration error"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorRed)
		return
	}

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		y := dst.Height() / 2
		dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightWhite)
		dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	snap := g.round.Snapshot()
	offX := (dst.Width() - mapWidth) / 2
	offY := hudHeight

	g.renderHUD(dst, snap, offX)
	g.renderBoard(dst, snap, offX, offY)

	switch snap.Phase {
	case PhaseIntro:
		// Same row as the adversary pen exit, under the walls.
		dst.DrawTextCentered(offY+11, "READY!", core.ColorBrightYellow)
	case PhaseGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press any key to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, offX int) {
	hud := fmt.Sprintf("SCORE %d  LIVES %s  LEVEL %d", snap.Score, strings.Repeat("C", snap.Lives), snap.Level)
	dst.DrawTextColor(offX, 0, hud, core.ColorBrightWhite)
	if g.difficulty != "" {
		label := strings.ToUpper(g.difficulty)
		dst.DrawTextColor(offX+mapWidth-len(label), 0, label, core.ColorGray)
	}
	for x := offX; x < offX+mapWidth; x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, offX, offY int) {
	ts := g.round.Board().TileSize()

	for _, w := range g.round.Board().Walls() {
		x := offX + w.Cell.Col*cellWidth
		y := offY + w.Cell.Row
		dst.DrawTextColor(x, y, "██", core.ColorBlue)
	}

	for _, c := range snap.Collectibles {
		x := offX + (c.X/ts)*cellWidth
		y := offY + c.Y/ts
		dst.SetColor(x, y, '·', core.ColorBrightWhite)
	}

	for _, a := range snap.Adversaries {
		x, y := screenPos(a, ts, offX, offY)
		dst.DrawTextColor(x, y, "◖◗", adversaryColors[a.Variant])
	}

	x, y := screenPos(snap.Player, ts, offX, offY)
	dst.DrawTextColor(x, y, playerGlyph(snap.Player.Heading), core.ColorBrightYellow)
}

// screenPos maps a pixel position to a terminal cell. Horizontal placement
// has half-tile resolution; vertical placement rounds to the nearest row.
func screenPos(o OccupantView, ts, offX, offY int) (x, y int) {
	return offX + o.X*cellWidth/ts, offY + (o.Y+ts/2)/ts
}

func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
