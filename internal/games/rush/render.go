package rush

import (
	"fmt"

	"github.com/dkotenko/clickrush/internal/core"
)

// Minimum terminal size for the playfield to stay clickable.
const (
	minScreenW = 40
	minScreenH = 12
)

// Visual characters.
const (
	targetChar = '█'
	bonusChar  = '▓'
	decoyChar  = '░'
	cursorChar = '+'
)

// playfield returns the on-screen region the play area is scaled into:
// everything below the HUD row, inside the border box.
func (g *Game) playfield() core.Rect {
	return core.NewRect(1, 2, core.Max(1, g.screenW-2), core.Max(1, g.screenH-3))
}

// cellFromUnit maps a play-area point to a terminal cell.
func (g *Game) cellFromUnit(p core.Point) (int, int) {
	r := g.playfield()
	x := r.X + p.X*r.W/g.cfg.Area.Width
	y := r.Y + p.Y*r.H/g.cfg.Area.Height
	return core.Clamp(x, r.X, r.Right()-1), core.Clamp(y, r.Y, r.Bottom()-1)
}

// unitFromCell maps a terminal cell back to a play-area point. Returns false
// for cells outside the playfield.
func (g *Game) unitFromCell(cx, cy int) (core.Point, bool) {
	r := g.playfield()
	if !r.Contains(cx, cy) {
		return core.Point{}, false
	}
	// Sample the center of the cell so clicks land where the glyph is drawn.
	ux := ((cx-r.X)*2 + 1) * g.cfg.Area.Width / (r.W * 2)
	uy := ((cy-r.Y)*2 + 1) * g.cfg.Area.Height / (r.H * 2)
	return core.Pt(
		core.Clamp(ux, 0, g.cfg.Area.Width-1),
		core.Clamp(uy, 0, g.cfg.Area.Height-1),
	), true
}

// cellRect maps a play-area rectangle to a terminal-cell rectangle, at least
// one cell in each dimension so small targets stay visible.
func (g *Game) cellRect(r core.Rect) core.Rect {
	x0, y0 := g.cellFromUnit(core.Pt(r.X, r.Y))
	x1, y1 := g.cellFromUnit(core.Pt(r.Right()-1, r.Bottom()-1))
	return core.NewRect(x0, y0, core.Max(1, x1-x0+1), core.Max(1, y1-y0+1))
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW = dst.Width()
	g.screenH = dst.Height()
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	switch g.phase {
	case PhaseIdle:
		g.renderStart(dst)
	case PhaseRunning:
		g.renderPlay(dst)
	case PhaseEnded:
		g.renderEnd(dst)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	g.renderHUD(dst, "press Space to start")

	lines := []string{
		"T A R G E T   R U S H",
		"",
		fmt.Sprintf("Round length: %d seconds", g.durationSecs),
		"Up/Down adjust, Space or click to start",
		"",
		"Click the target before the timer runs out.",
		"Bonus targets are worth double. The decoy costs a point.",
	}
	g.renderMessageBox(dst, lines)
}

func (g *Game) renderPlay(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d   Time left: %ds", g.score, g.RemainingSeconds())
	g.renderHUD(dst, hud)

	field := g.playfield()
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorGray)

	// Decoy under the target so an (impossible) overlap favors the target.
	dst.DrawRect(g.cellRect(g.DecoyRect()), decoyChar, core.ColorGray)

	targetCells := g.cellRect(g.TargetRect())
	if g.kind == KindBonus {
		dst.DrawRect(targetCells, bonusChar, core.ColorBrightYellow)
	} else {
		dst.DrawRect(targetCells, targetChar, core.ColorBrightGreen)
	}

	cx, cy := g.cellFromUnit(g.cursor)
	dst.SetCell(cx, cy, cursorChar, core.ColorBrightWhite)
}

func (g *Game) renderEnd(dst *core.Screen) {
	g.renderHUD(dst, "round over")

	summary, ok := g.Summary()
	if !ok {
		return
	}

	lines := append([]string{"ROUND OVER", ""}, summary.Lines()...)
	lines = append(lines,
		"",
		fmt.Sprintf("Hits: %d (%d bonus)   Misses: %d   Best streak: %d",
			summary.Hits, summary.BonusHits, summary.Misses, summary.BestStreak),
		"",
		"Press R for a new round",
	)
	g.renderMessageBox(dst, lines)
}

func (g *Game) renderHUD(dst *core.Screen, status string) {
	dst.DrawTextColored(2, 0, " TARGET RUSH ", core.ColorBrightWhite)
	dst.DrawTextColored(17, 0, status, core.ColorGray)
}

// renderMessageBox draws centered lines inside a box in the middle of the
// screen.
func (g *Game) renderMessageBox(dst *core.Screen, lines []string) {
	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 6
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(1, (dst.Height()-boxH)/2)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)

	for i, line := range lines {
		x := boxX + (boxW-len(line))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
