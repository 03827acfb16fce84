package rush

import (
	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/observe"
)

// placeTarget draws the next target position, decoy position and target
// kind. The target is uniform over the positions where it fully fits the
// play area; the decoy is drawn by rejection sampling until its position
// falls outside the exclusion square anchored at the target's top-left
// corner. Normalized configs keep the exclusion strictly smaller than the
// draw range, so the loop terminates; the attempt cap is a backstop.
func (g *Game) placeTarget() {
	maxX := g.cfg.Area.Width - g.cfg.Target.Width
	maxY := g.cfg.Area.Height - g.cfg.Target.Height

	target := core.Pt(g.rng.Intn(maxX+1), g.rng.Intn(maxY+1))

	var decoy core.Point
	for i := 0; i < g.cfg.Placement.MaxAttempts; i++ {
		decoy = core.Pt(g.rng.Intn(maxX+1), g.rng.Intn(maxY+1))
		if !inExclusion(target, decoy, g.cfg.Placement.Exclusion) {
			break
		}
	}
	if inExclusion(target, decoy, g.cfg.Placement.Exclusion) {
		// Attempt cap exhausted; push the decoy to the corner farthest from
		// the target.
		decoy = core.Pt(0, 0)
		if target.X < maxX/2 {
			decoy.X = maxX
		}
		if target.Y < maxY/2 {
			decoy.Y = maxY
		}
	}

	observe.Set(g.notifier, FieldTarget, &g.target, target)
	observe.Set(g.notifier, FieldDecoy, &g.decoy, decoy)

	// One draw in N is a bonus: values 1..N-1 map to normal, N to bonus.
	kind := KindNormal
	if 1+g.rng.Intn(g.cfg.Scoring.BonusOneIn) == g.cfg.Scoring.BonusOneIn {
		kind = KindBonus
	}
	observe.Set(g.notifier, FieldKind, &g.kind, kind)
}

// inExclusion reports whether the decoy position falls inside the square of
// the given side anchored at the target's top-left corner. The left and top
// bounds are inclusive: a decoy at the exact target column is excluded too.
func inExclusion(target, decoy core.Point, side int) bool {
	dx := decoy.X - target.X
	dy := decoy.Y - target.Y
	return dx >= 0 && dx < side && dy >= 0 && dy < side
}
