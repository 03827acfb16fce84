package rush

import (
	"math"
	"testing"

	"github.com/dkotenko/clickrush/internal/core"
)

func TestDecoyNeverInsideExclusionSquare(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGame(seed)
		g.Start()

		excl := g.cfg.Placement.Exclusion
		for i := 0; i < 200; i++ {
			g.placeTarget()

			dx := g.decoy.X - g.target.X
			dy := g.decoy.Y - g.target.Y
			if dx >= 0 && dx < excl && dy >= 0 && dy < excl {
				t.Fatalf("seed %d draw %d: decoy (%d,%d) inside the %dx%d square at target (%d,%d)",
					seed, i, g.decoy.X, g.decoy.Y, excl, excl, g.target.X, g.target.Y)
			}
		}
	}
}

func TestPlacementStaysInBounds(t *testing.T) {
	g := newTestGame(77)
	g.Start()

	area := core.NewRect(0, 0, g.cfg.Area.Width, g.cfg.Area.Height)
	for i := 0; i < 500; i++ {
		g.placeTarget()

		tr := g.TargetRect()
		if tr.X < 0 || tr.Y < 0 || tr.Right() > area.W || tr.Bottom() > area.H {
			t.Fatalf("draw %d: target %+v outside the %dx%d play area", i, tr, area.W, area.H)
		}
		dr := g.DecoyRect()
		if dr.X < 0 || dr.Y < 0 || dr.Right() > area.W || dr.Bottom() > area.H {
			t.Fatalf("draw %d: decoy %+v outside the %dx%d play area", i, dr, area.W, area.H)
		}
	}
}

func TestBonusKindDistribution(t *testing.T) {
	g := newTestGame(4242)
	g.Start()

	const draws = 20000
	bonus := 0
	for i := 0; i < draws; i++ {
		g.placeTarget()
		if g.kind == KindBonus {
			bonus++
		}
	}

	got := float64(bonus) / float64(draws)
	// One draw in four is a bonus; 2% tolerance is generous for 20k draws.
	if math.Abs(got-0.25) > 0.02 {
		t.Errorf("bonus fraction = %.4f, expected about 0.25", got)
	}
}

func TestInExclusionBounds(t *testing.T) {
	target := core.Pt(100, 100)

	tests := []struct {
		name  string
		decoy core.Point
		want  bool
	}{
		{"same position", core.Pt(100, 100), true},
		{"inside the square", core.Pt(110, 110), true},
		{"same column, inside rows", core.Pt(100, 120), true},
		{"just past the right edge", core.Pt(125, 100), false},
		{"just past the bottom edge", core.Pt(100, 125), false},
		{"left of the target", core.Pt(99, 100), false},
		{"above the target", core.Pt(100, 99), false},
		{"far away", core.Pt(300, 300), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := inExclusion(target, tc.decoy, 25); got != tc.want {
				t.Errorf("inExclusion(%v, %v) = %v, expected %v", target, tc.decoy, got, tc.want)
			}
		})
	}
}

func TestPlacementFallbackWhenAttemptsExhausted(t *testing.T) {
	g := newTestGame(99)
	g.Start()
	g.cfg.Placement.MaxAttempts = 1

	// Even with a single attempt the decoy must end up outside the square.
	excl := g.cfg.Placement.Exclusion
	for i := 0; i < 500; i++ {
		g.placeTarget()
		if inExclusion(g.target, g.decoy, excl) {
			t.Fatalf("draw %d: fallback left the decoy inside the exclusion square", i)
		}
	}
}
