package rush

import (
	"strings"
	"testing"

	"github.com/dkotenko/clickrush/internal/config"
	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/observe"
)

func testConfig() config.RushConfig {
	cfg := config.DefaultRushConfig()
	cfg.Normalize()
	return cfg
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	})
	return g
}

func TestStartThenImmediateExpiry(t *testing.T) {
	for _, duration := range []int{1, 2, 5, 30, 300} {
		g := newTestGame(1)
		g.SetDuration(duration)
		g.Start()
		if g.Phase() != PhaseRunning {
			t.Fatalf("duration %d: expected running after Start, got %v", duration, g.Phase())
		}

		g.expire()

		if g.Phase() != PhaseEnded {
			t.Errorf("duration %d: expected ended after expiry, got %v", duration, g.Phase())
		}
		summary, ok := g.Summary()
		if !ok {
			t.Fatalf("duration %d: expected a summary after expiry", duration)
		}
		if summary.PointsPerSec != 0 {
			t.Errorf("duration %d: points per second = %v, expected 0", duration, summary.PointsPerSec)
		}
		if summary.DurationSecs != duration {
			t.Errorf("duration %d: summary duration = %d", duration, summary.DurationSecs)
		}
	}
}

func TestHitScoring(t *testing.T) {
	g := newTestGame(2)
	g.Start()

	g.kind = KindNormal
	g.Hit()
	if g.Score() != 1 {
		t.Errorf("normal hit: score = %d, expected 1", g.Score())
	}

	g.kind = KindBonus
	g.Hit()
	if g.Score() != 3 {
		t.Errorf("bonus hit: score = %d, expected 3", g.Score())
	}
}

func TestMissPenaltyHasNoFloor(t *testing.T) {
	g := newTestGame(3)
	g.Start()

	for i := 0; i < 3; i++ {
		g.Miss()
	}
	if g.Score() != -3 {
		t.Errorf("score = %d, expected -3 after three misses", g.Score())
	}
}

func TestRetryResetsFromNegativeScore(t *testing.T) {
	g := newTestGame(4)
	g.Start()
	g.Miss()
	g.Miss()
	g.expire()

	if g.Phase() != PhaseEnded {
		t.Fatalf("expected ended, got %v", g.Phase())
	}
	if g.Score() != -2 {
		t.Fatalf("score = %d, expected -2", g.Score())
	}

	g.Retry()

	if g.Phase() != PhaseIdle {
		t.Errorf("expected idle after Retry, got %v", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0 after Retry", g.Score())
	}
	if _, ok := g.Summary(); ok {
		t.Error("summary should be cleared by Retry")
	}
}

func TestRoundSequence(t *testing.T) {
	// Start(1s) -> Hit on a normal target -> expiry: score 1, 1 point/sec.
	g := newTestGame(5)
	g.SetDuration(1)
	g.Start()

	g.kind = KindNormal
	g.Hit()
	g.expire()

	if g.Phase() != PhaseEnded {
		t.Fatalf("expected ended, got %v", g.Phase())
	}
	if g.Score() != 1 {
		t.Fatalf("score = %d, expected 1", g.Score())
	}

	summary, ok := g.Summary()
	if !ok {
		t.Fatal("expected a summary")
	}
	want := []string{"Points: 1", "Time: 1 seconds", "Points per second: 1"}
	got := summary.Lines()
	if len(got) != len(want) {
		t.Fatalf("summary lines = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary line %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestPhaseTransitionsThroughStep(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5, Seed: 6})
	g.SetDuration(1)

	if g.Phase() != PhaseIdle {
		t.Fatalf("expected idle after Reset, got %v", g.Phase())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionPress)
	g.Step(in)
	if g.Phase() != PhaseRunning {
		t.Fatalf("expected running after press on the start screen, got %v", g.Phase())
	}

	// 1 second at 5 ticks/sec: the round ends on the fifth tick.
	in.Clear()
	for i := 0; i < 4; i++ {
		g.Step(in)
		if g.Phase() != PhaseRunning {
			t.Fatalf("tick %d: round ended early", i)
		}
	}
	g.Step(in)
	if g.Phase() != PhaseEnded {
		t.Fatalf("expected ended after the countdown, got %v", g.Phase())
	}

	in.Set(core.ActionRestart)
	g.Step(in)
	if g.Phase() != PhaseIdle {
		t.Errorf("expected idle after restart, got %v", g.Phase())
	}
}

func TestLastInstantHitLandsBeforeExpiry(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 7})
	g.SetDuration(1)

	in := core.NewInputFrame()
	in.Set(core.ActionPress)
	g.Step(in) // Start; one tick remains

	// Press on the target during the expiring tick.
	g.kind = KindNormal
	tx, ty := g.TargetRect().Center()
	g.cursor = core.Pt(tx, ty)
	in.Clear()
	in.Set(core.ActionPress)
	g.Step(in)

	if g.Phase() != PhaseEnded {
		t.Fatalf("expected ended, got %v", g.Phase())
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected the last-instant hit to count", g.Score())
	}
}

func TestTriggersOutsideRunningAreIgnored(t *testing.T) {
	g := newTestGame(8)

	g.Hit()
	g.Miss()
	if g.Score() != 0 {
		t.Errorf("score = %d, triggers outside a round must not mutate state", g.Score())
	}
	if g.MisuseCount() != 2 {
		t.Errorf("misuse count = %d, expected 2", g.MisuseCount())
	}

	g.Retry() // not ended either
	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", g.Phase())
	}
	if g.MisuseCount() != 3 {
		t.Errorf("misuse count = %d, expected 3", g.MisuseCount())
	}
}

func TestDurationClamping(t *testing.T) {
	g := newTestGame(9)

	g.SetDuration(0)
	if g.Duration() != 1 {
		t.Errorf("duration = %d, expected clamp to 1", g.Duration())
	}

	g.SetDuration(99999)
	if g.Duration() != 300 {
		t.Errorf("duration = %d, expected clamp to 300", g.Duration())
	}
}

func TestDurationAdjustOnStartScreen(t *testing.T) {
	g := newTestGame(10)
	start := g.Duration()

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if g.Duration() != start+5 {
		t.Errorf("duration = %d, expected %d after increase", g.Duration(), start+5)
	}

	in.Clear()
	in.Set(core.ActionDown)
	g.Step(in)
	g.Step(in)
	if g.Duration() != start-5 {
		t.Errorf("duration = %d, expected %d after two decreases", g.Duration(), start-5)
	}
}

func TestCursorPressHitsTarget(t *testing.T) {
	g := newTestGame(11)
	g.Start()
	g.kind = KindNormal

	tx, ty := g.TargetRect().Center()
	g.cursor = core.Pt(tx, ty)

	in := core.NewInputFrame()
	in.Set(core.ActionPress)
	g.Step(in)

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1 after pressing on the target", g.Score())
	}
}

func TestDecoyPressCountsAsMiss(t *testing.T) {
	g := newTestGame(12)
	g.Start()

	// The exclusion constrains anchor points, not whole rectangles, so pick
	// a decoy cell that is not also covered by the target.
	decoy, target := g.DecoyRect(), g.TargetRect()
	press, found := core.Point{}, false
	for y := decoy.Y; y < decoy.Bottom() && !found; y++ {
		for x := decoy.X; x < decoy.Right() && !found; x++ {
			if !target.Contains(x, y) {
				press, found = core.Pt(x, y), true
			}
		}
	}
	if !found {
		t.Fatal("decoy entirely covered by the target; placement is broken")
	}
	g.cursor = press

	in := core.NewInputFrame()
	in.Set(core.ActionPress)
	g.Step(in)

	if g.Score() != -1 {
		t.Errorf("score = %d, expected -1 after pressing the decoy", g.Score())
	}
}

func TestDeterminism(t *testing.T) {
	script := func(g *Game) Snapshot {
		in := core.NewInputFrame()
		for i := 0; i < 200; i++ {
			in.Clear()
			switch {
			case i == 0:
				in.Set(core.ActionPress)
			case i%7 == 0:
				in.Set(core.ActionRight)
				in.Set(core.ActionPress)
			case i%13 == 0:
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 424242}
	g1 := NewWithConfig(testConfig())
	g1.Reset(cfg)
	g2 := NewWithConfig(testConfig())
	g2.Reset(cfg)

	if s1, s2 := script(g1), script(g2); s1 != s2 {
		t.Errorf("same seed and inputs must produce identical snapshots:\n%+v\n%+v", s1, s2)
	}
}

func TestObserverSeesPhaseAndScore(t *testing.T) {
	g := newTestGame(13)

	var phases []Phase
	g.Notifier().Subscribe(FieldPhase, func(c observe.Change) {
		phases = append(phases, c.New.(Phase))
	})
	scoreEvents := 0
	g.Notifier().Subscribe(FieldScore, func(observe.Change) { scoreEvents++ })

	g.Start()
	g.kind = KindNormal
	g.Hit()
	g.expire()
	g.Retry()

	wantPhases := []Phase{PhaseRunning, PhaseEnded, PhaseIdle}
	if len(phases) != len(wantPhases) {
		t.Fatalf("phase events = %v, expected %v", phases, wantPhases)
	}
	for i := range wantPhases {
		if phases[i] != wantPhases[i] {
			t.Errorf("phase event %d = %v, expected %v", i, phases[i], wantPhases[i])
		}
	}

	// One for the hit, one for the reset on Retry. Start's reset to zero is
	// suppressed because the score was already zero.
	if scoreEvents != 2 {
		t.Errorf("score events = %d, expected 2", scoreEvents)
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(14)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "T A R G E T   R U S H") {
		t.Error("start screen should show the title")
	}
	if !strings.Contains(out, "Round length: 30 seconds") {
		t.Error("start screen should show the configured duration")
	}
}

func TestRenderEndScreenShowsSummary(t *testing.T) {
	g := newTestGame(15)
	g.SetDuration(2)
	g.Start()
	g.kind = KindNormal
	g.Hit()
	g.expire()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"ROUND OVER", "Points: 1", "Time: 2 seconds", "Points per second: 0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("end screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(16)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("small terminals should get a notice instead of the game")
	}
}
