// Package rush implements Target Rush: a target appears at a random position
// in the play area and must be clicked before the round timer runs out. Hits
// score points and relocate the target; every fourth target on average is a
// bonus worth double. A decoy is rendered alongside the target and clicking
// it costs a point.
package rush

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/dkotenko/clickrush/internal/config"
	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/observe"
	"github.com/dkotenko/clickrush/internal/registry"
)

// Phase is the round lifecycle state. Transitions are strictly
// Idle -> Running -> Ended -> Idle; there is no pause and no early
// termination.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TargetKind determines point value and visual treatment.
type TargetKind int

const (
	KindNormal TargetKind = iota
	KindBonus
)

// String returns a human-readable kind name.
func (k TargetKind) String() string {
	if k == KindBonus {
		return "bonus"
	}
	return "normal"
}

// Observable fields published through the notifier.
const (
	FieldPhase    observe.Field = "phase"
	FieldScore    observe.Field = "score"
	FieldDuration observe.Field = "duration"
	FieldTarget   observe.Field = "target"
	FieldDecoy    observe.Field = "decoy"
	FieldKind     observe.Field = "kind"
)

// Summary holds the end-of-round statistics.
type Summary struct {
	Points       int
	DurationSecs int
	PointsPerSec float64
	Hits         int
	BonusHits    int
	Misses       int
	BestStreak   int
}

// Lines returns the summary formatted for display.
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("Points: %d", s.Points),
		fmt.Sprintf("Time: %d seconds", s.DurationSecs),
		fmt.Sprintf("Points per second: %g", s.PointsPerSec),
	}
}

// Game implements the Target Rush round engine. All positions and sizes are
// in play-area units; Render scales them to terminal cells.
type Game struct {
	cfg      config.RushConfig
	rng      *rand.Rand
	logger   *log.Logger
	notifier *observe.Notifier

	tick     uint64
	tickRate int

	phase        Phase
	score        int
	durationSecs int
	ticksLeft    int

	target core.Point
	decoy  core.Point
	kind   TargetKind

	cursor core.Point

	hits       int
	bonusHits  int
	misses     int
	strays     int
	streak     int
	bestStreak int
	misuses    int

	summary *Summary

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level hooks set by the CLI before game creation, following the
// platform's pattern for per-game flags.
var (
	configPath    string
	startDuration int
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartDuration overrides the round duration for the next round.
// 0 means use the configured default.
func SetStartDuration(secs int) {
	startDuration = secs
}

// New creates a Target Rush game with configuration loaded from the usual
// search path.
func New() *Game {
	cfg, err := config.LoadRush(configPath)
	if err != nil {
		cfg = config.DefaultRushConfig()
		cfg.Normalize()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration. Used by tests.
func NewWithConfig(cfg config.RushConfig) *Game {
	cfg.Normalize()
	return &Game{
		cfg:      cfg,
		logger:   log.New(io.Discard),
		notifier: observe.NewNotifier(),
	}
}

func init() {
	registry.Register("rush", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rush"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Target Rush"
}

// SetLogger replaces the diagnostics logger. The default discards output so
// engine diagnostics never corrupt the terminal UI.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Notifier exposes the field-change notifier for subscribers.
func (g *Game) Notifier() *observe.Notifier {
	return g.notifier
}

// Reset initializes or restarts the game on the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = core.Max(1, cfg.TickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.tick = 0
	g.ticksLeft = 0
	g.summary = nil
	g.resetCounters()

	duration := g.cfg.Round.DefaultDuration
	if startDuration > 0 {
		duration = startDuration
		startDuration = 0
	}
	observe.Set(g.notifier, FieldDuration, &g.durationSecs, g.cfg.ClampDuration(duration))
	observe.Set(g.notifier, FieldScore, &g.score, 0)
	observe.Set(g.notifier, FieldPhase, &g.phase, PhaseIdle)

	g.cursor = core.Pt(g.cfg.Area.Width/2, g.cfg.Area.Height/2)
}

func (g *Game) resetCounters() {
	g.hits = 0
	g.bonusHits = 0
	g.misses = 0
	g.strays = 0
	g.streak = 0
	g.bestStreak = 0
}

// Start arms the countdown and places the first target. Valid only from the
// start screen.
func (g *Game) Start() {
	if g.phase != PhaseIdle {
		g.misuse("start")
		return
	}

	observe.Set(g.notifier, FieldDuration, &g.durationSecs, g.cfg.ClampDuration(g.durationSecs))
	observe.Set(g.notifier, FieldScore, &g.score, 0)
	g.resetCounters()
	g.summary = nil

	// The countdown is owned by the engine and re-armed here, so a duration
	// change made on the start screen takes effect on the next round.
	g.ticksLeft = g.durationSecs * g.tickRate

	g.placeTarget()
	observe.Set(g.notifier, FieldPhase, &g.phase, PhaseRunning)
}

// Hit scores the current target and advances to the next one. Ignored with a
// diagnostic outside a running round.
func (g *Game) Hit() {
	if g.phase != PhaseRunning {
		g.misuse("hit")
		return
	}

	points := g.cfg.Scoring.NormalPoints
	if g.kind == KindBonus {
		points = g.cfg.Scoring.BonusPoints
		g.bonusHits++
	}
	g.hits++
	g.streak++
	if g.streak > g.bestStreak {
		g.bestStreak = g.streak
	}
	observe.Set(g.notifier, FieldScore, &g.score, g.score+points)

	g.placeTarget()
}

// Miss applies the decoy penalty and advances to the next target. The score
// may go negative; no floor is enforced. Ignored with a diagnostic outside a
// running round.
func (g *Game) Miss() {
	if g.phase != PhaseRunning {
		g.misuse("miss")
		return
	}

	g.misses++
	g.streak = 0
	observe.Set(g.notifier, FieldScore, &g.score, g.score-g.cfg.Scoring.MissPenalty)

	g.placeTarget()
}

// Retry returns to the start screen after a round has ended. The countdown
// is re-armed by the next Start.
func (g *Game) Retry() {
	if g.phase != PhaseEnded {
		g.misuse("retry")
		return
	}

	g.summary = nil
	observe.Set(g.notifier, FieldScore, &g.score, 0)
	observe.Set(g.notifier, FieldPhase, &g.phase, PhaseIdle)
}

// SetDuration sets the configured round length, clamped to the configured
// limits. Takes effect on the next Start.
func (g *Game) SetDuration(secs int) {
	observe.Set(g.notifier, FieldDuration, &g.durationSecs, g.cfg.ClampDuration(secs))
}

// expire ends the round: disarms the countdown and computes the summary.
func (g *Game) expire() {
	if g.phase != PhaseRunning {
		g.misuse("expire")
		return
	}

	g.ticksLeft = 0
	// durationSecs is clamped >= 1 at every input point, so the division is
	// always defined.
	g.summary = &Summary{
		Points:       g.score,
		DurationSecs: g.durationSecs,
		PointsPerSec: float64(g.score) / float64(g.durationSecs),
		Hits:         g.hits,
		BonusHits:    g.bonusHits,
		Misses:       g.misses,
		BestStreak:   g.bestStreak,
	}
	observe.Set(g.notifier, FieldPhase, &g.phase, PhaseEnded)
}

func (g *Game) misuse(op string) {
	g.misuses++
	g.logger.Debug("trigger ignored in current phase", "op", op, "phase", g.phase.String())
}

// Step advances the simulation by one tick. Click resolution happens before
// the countdown decrement, so a last-instant hit always lands before expiry.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIdle:
		g.stepIdle(in)
	case PhaseRunning:
		g.stepRunning(in)
	case PhaseEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionPress) || in.Has(core.ActionConfirm) {
			g.Retry()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepIdle(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.SetDuration(g.durationSecs + g.cfg.Round.DurationStep)
	}
	if in.Has(core.ActionDown) {
		g.SetDuration(g.durationSecs - g.cfg.Round.DurationStep)
	}
	if in.Has(core.ActionPress) || in.Has(core.ActionConfirm) || in.Click != nil {
		g.Start()
	}
}

func (g *Game) stepRunning(in core.InputFrame) {
	g.moveCursor(in)

	if p, ok := g.pressPoint(in); ok {
		g.resolvePress(p)
	}

	if g.ticksLeft > 0 {
		g.ticksLeft--
	}
	if g.ticksLeft == 0 {
		g.expire()
	}
}

// moveCursor applies keyboard cursor movement in play-area units.
func (g *Game) moveCursor(in core.InputFrame) {
	step := g.cfg.Cursor.Step
	if in.Has(core.ActionUp) {
		g.cursor.Y -= step
	}
	if in.Has(core.ActionDown) {
		g.cursor.Y += step
	}
	if in.Has(core.ActionLeft) {
		g.cursor.X -= step
	}
	if in.Has(core.ActionRight) {
		g.cursor.X += step
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.cfg.Area.Width-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.cfg.Area.Height-1)
}

// pressPoint resolves this frame's press to a play-area point. A mouse click
// also warps the cursor to the clicked cell.
func (g *Game) pressPoint(in core.InputFrame) (core.Point, bool) {
	if in.Click != nil {
		p, ok := g.unitFromCell(in.Click.X, in.Click.Y)
		if ok {
			g.cursor = p
			return p, true
		}
		return core.Point{}, false
	}
	if in.Has(core.ActionPress) {
		return g.cursor, true
	}
	return core.Point{}, false
}

// resolvePress scores a press at a play-area point: the target counts as a
// hit, the decoy as a miss, anywhere else is a stray.
func (g *Game) resolvePress(p core.Point) {
	switch {
	case g.TargetRect().ContainsPoint(p):
		g.Hit()
	case g.DecoyRect().ContainsPoint(p):
		g.Miss()
	default:
		g.strays++
	}
}

// State returns the platform-visible status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		RoundOver: g.phase == PhaseEnded,
	}
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// Duration returns the configured round length in seconds.
func (g *Game) Duration() int {
	return g.durationSecs
}

// RemainingSeconds returns the countdown value rounded up to whole seconds.
func (g *Game) RemainingSeconds() int {
	if g.phase != PhaseRunning {
		return 0
	}
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
}

// Kind returns the current target kind.
func (g *Game) Kind() TargetKind {
	return g.kind
}

// TargetRect returns the clickable target rectangle in play-area units.
func (g *Game) TargetRect() core.Rect {
	return core.NewRect(g.target.X, g.target.Y, g.cfg.Target.Width, g.cfg.Target.Height)
}

// DecoyRect returns the decoy rectangle in play-area units.
func (g *Game) DecoyRect() core.Rect {
	return core.NewRect(g.decoy.X, g.decoy.Y, g.cfg.Target.Width, g.cfg.Target.Height)
}

// Summary returns the end-of-round summary. The second return is false
// until a round has ended.
func (g *Game) Summary() (Summary, bool) {
	if g.summary == nil {
		return Summary{}, false
	}
	return *g.summary, true
}

// MisuseCount returns how many triggers were ignored for arriving in the
// wrong phase.
func (g *Game) MisuseCount() int {
	return g.misuses
}
