package rush

// Snapshot captures the observable round state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Phase         string
	Score         int
	DurationSecs  int
	RemainingSecs int
	TargetX       int
	TargetY       int
	DecoyX        int
	DecoyY        int
	Kind          string
	Hits          int
	BonusHits     int
	Misses        int
	BestStreak    int
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase.String(),
		Score:         g.score,
		DurationSecs:  g.durationSecs,
		RemainingSecs: g.RemainingSeconds(),
		TargetX:       g.target.X,
		TargetY:       g.target.Y,
		DecoyX:        g.decoy.X,
		DecoyY:        g.decoy.Y,
		Kind:          g.kind.String(),
		Hits:          g.hits,
		BonusHits:     g.bonusHits,
		Misses:        g.misses,
		BestStreak:    g.bestStreak,
	}
}
