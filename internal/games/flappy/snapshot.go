package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Effects is the read-only view of the status flags.
type Effects struct {
	Invincible  bool
	Shield      bool
	SlowMotion  bool
	ComboBanner bool
	JumpFlash   bool
	Shake       bool
}

// Snapshot is a read-only copy of the state after a tick, for presentation.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Mode    core.Mode
	Session int
	Tick    uint64

	Player    Player
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle
	Clouds    []Cloud
	Ground    float64

	Score          int
	Distance       float64
	Combo          int
	Speed          float64
	EffectiveSpeed float64
	HighScore      int
	NewRecord      bool
	Medal          Medal
	Effects        Effects
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	if g.st == nil {
		return Snapshot{}
	}
	st := g.st
	return Snapshot{
		Mode:    st.Mode,
		Session: st.Session,
		Tick:    st.Tick,

		Player:    st.Player,
		Obstacles: append([]Obstacle(nil), st.Obstacles...),
		PowerUps:  append([]PowerUp(nil), st.PowerUps...),
		Particles: append([]Particle(nil), st.Particles...),
		Clouds:    append([]Cloud(nil), st.Clouds...),
		Ground:    st.Ground,

		Score:          st.Score,
		Distance:       st.Distance,
		Combo:          st.Combo,
		Speed:          st.Speed,
		EffectiveSpeed: g.effectiveSpeed(),
		HighScore:      g.highScore,
		NewRecord:      g.newRecord,
		Medal:          MedalFor(st.Score),
		Effects: Effects{
			Invincible:  g.invincible(),
			Shield:      g.hasShield(),
			SlowMotion:  g.slowMotion(),
			ComboBanner: st.Timers.Active(EffectComboBanner),
			JumpFlash:   st.Timers.Active(EffectJumpFlash),
			Shake:       st.Timers.Active(EffectShake),
		},
	}
}
