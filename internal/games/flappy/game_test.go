package flappy

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// memScores is an in-memory high score store that records writes.
type memScores struct {
	score   int
	getErr  error
	setErr  error
	written []int
}

func (m *memScores) GetHighScore() (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.score, nil
}

func (m *memScores) SetHighScore(score int) error {
	m.written = append(m.written, score)
	if m.setErr != nil {
		return m.setErr
	}
	m.score = score
	return nil
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// newTestGame builds a reset, not-yet-started game over the default config.
func newTestGame(t *testing.T, store *memScores, mutate func(*config.FlappyConfig)) *Game {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	env := registry.Env{}
	if store != nil {
		env.HighScores = store
	}
	g := NewWithConfig(cfg, env)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return g
}

// startedGame returns a game in its first running session.
func startedGame(t *testing.T, store *memScores, mutate func(*config.FlappyConfig)) *Game {
	t.Helper()
	g := newTestGame(t, store, mutate)
	g.Step(press(core.ActionStartOrRestart))
	if g.st.Mode != core.ModeRunning {
		t.Fatalf("expected running after start, got %v (err=%v)", g.st.Mode, g.Err())
	}
	return g
}

func noGravity(cfg *config.FlappyConfig) {
	cfg.Physics.Gravity = 0
}

func run(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

// endRun forces a terminal ceiling hit on the next tick.
func endRun(t *testing.T, g *Game) {
	t.Helper()
	g.st.Timers.Cancel(EffectInvincible)
	g.st.Timers.Cancel(EffectShield)
	g.st.Player.Y = 10
	g.st.Player.Velocity = -11
	g.Step(core.NewInputFrame())
	if g.st.Mode != core.ModeGameOver {
		t.Fatalf("expected game over, got %v", g.st.Mode)
	}
}

func TestResetWaitsForStart(t *testing.T) {
	g := newTestGame(t, nil, nil)

	run(g, 50)

	if g.st.Mode != core.ModeNotStarted {
		t.Fatalf("mode = %v, want NotStarted", g.st.Mode)
	}
	if g.st.Tick != 0 || g.st.Clock != 0 {
		t.Errorf("simulation advanced before start: tick=%d clock=%d", g.st.Tick, g.st.Clock)
	}
	if g.st.Player.Y != 250 || g.st.Player.X != 50 {
		t.Errorf("player moved before start: (%g, %g)", g.st.Player.X, g.st.Player.Y)
	}
}

func TestStartArmsInvincibility(t *testing.T) {
	g := startedGame(t, nil, noGravity)

	if g.st.Session != 1 {
		t.Errorf("session = %d, want 1", g.st.Session)
	}
	if g.st.Tick != 0 {
		t.Errorf("start must not tick, got tick %d", g.st.Tick)
	}

	// 2000 ms at 20 ms per tick covers ticks 1..100.
	run(g, 100)
	if !g.invincible() {
		t.Fatal("expected invincibility through tick 100")
	}
	run(g, 1)
	if g.invincible() {
		t.Fatal("expected invincibility to expire on tick 101")
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		y, vel   float64
		wantMode core.Mode
		wantY    float64
	}{
		{"exactly ceiling", 10, -10.5, core.ModeRunning, 0},
		{"past ceiling", 10, -11, core.ModeGameOver, 10},
		{"exactly floor", 370, 4.5, core.ModeRunning, 375},
		{"past floor", 370, 5, core.ModeGameOver, 370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t, nil, nil)
			g.st.Timers.Cancel(EffectInvincible)
			g.st.Player.Y = tt.y
			g.st.Player.Velocity = tt.vel

			g.Step(core.NewInputFrame())

			if g.st.Mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", g.st.Mode, tt.wantMode)
			}
			if g.st.Player.Y != tt.wantY {
				t.Errorf("y = %g, want %g", g.st.Player.Y, tt.wantY)
			}
		})
	}
}

func TestBoundaryProtection(t *testing.T) {
	t.Run("invincible clamps", func(t *testing.T) {
		g := startedGame(t, nil, nil)
		g.st.Player.Y = 10
		g.st.Player.Velocity = -11

		g.Step(core.NewInputFrame())

		if g.st.Mode != core.ModeRunning {
			t.Fatalf("mode = %v, want Running", g.st.Mode)
		}
		if g.st.Player.Y != 0 || g.st.Player.Velocity != 0 {
			t.Errorf("player = (y=%g, v=%g), want (0, 0)", g.st.Player.Y, g.st.Player.Velocity)
		}
	})

	t.Run("shield absorbs floor hit", func(t *testing.T) {
		g := startedGame(t, nil, nil)
		g.st.Timers.Cancel(EffectInvincible)
		g.applyPowerUp(PowerUpShield)
		g.st.Player.Y = 370
		g.st.Player.Velocity = 5

		g.Step(core.NewInputFrame())

		if g.st.Mode != core.ModeRunning {
			t.Fatalf("mode = %v, want Running", g.st.Mode)
		}
		if g.hasShield() {
			t.Error("shield should be consumed")
		}
		if g.st.Player.Y != 375 {
			t.Errorf("y = %g, want 375", g.st.Player.Y)
		}
	})
}

func TestJumpAndMove(t *testing.T) {
	g := startedGame(t, nil, nil)

	g.Step(press(core.ActionJump))
	// -10 then gravity 0.5
	if g.st.Player.Velocity != -9.5 {
		t.Errorf("velocity = %g, want -9.5", g.st.Player.Velocity)
	}
	if g.st.Player.Y != 240.5 {
		t.Errorf("y = %g, want 240.5", g.st.Player.Y)
	}
	if !g.Snapshot().Effects.JumpFlash {
		t.Error("expected jump flash after jump")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionMoveRight)
	in.Set(core.ActionMoveRight)
	g.Step(in)
	if g.st.Player.X != 66 {
		t.Errorf("x = %g, want 66 after two right steps", g.st.Player.X)
	}

	for i := 0; i < 20; i++ {
		g.Step(press(core.ActionMoveLeft))
	}
	if g.st.Player.X != 0 {
		t.Errorf("x = %g, want clamped to 0", g.st.Player.X)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	run(g, 10)

	g.Step(press(core.ActionTogglePause))
	if g.st.Mode != core.ModePaused {
		t.Fatalf("mode = %v, want Paused", g.st.Mode)
	}
	tick, clock := g.st.Tick, g.st.Clock

	for i := 0; i < 500; i++ {
		g.Step(press(core.ActionJump))
	}

	if g.st.Tick != tick || g.st.Clock != clock {
		t.Errorf("paused game advanced: tick %d->%d clock %d->%d", tick, g.st.Tick, clock, g.st.Clock)
	}
	if got := g.st.Timers.Remaining(EffectInvincible, g.st.Clock); got != 1800 {
		t.Errorf("invincibility remaining = %d, want 1800", got)
	}
	if g.st.Player.Velocity != 0 {
		t.Errorf("jump applied while paused, velocity = %g", g.st.Player.Velocity)
	}

	g.Step(press(core.ActionTogglePause))
	if g.st.Mode != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", g.st.Mode)
	}
	if g.st.Tick != tick+1 {
		t.Errorf("resume should tick once, tick = %d", g.st.Tick)
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := startedGame(t, nil, nil)
	run(g, 40)
	g.st.Score = 7
	g.st.Combo = 3
	g.applyPowerUp(PowerUpSlowMotion)
	endRun(t, g)

	if len(g.st.Particles) != 15 {
		t.Errorf("particles = %d, want 15", len(g.st.Particles))
	}

	g.Step(press(core.ActionStartOrRestart))

	if g.st.Mode != core.ModeRunning || g.st.Session != 2 {
		t.Fatalf("mode=%v session=%d, want Running session 2", g.st.Mode, g.st.Session)
	}
	if g.st.Score != 0 || g.st.Combo != 0 || g.st.Distance != 0 {
		t.Errorf("score/combo/distance not reset: %d/%d/%g", g.st.Score, g.st.Combo, g.st.Distance)
	}
	if g.st.Player.X != 50 || g.st.Player.Y != 250 || g.st.Player.Velocity != 0 {
		t.Errorf("player not reset: %+v", g.st.Player)
	}
	if len(g.st.Obstacles)+len(g.st.PowerUps)+len(g.st.Particles) != 0 {
		t.Error("entities not cleared")
	}
	if g.slowMotion() || !g.invincible() {
		t.Error("expected fresh timers with only invincibility armed")
	}
	if g.st.Speed != 2.5 {
		t.Errorf("speed = %g, want 2.5", g.st.Speed)
	}
}

func TestHighScoreCommittedOnce(t *testing.T) {
	store := &memScores{score: 20}
	g := startedGame(t, store, nil)

	if g.HighScore() != 20 {
		t.Fatalf("high score = %d, want 20", g.HighScore())
	}

	g.st.Score = 37
	endRun(t, g)
	run(g, 50)

	if !reflect.DeepEqual(store.written, []int{37}) {
		t.Errorf("writes = %v, want [37]", store.written)
	}
	if g.HighScore() != 37 || !g.Snapshot().NewRecord {
		t.Errorf("high score = %d, new record = %v", g.HighScore(), g.Snapshot().NewRecord)
	}
}

func TestHighScoreNotBeaten(t *testing.T) {
	store := &memScores{score: 20}
	g := startedGame(t, store, nil)
	g.st.Score = 12
	endRun(t, g)

	if len(store.written) != 0 {
		t.Errorf("writes = %v, want none", store.written)
	}
	if g.Snapshot().NewRecord {
		t.Error("no new record expected")
	}
}

func TestHighScoreStoreErrors(t *testing.T) {
	store := &memScores{score: 99, getErr: errors.New("disk gone"), setErr: errors.New("read-only")}
	g := startedGame(t, store, nil)

	if g.HighScore() != 0 {
		t.Fatalf("high score = %d, want 0 on read failure", g.HighScore())
	}

	g.st.Score = 3
	endRun(t, g)
	if g.HighScore() != 3 {
		t.Errorf("in-memory high score = %d, want 3 despite write failure", g.HighScore())
	}
}

func TestSharedHighScoreStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.SetHighScore("classic", 20); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	newPlayer := func() *Game {
		g := NewWithConfig(config.DefaultFlappyConfig(), registry.Env{HighScores: store.HighScores("classic")})
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
		g.Step(press(core.ActionStartOrRestart))
		return g
	}
	a, b := newPlayer(), newPlayer()

	a.st.Score = 30
	endRun(t, a)
	b.st.Score = 25
	endRun(t, b)

	if got, _ := store.GetHighScore("classic"); got != 30 {
		t.Fatalf("stored high score = %d, want 30", got)
	}

	b.Step(press(core.ActionStartOrRestart))
	if b.HighScore() != 30 {
		t.Errorf("high score after restart = %d, want 30", b.HighScore())
	}
}

func TestInvalidConfigRefusesStart(t *testing.T) {
	g := newTestGame(t, nil, func(cfg *config.FlappyConfig) {
		cfg.Obstacles.GapSize = 600
	})

	if !errors.Is(g.Err(), config.ErrInvalidConfig) {
		t.Fatalf("Err() = %v, want ErrInvalidConfig", g.Err())
	}

	g.Step(press(core.ActionStartOrRestart))
	if g.st.Mode != core.ModeNotStarted {
		t.Errorf("mode = %v, want NotStarted", g.st.Mode)
	}
}

func TestAftermathRunsCosmetics(t *testing.T) {
	g := startedGame(t, nil, nil)
	endRun(t, g)

	snap := g.Snapshot()
	if !snap.Effects.Shake {
		t.Fatal("expected shake at game over")
	}
	score, distance, first := snap.Score, snap.Distance, snap.Particles[0]

	run(g, 20)

	snap = g.Snapshot()
	if snap.Effects.Shake {
		t.Error("shake should have expired after 200 ms")
	}
	if snap.Score != score || snap.Distance != distance {
		t.Error("score or distance changed after game over")
	}
	if len(snap.Particles) > 0 && snap.Particles[0] == first {
		t.Error("particles did not move after game over")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}
	inputs[0].Set(core.ActionStartOrRestart)

	play := func() Snapshot {
		g := newTestGame(t, nil, nil)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestStateMirrorsMode(t *testing.T) {
	g := startedGame(t, nil, nil)
	g.Step(press(core.ActionTogglePause))

	st := g.State()
	if !st.Paused || st.GameOver || st.Mode != core.ModePaused {
		t.Errorf("state = %+v", st)
	}
}

func TestRegisteredProfiles(t *testing.T) {
	for _, p := range Profiles {
		if !registry.Exists(p.ID) {
			t.Errorf("profile %q not registered", p.ID)
		}
	}

	g, err := registry.Create("rush", registry.Env{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "rush" || g.Title() != "Flappy Rush" {
		t.Errorf("got %s / %s", g.ID(), g.Title())
	}
	if g.TickInterval().Milliseconds() != 20 {
		t.Errorf("tick interval = %v, want 20ms", g.TickInterval())
	}
}

func TestProfileLoadAppliesOverrides(t *testing.T) {
	rush := Profiles[1]
	if _, err := rush.Load(registry.Env{ConfigPath: "testdata/none.yaml"}); err == nil {
		t.Fatal("expected error for missing custom config")
	}

	cfg, err := rush.Load(registry.Env{Preset: "fixed"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Obstacles.SpawnPeriod != 2000 {
		t.Errorf("spawn period = %d, want 2000", cfg.Obstacles.SpawnPeriod)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
