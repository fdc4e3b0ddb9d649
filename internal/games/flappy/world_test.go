package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestObstacleSpawnCadence(t *testing.T) {
	g := startedGame(t, nil, noGravity)

	run(g, 124)
	if n := len(g.st.Obstacles); n != 0 {
		t.Fatalf("obstacles after 124 ticks = %d, want 0", n)
	}

	run(g, 1)
	if n := len(g.st.Obstacles); n != 1 {
		t.Fatalf("obstacles after 125 ticks = %d, want 1", n)
	}
	o := g.st.Obstacles[0]
	if o.X != 800 {
		t.Errorf("new obstacle x = %g, want 800", o.X)
	}
	if o.GapY < 50 || o.GapY > 170 {
		t.Errorf("gap y = %g, want within [50, 170]", o.GapY)
	}

	run(g, 1)
	if got := g.st.Obstacles[0].X; got != 797.5 {
		t.Errorf("obstacle x after one tick = %g, want 797.5", got)
	}
}

func TestObstacleGapRange(t *testing.T) {
	g := startedGame(t, nil, nil)
	for i := 0; i < 1000; i++ {
		g.spawnObstacle()
	}
	for _, o := range g.st.Obstacles {
		if o.GapY < 50 || o.GapY > 170 || o.GapSize != 200 {
			t.Fatalf("obstacle %d: gap [%g, +%g] out of range", o.ID, o.GapY, o.GapSize)
		}
	}
	if g.st.Obstacles[999].ID != 999 {
		t.Errorf("ids not sequential: last id = %d", g.st.Obstacles[999].ID)
	}
}

func TestPowerUpSpawnRate(t *testing.T) {
	g := startedGame(t, nil, func(cfg *config.FlappyConfig) {
		cfg.Obstacles.SpawnPeriod = 1 << 30
	})

	const firings = 10000
	for i := 0; i < firings; i++ {
		g.spawn(g.cfg.PowerUps.SpawnPeriod)
	}

	n := len(g.st.PowerUps)
	if n < 1700 || n > 2300 {
		t.Errorf("spawned %d power-ups in %d firings, want about 20%%", n, firings)
	}

	shields := 0
	for _, p := range g.st.PowerUps {
		if p.X != 800 {
			t.Fatalf("power-up x = %g, want 800", p.X)
		}
		if p.Y < 50 || p.Y > 400 {
			t.Fatalf("power-up y = %g, want within [50, 400]", p.Y)
		}
		if p.Kind == PowerUpShield {
			shields++
		}
	}
	if ratio := float64(shields) / float64(n); ratio < 0.44 || ratio > 0.56 {
		t.Errorf("shield ratio = %.2f, want about 0.5", ratio)
	}
}

func TestPowerUpProbabilityBounds(t *testing.T) {
	tests := []struct {
		prob float64
		want int
	}{
		{0, 0},
		{1, 50},
	}
	for _, tt := range tests {
		g := startedGame(t, nil, func(cfg *config.FlappyConfig) {
			cfg.PowerUps.Probability = tt.prob
		})
		for i := 0; i < 50; i++ {
			g.spawn(g.cfg.PowerUps.SpawnPeriod)
		}
		if got := len(g.st.PowerUps); got != tt.want {
			t.Errorf("probability %g: spawned %d, want %d", tt.prob, got, tt.want)
		}
	}
}

func TestOffscreenRemoval(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 1, X: -57, GapY: 0, GapSize: 200, Passed: true})
	g.st.PowerUps = append(g.st.PowerUps, PowerUp{ID: 1, X: -27, Y: 0})

	run(g, 1)
	if len(g.st.Obstacles) != 1 || len(g.st.PowerUps) != 1 {
		t.Fatalf("removed too early: %d obstacles, %d power-ups", len(g.st.Obstacles), len(g.st.PowerUps))
	}

	run(g, 1)
	if len(g.st.Obstacles) != 0 || len(g.st.PowerUps) != 0 {
		t.Errorf("not removed: %d obstacles, %d power-ups", len(g.st.Obstacles), len(g.st.PowerUps))
	}
}

func TestScoreOncePerObstacle(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 7, X: -9, GapY: 200, GapSize: 200})

	run(g, 1)
	if g.st.Score != 1 || !g.st.Obstacles[0].Passed {
		t.Fatalf("score = %d, passed = %v; want 1, true", g.st.Score, g.st.Obstacles[0].Passed)
	}
	if g.st.Combo != 1 || !g.Snapshot().Effects.ComboBanner {
		t.Errorf("combo = %d, want 1 with banner", g.st.Combo)
	}

	run(g, 30)
	if g.st.Score != 1 {
		t.Errorf("score = %d after obstacle left, want 1", g.st.Score)
	}
}

func TestScoreThenCollideSameTick(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Timers.Cancel(EffectInvincible)
	g.st.Obstacles = append(g.st.Obstacles,
		Obstacle{ID: 1, X: -9, GapY: 200, GapSize: 200},
		Obstacle{ID: 2, X: 60, GapY: 0, GapSize: 100},
	)

	g.Step(core.NewInputFrame())

	if g.st.Mode != core.ModeGameOver {
		t.Fatalf("mode = %v, want GameOver", g.st.Mode)
	}
	if g.st.Score != 1 || g.HighScore() != 1 {
		t.Errorf("score = %d, high = %d; want 1, 1", g.st.Score, g.HighScore())
	}
}

func TestGapPassesSafely(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Timers.Cancel(EffectInvincible)
	// Player spans y 250..295, gap spans 200..400.
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 1, X: 60, GapY: 200, GapSize: 200})

	run(g, 60)

	if g.st.Mode != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", g.st.Mode)
	}
	if g.st.Score != 1 {
		t.Errorf("score = %d, want 1", g.st.Score)
	}
}

func TestShieldAbsorbsObstacle(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Timers.Cancel(EffectInvincible)
	g.applyPowerUp(PowerUpShield)
	g.st.Combo = 3
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 1, X: 60, GapY: 0, GapSize: 100})

	g.Step(core.NewInputFrame())

	if g.st.Mode != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", g.st.Mode)
	}
	if g.hasShield() {
		t.Error("shield should be consumed")
	}
	if g.st.Combo != 0 {
		t.Errorf("combo = %d, want 0", g.st.Combo)
	}
	if !g.st.Obstacles[0].Absorbed {
		t.Error("obstacle should be marked absorbed")
	}

	run(g, 5)
	if g.st.Mode != core.ModeRunning {
		t.Errorf("absorbed obstacle ended the session on a later tick")
	}
}

func TestInvincibleIgnoresObstacles(t *testing.T) {
	g := startedGame(t, nil, nil)
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 1, X: 60, GapY: 0, GapSize: 100})

	run(g, 10)

	if g.st.Mode != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", g.st.Mode)
	}
	if g.st.Obstacles[0].Absorbed {
		t.Error("invincibility must not spend the obstacle")
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.PowerUps = append(g.st.PowerUps,
		PowerUp{ID: 1, X: 75, Y: 272.5, Kind: PowerUpShield},
		PowerUp{ID: 2, X: 115, Y: 272.5, Kind: PowerUpSlowMotion}, // exactly at radius after scroll
	)

	g.Step(core.NewInputFrame())

	if !g.hasShield() {
		t.Fatal("expected shield after pickup")
	}
	if g.slowMotion() {
		t.Error("power-up exactly at the pickup radius must not be collected")
	}
	if len(g.st.PowerUps) != 1 || g.st.PowerUps[0].ID != 2 {
		t.Fatalf("power-ups = %+v, want only id 2", g.st.PowerUps)
	}

	want := g.st.Timers.Remaining(EffectShield, g.st.Clock)
	g.collectPowerUps()
	if got := g.st.Timers.Remaining(EffectShield, g.st.Clock); got != want || got != 5000 {
		t.Errorf("repeated pickup changed shield: %d -> %d", want, got)
	}
}

func TestShieldPickupRestartsExpiry(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.applyPowerUp(PowerUpShield)
	run(g, 100)

	if got := g.st.Timers.Remaining(EffectShield, g.st.Clock); got != 3000 {
		t.Fatalf("remaining = %d, want 3000", got)
	}
	g.applyPowerUp(PowerUpShield)
	if got := g.st.Timers.Remaining(EffectShield, g.st.Clock); got != 5000 {
		t.Errorf("remaining = %d after second pickup, want 5000", got)
	}
}

func TestComboDecay(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 100, X: -9, GapY: 200, GapSize: 200})

	run(g, 1) // scored at clock 20
	run(g, 150)
	if g.st.Combo != 1 {
		t.Fatalf("combo = %d at tick 151, want 1", g.st.Combo)
	}
	run(g, 1)
	if g.st.Combo != 0 {
		t.Fatalf("combo = %d at tick 152, want 0", g.st.Combo)
	}
	if g.st.Score != 1 {
		t.Errorf("combo decay must not touch score, got %d", g.st.Score)
	}
}

func TestComboRestartedByScore(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 100, X: -9, GapY: 200, GapSize: 200})
	run(g, 100)

	g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 101, X: -9, GapY: 200, GapSize: 200})
	run(g, 1) // second score at clock 2020

	run(g, 150) // tick 251
	if g.st.Combo != 2 {
		t.Fatalf("combo = %d at tick 251, want 2", g.st.Combo)
	}
	run(g, 1)
	if g.st.Combo != 0 {
		t.Errorf("combo = %d at tick 252, want 0", g.st.Combo)
	}
}

func TestSpeedFollowsScore(t *testing.T) {
	tests := []struct {
		before int
		want   float64
	}{
		{0, 2.5},
		{13, 2.5},
		{14, 2.8},
		{29, 3.1},
		{44, 3.4},
	}

	for _, tt := range tests {
		g := startedGame(t, nil, noGravity)
		g.st.Score = tt.before
		g.st.Obstacles = append(g.st.Obstacles, Obstacle{ID: 1, X: -9, GapY: 200, GapSize: 200})

		run(g, 1)

		if math.Abs(g.st.Speed-tt.want) > 1e-9 {
			t.Errorf("score %d: speed = %g, want %g", g.st.Score, g.st.Speed, tt.want)
		}
	}
}

func TestSlowMotionWindow(t *testing.T) {
	g := startedGame(t, nil, noGravity)
	g.applyPowerUp(PowerUpSlowMotion)

	run(g, 150)
	snap := g.Snapshot()
	if !snap.Effects.SlowMotion || snap.EffectiveSpeed != 1.25 {
		t.Fatalf("tick 150: slow=%v speed=%g, want true 1.25", snap.Effects.SlowMotion, snap.EffectiveSpeed)
	}
	if snap.Distance != 187.5 {
		t.Errorf("distance = %g, want 187.5", snap.Distance)
	}
	if snap.Ground != -87.5 {
		t.Errorf("ground = %g, want -87.5", snap.Ground)
	}

	run(g, 1)
	snap = g.Snapshot()
	if snap.Effects.SlowMotion || snap.EffectiveSpeed != 2.5 {
		t.Fatalf("tick 151: slow=%v speed=%g, want false 2.5", snap.Effects.SlowMotion, snap.EffectiveSpeed)
	}
	if snap.Distance != 190 || snap.Ground != -90 {
		t.Errorf("distance = %g ground = %g, want 190, -90", snap.Distance, snap.Ground)
	}
}

func TestCloudsDriftAndWrap(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	run(g, 10)
	if g.st.Clouds[0].X != 100 {
		t.Fatalf("clouds moved before start: x = %g", g.st.Clouds[0].X)
	}

	g.Step(press(core.ActionStartOrRestart))
	run(g, 100) // 2000 ms, 40 drifts
	if got := g.st.Clouds[0].X; got != 80 {
		t.Errorf("cloud x = %g, want 80", got)
	}

	g.st.Clouds[1].X = -99.6
	run(g, 5) // 100 ms, two drifts
	if got := g.st.Clouds[1].X; got != 849.5 {
		t.Errorf("wrapped cloud x = %g, want 849.5", got)
	}
}

func TestMedals(t *testing.T) {
	tests := []struct {
		score int
		want  Medal
	}{
		{0, MedalNone},
		{14, MedalNone},
		{15, MedalBronze},
		{29, MedalBronze},
		{30, MedalSilver},
		{49, MedalSilver},
		{50, MedalGold},
		{120, MedalGold},
	}
	for _, tt := range tests {
		if got := MedalFor(tt.score); got != tt.want {
			t.Errorf("MedalFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
