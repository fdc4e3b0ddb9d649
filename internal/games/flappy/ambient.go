package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// stepAmbient runs the cosmetic animations for dt milliseconds.
// Clouds and ground only scroll while the session is running; debris keeps
// falling after game over.
func (g *Game) stepAmbient(dt int) {
	for n := g.st.particleClock.Advance(dt); n > 0; n-- {
		g.stepParticles()
	}
	if g.st.Mode != core.ModeRunning {
		return
	}
	for n := g.st.cloudClock.Advance(dt); n > 0; n-- {
		g.stepClouds()
	}
	for n := g.st.groundClock.Advance(dt); n > 0; n-- {
		g.stepGround()
	}
}

func (g *Game) stepParticles() {
	if len(g.st.Particles) == 0 {
		return
	}
	weight := g.cfg.Effects.ParticleWeight
	kept := g.st.Particles[:0]
	for _, p := range g.st.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += weight
		if p.Y < g.cfg.Field.Height {
			kept = append(kept, p)
		}
	}
	g.st.Particles = kept
}

func (g *Game) stepClouds() {
	a := g.cfg.Ambient
	for i := range g.st.Clouds {
		c := &g.st.Clouds[i]
		if c.X-a.CloudDrift > a.CloudExitX {
			c.X -= a.CloudDrift
		} else {
			c.X = g.cfg.Field.Width + a.CloudReentry
		}
	}
}

// groundSpeed is the ground scroll per ground tick, halved by slow motion.
func (g *Game) groundSpeed() float64 {
	if g.slowMotion() {
		return g.cfg.Ambient.GroundSpeed * g.cfg.PowerUps.SlowMotionMul
	}
	return g.cfg.Ambient.GroundSpeed
}

func (g *Game) stepGround() {
	g.st.Ground = math.Mod(g.st.Ground-g.groundSpeed(), g.cfg.Ambient.GroundPattern)
}

// burst spawns debris from the player's center.
func (g *Game) burst() {
	cx, cy := g.st.Player.Rect().Center()
	spread := g.cfg.Effects.ParticleSpeed
	for i := 0; i < g.cfg.Effects.ParticleCount; i++ {
		g.st.Particles = append(g.st.Particles, Particle{
			ID: g.st.nextParticleID,
			X:  cx,
			Y:  cy,
			VX: (g.st.rng.Float64() - 0.5) * spread,
			VY: (g.st.rng.Float64() - 0.5) * spread,
		})
		g.st.nextParticleID++
	}
}
