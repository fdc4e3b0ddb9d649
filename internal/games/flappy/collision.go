package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// effectiveSpeed is the obstacle speed, scaled down during slow motion.
func (g *Game) effectiveSpeed() float64 {
	if g.slowMotion() {
		return g.st.Speed * g.cfg.PowerUps.SlowMotionMul
	}
	return g.st.Speed
}

// stepWorld scrolls obstacles and power-ups, then resolves scoring,
// collisions and pickups against the player. Returns true if a collision
// ended the session; the rest of the tick is skipped in that case.
func (g *Game) stepWorld() bool {
	speed := g.effectiveSpeed()
	g.st.Distance += speed

	g.scrollObstacles(speed)
	g.scrollPowerUps(speed)

	if g.checkObstacles() {
		return true
	}
	g.collectPowerUps()
	return false
}

// scrollObstacles moves obstacles left and drops those fully off-screen.
func (g *Game) scrollObstacles(speed float64) {
	w := g.cfg.Obstacles.Width
	kept := g.st.Obstacles[:0]
	for _, o := range g.st.Obstacles {
		o.X -= speed
		if o.X > -w {
			kept = append(kept, o)
		}
	}
	g.st.Obstacles = kept
}

// scrollPowerUps moves power-ups left and drops those past the exit line.
func (g *Game) scrollPowerUps(speed float64) {
	kept := g.st.PowerUps[:0]
	for _, p := range g.st.PowerUps {
		p.X -= speed
		if p.X > g.cfg.PowerUps.ExitX {
			kept = append(kept, p)
		}
	}
	g.st.PowerUps = kept
}

// checkObstacles scores passed obstacles, then tests overlap. Scoring is
// evaluated before collision for each obstacle, so one obstacle can do both
// in the same tick.
func (g *Game) checkObstacles() bool {
	player := g.st.Player.Rect()
	w := g.cfg.Obstacles.Width
	fieldH := g.cfg.Field.Height

	for i := range g.st.Obstacles {
		o := &g.st.Obstacles[i]

		if !o.Passed && o.X+w < player.X {
			o.Passed = true
			g.scorePass()
		}

		if o.Absorbed || g.invincible() {
			continue
		}
		if !player.OverlapsX(o.Rect(w, fieldH)) || !o.Blocks(player) {
			continue
		}
		if !g.absorbHit("obstacle") {
			return true
		}
		o.Absorbed = true
	}
	return false
}

// collectPowerUps applies and removes every power-up within pickup radius
// of the player's center. Calling it again in the same tick is a no-op for
// the power-ups already taken.
func (g *Game) collectPowerUps() {
	cx, cy := g.st.Player.Rect().Center()
	kept := g.st.PowerUps[:0]
	for _, p := range g.st.PowerUps {
		if core.Dist(p.X, p.Y, cx, cy) < g.cfg.PowerUps.PickupRadius {
			g.applyPowerUp(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	g.st.PowerUps = kept
}
