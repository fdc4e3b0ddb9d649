package flappy

// spawn advances the spawn cadences and creates due obstacles and power-ups.
// New entities appear at the right edge after this tick's motion, so they are
// first drawn exactly at x = field width.
func (g *Game) spawn(dt int) {
	for n := g.st.obstacleClock.Advance(dt); n > 0; n-- {
		g.spawnObstacle()
	}
	for n := g.st.powerUpClock.Advance(dt); n > 0; n-- {
		if g.st.rng.Float64() < g.cfg.PowerUps.Probability {
			g.spawnPowerUp()
		}
	}
}

// gapRange returns the inclusive bounds of a new obstacle's gap start.
func (g *Game) gapRange() (lo, hi float64) {
	o := g.cfg.Obstacles
	return o.TopMargin, g.cfg.Field.Height - o.GapSize - o.BottomMargin
}

// spawnObstacle creates an obstacle with a uniformly random gap.
func (g *Game) spawnObstacle() {
	lo, hi := g.gapRange()
	gapY := lo + g.st.rng.Float64()*(hi-lo)

	g.st.Obstacles = append(g.st.Obstacles, Obstacle{
		ID:      g.st.nextObstacleID,
		X:       g.cfg.Field.Width,
		GapY:    gapY,
		GapSize: g.cfg.Obstacles.GapSize,
	})
	g.st.nextObstacleID++
}

// spawnPowerUp creates a power-up at a random height with a random kind.
func (g *Game) spawnPowerUp() {
	pc := g.cfg.PowerUps
	span := g.cfg.Field.Height - pc.TopMargin - pc.BottomMargin
	y := pc.TopMargin + g.st.rng.Float64()*span

	kind := PowerUpShield
	if g.st.rng.Float64() >= 0.5 {
		kind = PowerUpSlowMotion
	}

	g.st.PowerUps = append(g.st.PowerUps, PowerUp{
		ID:   g.st.nextPowerUpID,
		X:    g.cfg.Field.Width,
		Y:    y,
		Kind: kind,
	})
	g.st.nextPowerUpID++
}
