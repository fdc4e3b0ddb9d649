package flappy

func (g *Game) invincible() bool { return g.st.Timers.Active(EffectInvincible) }
func (g *Game) hasShield() bool  { return g.st.Timers.Active(EffectShield) }
func (g *Game) slowMotion() bool { return g.st.Timers.Active(EffectSlowMotion) }

// expireTimers ends every effect whose deadline has passed by the start of
// the current tick.
func (g *Game) expireTimers(tickStart int64) {
	for _, e := range g.st.Timers.Expire(tickStart) {
		switch e {
		case EffectComboDecay:
			g.st.Combo = 0
			g.st.Timers.Cancel(EffectComboBanner)
		case EffectShield, EffectSlowMotion, EffectInvincible:
			g.log.Debug("effect expired", "effect", e, "tick", g.st.Tick)
		}
	}
}

// absorbHit resolves a collision against the current protection.
// Invincibility ignores it, a shield charge absorbs it and breaks the combo;
// otherwise the session ends. Returns true if the session survives.
func (g *Game) absorbHit(source string) bool {
	if g.invincible() {
		return true
	}
	if g.hasShield() {
		g.st.Timers.Cancel(EffectShield)
		g.resetCombo()
		g.log.Debug("shield absorbed hit", "source", source, "score", g.st.Score)
		return true
	}
	g.endSession(source)
	return false
}

// scorePass records one passed obstacle.
func (g *Game) scorePass() {
	g.st.Score++
	g.st.Speed = g.difficulty.Speed(g.st.Score)
	g.st.Combo++
	g.st.Timers.Arm(EffectComboDecay, g.st.Clock, g.cfg.Effects.ComboDecayMS)
	g.st.Timers.Arm(EffectComboBanner, g.st.Clock, g.cfg.Effects.ComboBannerMS)
}

func (g *Game) resetCombo() {
	g.st.Combo = 0
	g.st.Timers.Cancel(EffectComboDecay)
	g.st.Timers.Cancel(EffectComboBanner)
}

// applyPowerUp grants a collected power-up. Shields do not stack: picking one
// up while holding one only restarts its expiry.
func (g *Game) applyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		g.st.Timers.Arm(EffectShield, g.st.Clock, g.cfg.PowerUps.ShieldMS)
	case PowerUpSlowMotion:
		g.st.Timers.Arm(EffectSlowMotion, g.st.Clock, g.cfg.PowerUps.SlowMotionMS)
	}
	g.log.Debug("power-up collected", "kind", kind, "tick", g.st.Tick)
}
