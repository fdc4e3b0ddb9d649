package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// floorY is the largest valid player Y: the player's bottom rests on the ground.
func (g *Game) floorY() float64 {
	return g.cfg.Field.Height - g.cfg.Player.Size - g.cfg.Field.GroundHeight
}

// stepPhysics applies gravity and moves the player vertically.
// Returns true if a boundary violation ended the session.
func (g *Game) stepPhysics() bool {
	p := &g.st.Player

	p.Velocity += g.cfg.Physics.Gravity
	newY := p.Y + p.Velocity

	maxY := g.floorY()
	if newY >= 0 && newY <= maxY {
		p.Y = newY
		return false
	}

	// Boundary violation. A terminal hit leaves the player at the last valid position.
	if !g.absorbHit("boundary") {
		return true
	}

	// Ignored or absorbed: rest against the violated edge.
	p.Y = core.ClampF(newY, 0, maxY)
	p.Velocity = 0
	return false
}

// jump overrides the vertical velocity with the jump impulse.
func (g *Game) jump() {
	g.st.Player.Velocity = g.cfg.Physics.JumpStrength
	g.st.Timers.Arm(EffectJumpFlash, g.st.Clock, g.cfg.Effects.JumpFlashMS)
}

// move nudges the player horizontally by steps * horizontal speed.
func (g *Game) move(steps int) {
	if steps == 0 {
		return
	}
	p := &g.st.Player
	maxX := g.cfg.Field.Width - p.Size
	p.X = core.ClampF(p.X+float64(steps)*g.cfg.Physics.HorizontalSpeed, 0, maxX)
}
