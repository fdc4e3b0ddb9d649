package flappy

// Cadence turns elapsed simulation time into whole firings of a periodic
// activity. Periods that do not divide the master tick (particles at 30 ms on
// a 20 ms tick) carry their remainder forward, so over time every activity
// fires at exactly its own rate.
type Cadence struct {
	Period int // Milliseconds between firings
	acc    int
}

// NewCadence creates a cadence with the given period in milliseconds.
func NewCadence(period int) Cadence {
	return Cadence{Period: period}
}

// Advance adds dt milliseconds and returns how many times the activity fires.
func (c *Cadence) Advance(dt int) int {
	if c.Period <= 0 || dt <= 0 {
		return 0
	}
	c.acc += dt
	n := c.acc / c.Period
	c.acc -= n * c.Period
	return n
}

// Until returns the milliseconds left before the next firing.
func (c Cadence) Until() int {
	return c.Period - c.acc
}

// Effect identifies an entry in the timer table.
type Effect int

const (
	EffectInvincible Effect = iota
	EffectShield
	EffectSlowMotion
	EffectComboDecay
	EffectComboBanner
	EffectJumpFlash
	EffectShake
	effectCount
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectInvincible:
		return "invincible"
	case EffectShield:
		return "shield"
	case EffectSlowMotion:
		return "slow-motion"
	case EffectComboDecay:
		return "combo-decay"
	case EffectComboBanner:
		return "combo-banner"
	case EffectJumpFlash:
		return "jump-flash"
	case EffectShake:
		return "shake"
	default:
		return "unknown"
	}
}

// Timers is the table of one-shot effect deadlines, keyed by effect.
// Deadlines are measured on the session clock, which only advances on
// running ticks, so pausing freezes every timer.
type Timers struct {
	deadline [effectCount]int64
	active   [effectCount]bool
}

// Arm starts (or restarts) an effect that lasts ms milliseconds from now.
func (t *Timers) Arm(e Effect, now int64, ms int) {
	t.deadline[e] = now + int64(ms)
	t.active[e] = true
}

// Cancel stops an effect immediately.
func (t *Timers) Cancel(e Effect) {
	t.active[e] = false
}

// Active reports whether an effect is currently running.
func (t *Timers) Active(e Effect) bool {
	return t.active[e]
}

// Remaining returns the milliseconds left on an effect, or 0 if inactive.
func (t *Timers) Remaining(e Effect, now int64) int64 {
	if !t.active[e] || t.deadline[e] <= now {
		return 0
	}
	return t.deadline[e] - now
}

// Expire deactivates every effect whose deadline is at or before now and
// returns them in effect order.
func (t *Timers) Expire(now int64) []Effect {
	var expired []Effect
	for e := Effect(0); e < effectCount; e++ {
		if t.active[e] && t.deadline[e] <= now {
			t.active[e] = false
			expired = append(expired, e)
		}
	}
	return expired
}
