package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Player is the controlled character. Y grows downward.
type Player struct {
	X, Y     float64
	Velocity float64
	Size     float64
}

// Rect returns the player's bounding square.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Obstacle is a pipe pair with a passable gap.
type Obstacle struct {
	ID       int
	X        float64 // Left edge
	GapY     float64 // Top of the gap
	GapSize  float64
	Passed   bool // Scored; set at most once
	Absorbed bool // A shield charge was spent on this obstacle
}

// Rect returns the obstacle's full-height horizontal span.
func (o Obstacle) Rect(width, fieldH float64) core.Rect {
	return core.NewRect(o.X, 0, width, fieldH)
}

// Blocks reports whether a rectangle inside the obstacle's span touches a pipe.
func (o Obstacle) Blocks(r core.Rect) bool {
	return r.Y < o.GapY || r.Bottom() > o.GapY+o.GapSize
}

// PowerUpKind is the effect granted by a collectible.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSlowMotion
)

// String returns a human-readable name for the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSlowMotion:
		return "slow-motion"
	default:
		return "unknown"
	}
}

// PowerUp is a transient collectible. Its position is its center.
type PowerUp struct {
	ID   int
	X, Y float64
	Kind PowerUpKind
}

// Particle is a cosmetic debris fragment spawned on a terminal collision.
type Particle struct {
	ID     int
	X, Y   float64
	VX, VY float64
}

// Cloud is a background parallax element.
type Cloud struct {
	ID   int
	X, Y float64
	Size float64
}

// initialClouds is the cloud layout at the start of every session.
var initialClouds = []Cloud{
	{ID: 1, X: 100, Y: 80, Size: 60},
	{ID: 2, X: 400, Y: 120, Size: 80},
	{ID: 3, X: 650, Y: 60, Size: 70},
}

// Medal grades a finished session.
type Medal int

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
)

// MedalFor returns the medal earned by a score.
func MedalFor(score int) Medal {
	switch {
	case score >= 50:
		return MedalGold
	case score >= 30:
		return MedalSilver
	case score >= 15:
		return MedalBronze
	default:
		return MedalNone
	}
}

// String returns the medal name.
func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "Bronze"
	case MedalSilver:
		return "Silver"
	case MedalGold:
		return "Gold"
	default:
		return ""
	}
}
