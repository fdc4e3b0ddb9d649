package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	GroundTopChar  = '═'
	GroundChar     = '░'
	GroundMarkChar = '▒'
	CloudChar      = '~'
	ParticleChar   = '*'
	ShieldChar     = 'S'
	SlowMotionChar = 'Z'
)

// viewport maps world units onto screen cells. Row 0 is the HUD.
type viewport struct {
	w, h   int
	fieldW float64
	fieldH float64
	shake  int
}

func (v viewport) col(x float64) int {
	return int(x*float64(v.w)/v.fieldW) + v.shake
}

func (v viewport) row(y float64) int {
	return 1 + int(y*float64(v.h-1)/v.fieldH)
}

// span returns the first column and the cell width covering [x, x+w).
func (v viewport) span(x, w float64) (int, int) {
	c0 := v.col(x)
	return c0, max(1, v.col(x+w)-c0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.st == nil || dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	snap := g.Snapshot()
	vp := viewport{
		w:      dst.Width(),
		h:      dst.Height(),
		fieldW: g.cfg.Field.Width,
		fieldH: g.cfg.Field.Height,
	}
	if snap.Effects.Shake {
		vp.shake = 1 - int(snap.Tick%2)*2
	}

	for _, c := range snap.Clouds {
		g.drawCloud(dst, vp, c)
	}
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, vp, o)
	}
	g.drawGround(dst, vp, snap.Ground)
	for _, p := range snap.PowerUps {
		g.drawPowerUp(dst, vp, p)
	}
	g.drawPlayer(dst, vp, snap)
	for _, p := range snap.Particles {
		dst.SetColored(vp.col(p.X), vp.row(p.Y), ParticleChar, core.ColorOrange)
	}

	g.drawHUD(dst, snap)

	switch snap.Mode {
	case core.ModeNotStarted:
		lines := []string{"Space/Up: flap  Left/Right: move  P: pause", "Press Enter to start"}
		if g.cfgErr != nil {
			lines = []string{"Configuration error:", g.cfgErr.Error()}
		}
		drawCenteredMessage(dst, g.Title(), lines...)
	case core.ModePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.ModeGameOver:
		lines := []string{fmt.Sprintf("Score: %d  |  Best: %d  |  %dm", snap.Score, snap.HighScore, int(snap.Distance))}
		if snap.Medal != MedalNone {
			lines = append(lines, fmt.Sprintf("%s medal", snap.Medal))
		}
		if snap.NewRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "Press R to restart")
		drawCenteredMessage(dst, "GAME OVER", lines...)
	}
}

func (g *Game) drawCloud(dst *core.Screen, vp viewport, c Cloud) {
	x, w := vp.span(c.X, c.Size)
	dst.DrawHLine(x, vp.row(c.Y), w, CloudChar, core.ColorGray)
}

func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	x, w := vp.span(o.X, g.cfg.Obstacles.Width)
	gapTop := vp.row(o.GapY)
	gapBottom := vp.row(o.GapY + o.GapSize)
	groundTop := vp.row(g.cfg.Field.Height - g.cfg.Field.GroundHeight)

	color := core.ColorGreen
	if o.Absorbed {
		color = core.ColorGray
	}

	dst.FillRect(x, 1, w, gapTop-1, PipeChar, color)
	if gapTop > 1 {
		dst.DrawHLine(x, gapTop-1, w, PipeCapTop, core.ColorBrightGreen)
	}
	dst.FillRect(x, gapBottom, w, groundTop-gapBottom, PipeChar, color)
	if gapBottom < groundTop {
		dst.DrawHLine(x, gapBottom, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

func (g *Game) drawGround(dst *core.Screen, vp viewport, offset float64) {
	top := vp.row(g.cfg.Field.Height - g.cfg.Field.GroundHeight)
	shift := -vp.col(offset) + vp.shake
	const stripe = 6

	dst.DrawHLine(0, top, dst.Width(), GroundTopChar, core.ColorYellow)
	for y := top + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			r := GroundChar
			if ((x+shift+y)%stripe+stripe)%stripe == 0 {
				r = GroundMarkChar
			}
			dst.SetColored(x, y, r, core.ColorOrange)
		}
	}
}

func (g *Game) drawPowerUp(dst *core.Screen, vp viewport, p PowerUp) {
	r, color := ShieldChar, core.ColorBrightCyan
	if p.Kind == PowerUpSlowMotion {
		r, color = SlowMotionChar, core.ColorBrightMagenta
	}
	dst.SetColored(vp.col(p.X), vp.row(p.Y), r, color)
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport, snap Snapshot) {
	p := snap.Player
	x, w := vp.span(p.X, p.Size)
	y := vp.row(p.Y)
	h := max(1, vp.row(p.Y+p.Size)-y)

	color := core.ColorBrightYellow
	switch {
	case snap.Mode == core.ModeGameOver:
		color = core.ColorRed
	case snap.Effects.JumpFlash:
		color = core.ColorBrightWhite
	case snap.Effects.Invincible && (snap.Tick/5)%2 == 1:
		color = core.ColorGray
	}
	dst.FillRect(x, y, w, h, PlayerChar, color)

	if snap.Effects.Shield {
		for row := y; row < y+h; row++ {
			dst.SetColored(x-1, row, '(', core.ColorBrightCyan)
			dst.SetColored(x+w, row, ')', core.ColorBrightCyan)
		}
	}
	if snap.Effects.ComboBanner && snap.Combo > 0 {
		dst.DrawTextColored(x+w+1, y-1, fmt.Sprintf("+%d", snap.Combo), core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d | Distance: %dm | Best: %d ", snap.Score, int(snap.Distance), snap.HighScore)
	dst.DrawText(1, 0, hud)
	x := 1 + len(hud)

	if snap.Combo > 2 {
		text := fmt.Sprintf(" COMBO x%d ", snap.Combo)
		dst.DrawTextColored(x, 0, text, core.ColorBrightRed)
		x += len(text)
	}

	status := []struct {
		on    bool
		label string
		color core.Color
	}{
		{snap.Effects.Invincible, "[INVINCIBLE]", core.ColorBrightWhite},
		{snap.Effects.Shield, "[SHIELD]", core.ColorBrightCyan},
		{snap.Effects.SlowMotion, "[SLOW-MO]", core.ColorBrightMagenta},
	}
	for _, s := range status {
		if !s.on {
			continue
		}
		dst.DrawTextColored(x, 0, s.label, s.color)
		x += len(s.label) + 1
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
