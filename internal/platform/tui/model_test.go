package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	steps  int
	resets int
	frames []core.InputFrame
}

func (g *scriptedGame) ID() string                  { return "scripted" }
func (g *scriptedGame) Title() string               { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *scriptedGame) TickInterval() time.Duration { return 20 * time.Millisecond }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	if g.steps == 0 || len(g.states) == 0 {
		return core.GameState{}
	}
	return g.states[min(g.steps, len(g.states))-1]
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelForwardsKeysOnTick(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Mode: core.ModeRunning}}}
	m := NewGameModel(game, nil, nil, core.DefaultConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{Loop: m.loop})
	m = update(t, m, TickMsg{Loop: m.loop})

	if game.steps != 2 {
		t.Fatalf("steps = %d, want 2", game.steps)
	}
	if !game.frames[0].Has(core.ActionStartOrRestart) {
		t.Error("first tick should carry the start intent")
	}
	if game.frames[1].Has(core.ActionStartOrRestart) {
		t.Error("intents must be cleared after each tick")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, nil, core.DefaultConfig())

	m = update(t, m, TickMsg{Loop: m.loop + 1000})

	if game.steps != 0 {
		t.Errorf("stale tick advanced the game: steps = %d", game.steps)
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, nil, core.DefaultConfig())

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.resets != 1 {
		t.Errorf("resets = %d, want only the initial reset", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestGameModelRecordsSessionOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	over := core.GameState{Score: 12, Distance: 340, Mode: core.ModeGameOver, GameOver: true, Session: 1}
	game := &scriptedGame{states: []core.GameState{
		{Mode: core.ModeRunning, Session: 1},
		over, over, over,
		{Mode: core.ModeRunning, Session: 2},
		{Score: 4, Mode: core.ModeGameOver, GameOver: true, Session: 2},
	}}
	m := NewGameModel(game, store, nil, core.DefaultConfig())

	for i := 0; i < 6; i++ {
		m = update(t, m, TickMsg{Loop: m.loop})
	}

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("recorded %d sessions, want 2", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Distance != 340 {
		t.Errorf("best entry = %+v", scores[0])
	}
}

func TestGameModelBack(t *testing.T) {
	t.Run("standalone quits", func(t *testing.T) {
		m := NewGameModel(&scriptedGame{}, nil, nil, core.DefaultConfig())
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.IsQuitting() {
			t.Error("expected quit")
		}
	})

	t.Run("embedded returns to menu", func(t *testing.T) {
		m := NewGameModel(&scriptedGame{}, nil, nil, core.DefaultConfig())
		m.embedded = true
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || m.IsQuitting() {
			t.Error("expected back to menu")
		}
	})

	t.Run("ignored while running", func(t *testing.T) {
		game := &scriptedGame{states: []core.GameState{{Mode: core.ModeRunning}}}
		m := NewGameModel(game, nil, nil, core.DefaultConfig())
		m = update(t, m, TickMsg{Loop: m.loop})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() || m.IsQuitting() {
			t.Error("back must not leave a running session")
		}
	})
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '*', core.ColorOrange)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "*") {
		t.Errorf("second line = %q", lines[1])
	}
}
