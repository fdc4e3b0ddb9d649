package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (s *stubGame) ID() string                          { return s.id }
func (s *stubGame) Title() string                       { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)            {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                 {}
func (s *stubGame) State() core.GameState               { return core.GameState{} }
func (s *stubGame) TickInterval() time.Duration         { return 20 * time.Millisecond }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", "Stub", func(env Env) Game {
		return &stubGame{id: "zz-stub", env: env}
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	if Title("zz-stub") != "Stub" {
		t.Errorf("Title = %q", Title("zz-stub"))
	}
	if Title("missing") != "missing" {
		t.Errorf("Title of unknown id should echo the id")
	}

	g, err := Create("zz-stub", Env{ConfigPath: "custom.yaml"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).env.ConfigPath != "custom.yaml" {
		t.Error("env not passed to factory")
	}

	if _, err := Create("missing", Env{}); err == nil {
		t.Error("expected error for unknown id")
	}

	list := List()
	if len(list) == 0 || list[len(list)-1].ID != "zz-stub" {
		t.Errorf("List() = %v, want sorted with zz-stub last", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", "Dup", func(Env) Game { return &stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", "Dup", func(Env) Game { return &stubGame{id: "dup"} })
}
