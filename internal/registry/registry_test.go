package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{}

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func() (Game, error) { return stubGame{}, nil })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreatePropagatesFactoryError(t *testing.T) {
	boom := errors.New("bad config")
	Register(GameInfo{ID: "zz-broken", Title: "Broken"}, func() (Game, error) { return nil, boom })

	if _, err := Create("zz-broken"); !errors.Is(err, boom) {
		t.Errorf("Create() = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz-dup"}, func() (Game, error) { return stubGame{}, nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, func() (Game, error) { return stubGame{}, nil })
}
