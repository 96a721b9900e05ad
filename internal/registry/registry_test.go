package registry

import (
	"testing"

	"github.com/vovakirdan/hexpop/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                          { return g.id }
func (g *stubGame) Title() string                       { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)            {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                 {}
func (g *stubGame) State() core.GameState               { return core.GameState{} }
func (g *stubGame) Description() string                 { return "a stub" }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("unexpected id %q", g.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestListIncludesMetadata(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	var found *GameInfo
	list := List()
	for i := range list {
		if list[i].ID == "stub-b" {
			found = &list[i]
		}
		if i > 0 && list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted: %q >= %q", list[i-1].ID, list[i].ID)
		}
	}
	if found == nil {
		t.Fatal("stub-b missing from List")
	}
	if found.Title != "Stub stub-b" || found.Description != "a stub" {
		t.Errorf("unexpected info %+v", *found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })
}
