package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/levels"
	"github.com/vovakirdan/hexpop/internal/storage"
)

func pickerLevels() []levels.Level {
	return []levels.Level{
		{ID: "lvl01", Name: "Warmup"},
		{ID: "lvl02", Name: "Stagger"},
		{ID: "lvl03"},
	}
}

func press(t *testing.T, m LevelMenuModel, msg tea.KeyMsg) LevelMenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(LevelMenuModel)
}

func TestLevelMenuProgress(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "hexpop", LevelID: "lvl01", Score: 300, Cleared: true},
		{GameID: "hexpop", LevelID: "lvl01", Score: 500, Cleared: true},
		{GameID: "hexpop", LevelID: "lvl02", Score: 80},
	} {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewLevelMenuModel(pickerLevels(), store, "hexpop", 80, 30)

	want := []levelEntry{
		{ID: "lvl01", Name: "Warmup", Best: 500, Cleared: true},
		{ID: "lvl02", Name: "Stagger", Best: 80},
		{ID: "lvl03", Name: "lvl03"},
	}
	for i, w := range want {
		if m.entries[i] != w {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, m.entries[i])
		}
	}

	view := m.View()
	if !strings.Contains(view, "Warmup") || !strings.Contains(view, "best 500") {
		t.Error("view should list levels with best scores")
	}
}

func TestLevelMenuSelection(t *testing.T) {
	m := NewLevelMenuModel(pickerLevels(), nil, "hexpop", 80, 30)
	if m.Selected() != nil {
		t.Fatal("nothing selected yet")
	}

	start := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := start.Selected(); sel == nil || sel.LevelID != "" {
		t.Errorf("first row should start from the beginning, got %+v", sel)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.LevelID != "lvl02" {
		t.Errorf("expected lvl02, got %+v", sel)
	}
}

func TestLevelMenuCursorBoundsAndBack(t *testing.T) {
	m := NewLevelMenuModel(pickerLevels(), nil, "hexpop", 80, 30)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.cursor)
	}
	for range 10 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 3 {
		t.Errorf("cursor should stop at the last level, got %d", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should go back without a selection")
	}
}

func TestLevelMenuScrolls(t *testing.T) {
	ls := make([]levels.Level, 20)
	for i := range ls {
		ls[i] = levels.Level{ID: strings.Repeat("x", i+1)}
	}
	m := NewLevelMenuModel(ls, nil, "hexpop", 80, 14) // 4 visible rows
	for range 6 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.scrollOffset != 3 {
		t.Errorf("expected scroll offset 3, got %d", m.scrollOffset)
	}
	if !strings.Contains(m.View(), "more above") {
		t.Error("view should show the scroll indicator")
	}
}

func TestMenuListsBothModes(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	ids := make(map[string]bool)
	for _, item := range m.items {
		ids[item.GameID] = true
		if item.Description == "" {
			t.Errorf("%s has no description", item.GameID)
		}
	}
	if !ids["hexpop"] || !ids["hexpop-endless"] {
		t.Errorf("menu should offer both modes, got %v", ids)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}
