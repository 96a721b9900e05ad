package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/levels"
	"github.com/vovakirdan/hexpop/internal/storage"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	LevelID string // Empty means start from the first level
}

// levelEntry is one row of the level picker.
type levelEntry struct {
	ID      string
	Name    string
	Balls   int
	Best    int
	Cleared bool
}

// LevelMenuModel is the level picker for the campaign.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	entries      []levelEntry
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a level picker. Best scores and cleared marks
// come from the store when one is given.
func NewLevelMenuModel(ls []levels.Level, store *storage.Store, gameID string, width, height int) LevelMenuModel {
	var cleared []string
	if store != nil {
		cleared, _ = store.ClearedLevels(gameID)
	}

	entries := make([]levelEntry, len(ls))
	for i := range ls {
		e := levelEntry{
			ID:      ls[i].ID,
			Name:    ls[i].Name,
			Balls:   ls[i].BallCount(),
			Cleared: slices.Contains(cleared, ls[i].ID),
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		if store != nil {
			if top, err := store.TopLevelScores(gameID, e.ID, 1); err == nil && len(top) > 0 {
				e.Best = top[0].Score
			}
		}
		entries[i] = e
	}

	return LevelMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		entries:   entries,
		choosing:  true,
		theme:     CurrentTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = LevelSelection{}
		if m.cursor > 0 {
			m.selection.LevelID = m.entries[m.cursor-1].ID
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("H E X P O P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	// Row 0 is "Start from Beginning", rows 1..n are levels
	total := len(m.entries) + 1
	end := min(m.scrollOffset+m.visibleItems(), total)
	for row := m.scrollOffset; row < end; row++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if row == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		if row == 0 {
			b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
			b.WriteString("\n")
			continue
		}

		e := m.entries[row-1]
		line := style.Render(fmt.Sprintf("%s%2d. %-20s %3d balls", cursor, row, e.Name, e.Balls))
		if e.Best > 0 {
			line += m.theme.MenuDescription.Render(fmt.Sprintf("  best %d", e.Best))
		}
		if e.Cleared {
			line += m.theme.MenuCleared.Render("  ✓")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < total {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing || m.back || m.quitting {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the campaign level picker.
// A nil selection means the user went back or quit.
func RunLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	ls, err := hexpop.CampaignLevels()
	if err != nil {
		return nil, cfg, err
	}
	model := NewLevelMenuModel(ls, store, "hexpop", cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	return m.Selected(), cfg, nil
}
