package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SessionModel is the top-level model of a session: the game screen, with
// the scoreboard shown on top of it when the player backs out of a paused
// or finished run.
type SessionModel struct {
	game       Model
	scoreboard *ScoreboardModel
	info       registry.GameInfo
	store      *storage.Store
	width      int
	height     int
	quitting   bool
}

// NewSessionModel creates a session for one game.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) SessionModel {
	return SessionModel{
		game:   NewModel(game, store, cfg, opts...),
		info:   registry.GameInfo{ID: game.ID(), Title: game.Title()},
		store:  store,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the game or the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackRequested() {
		sb := NewScoreboardModel(m.store, m.info, m.game.session, m.width, m.height)
		m.scoreboard = &sb
	}
	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks keep the game's loop alive; it does not step while backed out.
	switch msg.(type) {
	case TickMsg:
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		return m, cmd
	case tea.WindowSizeMsg:
		next, _ := m.game.Update(msg)
		m.game = next.(Model)
	}

	next, cmd := m.scoreboard.Update(msg)
	sb := next.(ScoreboardModel)
	m.scoreboard = &sb

	if sb.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.IsGoingBack() {
		m.scoreboard = nil
		m.game = m.game.Resume()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.game.View()
}

// InScoreboard reports whether the scoreboard is shown.
func (m SessionModel) InScoreboard() bool {
	return m.scoreboard != nil
}

// Game returns the game screen model.
func (m SessionModel) Game() Model {
	return m.game
}
