package ui

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Store game.ProgressStore
	Seed  int64
	// Level preselects a campaign level; it is clamped to what is unlocked.
	Level int
	// DebugLog, when set, receives log output while the terminal belongs to the UI.
	DebugLog string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	if a.cfg.DebugLog != "" {
		f, err := tea.LogToFile(a.cfg.DebugLog, "kingdom-heroes")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := newModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (castle stone and banners) ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	enemyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)
