package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
	"github.com/appengine-ltd/kingdom-heroes/internal/parser"
)

const (
	tickInterval = 100 * time.Millisecond
	// maxFrameStep keeps a stalled terminal from fast-forwarding the battle.
	maxFrameStep = 0.25
	maxMessages  = 200
)

type screen int

const (
	screenMenu screen = iota
	screenLevels
	screenBattle
)

type menuItem int

const (
	itemStart menuItem = iota
	itemLevels
	itemQuit
	menuItemCount
)

type tickMsg struct {
	at  time.Time
	gen int
}

type model struct {
	cfg      AppConfig
	campaign *game.Campaign
	parser   *parser.Parser
	screen   screen

	idx      int
	levelIdx int
	status   string

	input    string
	messages []string
	lastUnit string
	minimap  bool

	tickGen  int
	lastTick time.Time

	width  int
	height int
}

func newModel(cfg AppConfig) model {
	m := model{cfg: cfg, parser: parser.New(), screen: screenMenu}
	campaign, err := game.NewCampaign(cfg.Store, cfg.Seed)
	if err != nil {
		log.Printf("load progress: %v", err)
		m.status = "Saved progress could not be read; starting from level 1."
	}
	m.campaign = campaign
	if cfg.Level > 0 {
		m.campaign.SelectLevel(cfg.Level)
	}
	m.levelIdx = m.campaign.SelectedLevel() - 1
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t, gen: gen}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		return m.updateTick(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLevels:
			return m.updateLevels(msg)
		case screenBattle:
			return m.updateBattle(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + int(menuItemCount) - 1) % int(menuItemCount)
	case "down", "j":
		m.idx = (m.idx + 1) % int(menuItemCount)
	case "l":
		m.screen = screenLevels
	case "enter":
		switch menuItem(m.idx) {
		case itemStart:
			return m.startBattle()
		case itemLevels:
			m.levelIdx = m.campaign.SelectedLevel() - 1
			m.screen = screenLevels
		case itemQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) updateLevels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenMenu
	case "up", "k":
		if m.levelIdx > 0 {
			m.levelIdx--
		}
	case "down", "j":
		if m.levelIdx < game.MaxCampaignLevel-1 {
			m.levelIdx++
		}
	case "enter":
		n := m.levelIdx + 1
		if err := m.campaign.CheckLevel(n); err != nil {
			m.status = fmt.Sprintf("Level %d is locked. Win level %d first.", n, m.campaign.HighestUnlocked())
			return m, nil
		}
		m.campaign.SelectLevel(n)
		m.status = ""
		m.screen = screenMenu
	}
	return m, nil
}

func (m model) startBattle() (tea.Model, tea.Cmd) {
	s, err := m.campaign.Start()
	if err != nil {
		log.Printf("start battle: %v", err)
		m.status = fmt.Sprintf("Could not start battle: %v", err)
		return m, nil
	}
	m.screen = screenBattle
	m.status = ""
	m.input = ""
	m.messages = nil
	lvl := s.Level()
	m.logf("Level %d: %s. %s.", lvl.Number, lvl.Name, lvl.Description)
	m.logf("Type commands such as \"recruit knight\" or \"help\". Esc returns to the menu.")
	m.tickGen++
	m.lastTick = time.Time{}
	return m, tickCmd(m.tickGen)
}

func (m model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen || m.screen != screenBattle || m.campaign.Session() == nil {
		return m, nil
	}
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = msg.at.Sub(m.lastTick).Seconds()
	}
	m.lastTick = msg.at
	m.applyEvents(m.campaign.Tick(min(dt, maxFrameStep)))

	if m.campaign.Phase() != game.PhasePlaying {
		return m, nil
	}
	return m, tickCmd(m.tickGen)
}

func (m *model) applyEvents(events []game.Event) {
	for _, e := range events {
		if line := FormatEvent(e); line != "" {
			m.logf("%s", line)
		}
		if e.Err != nil {
			log.Printf("%s: %v", e.Kind, e.Err)
		}
	}
}

// FormatEvent turns a battle event into a log line. Events not worth showing return "".
func FormatEvent(e game.Event) string {
	switch e.Kind {
	case game.EventEnemyWave:
		return "Wave: " + e.Message + "."
	case game.EventUnitDied:
		if e.Owner == game.OwnerPlayer {
			return fmt.Sprintf("Your %s fell.", e.UnitType.DisplayName())
		}
		return fmt.Sprintf("Enemy %s slain.", e.UnitType.DisplayName())
	case game.EventCastleDestroyed:
		return "An enemy castle has fallen!"
	case game.EventVictory:
		return "Victory! All enemy castles destroyed."
	case game.EventDefeat:
		return "Defeat. Your castle has been destroyed."
	case game.EventLevelUnlocked:
		return fmt.Sprintf("Level %d unlocked.", e.Level)
	case game.EventLoadFailed, game.EventSaveFailed:
		return "Warning: " + e.Message + "."
	default:
		return ""
	}
}

func (m model) updateBattle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.campaign.Phase() == game.PhaseWon || m.campaign.Phase() == game.PhaseLost {
		switch msg.String() {
		case "enter", "esc":
			return m.returnToMenu(), nil
		}
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m.returnToMenu(), nil
	case tea.KeyTab:
		m.minimap = !m.minimap
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m model) returnToMenu() model {
	m.campaign.ReturnToMenu()
	m.screen = screenMenu
	m.input = ""
	m.levelIdx = m.campaign.SelectedLevel() - 1
	return m
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input)
	m.input = ""
	s := m.campaign.Session()
	if raw == "" || s == nil {
		return m, nil
	}
	m.logf("> %s", raw)

	intent := m.parser.Parse(m.parseContext(s), raw)
	if intent.Clarify != nil {
		// Exact syntax the parser could not settle, e.g. a raw unit name it finds ambiguous.
		if res := s.ExecuteCommand(raw); res.Handled {
			m.logf("%s", res.Message)
			m.rememberUnit(raw)
			return m, nil
		}
		m.logf("%s", clarifyText(intent.Clarify))
		return m, nil
	}
	switch intent.Verb {
	case "quit":
		return m, tea.Quit
	case "menu":
		return m.returnToMenu(), nil
	}
	for _, cmd := range parser.CommandStrings(intent) {
		res := s.ExecuteCommand(cmd)
		if !res.Handled {
			m.logf("I don't know how to %q.", cmd)
			break
		}
		m.logf("%s", res.Message)
	}
	if intent.Verb == "recruit" && len(intent.Args) > 0 {
		m.lastUnit = intent.Args[0]
	}
	return m, nil
}

func (m *model) rememberUnit(raw string) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 2 && (fields[0] == "recruit" || fields[0] == "train") {
		if t, ok := game.ParseUnitType(fields[1]); ok {
			m.lastUnit = string(t)
		}
	}
}

func (m model) parseContext(s *game.Session) parser.ParseContext {
	unlocked := game.UnlockedUnitTypes(s.Level().Number)
	names := make([]string, 0, len(unlocked))
	for _, t := range unlocked {
		names = append(names, string(t))
	}
	return parser.ParseContext{Unlocked: names, LastUnitType: m.lastUnit}
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}

func (m *model) logf(format string, args ...any) {
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
	if over := len(m.messages) - maxMessages; over > 0 {
		m.messages = append([]string(nil), m.messages[over:]...)
	}
}
