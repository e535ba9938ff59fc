package gui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
	"github.com/appengine-ltd/kingdom-heroes/internal/parser"
	legacyui "github.com/appengine-ltd/kingdom-heroes/internal/ui"
)

const (
	// maxFrameStep keeps a dragged or minimised window from fast-forwarding the battle.
	maxFrameStep = 0.25
	maxMessages  = 200
	maxInputLen  = 120
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Store game.ProgressStore
	Seed  int64
	Level int
	// DebugLog, when set, receives log output and raylib trace messages.
	DebugLog string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type screen int

const (
	screenMenu screen = iota
	screenLevels
	screenBattle
)

type menuAction int

const (
	actionStart menuAction = iota
	actionLevels
	actionClassicUI
	actionQuit
)

type menuItem struct {
	Label  string
	Action menuAction
}

type gameUI struct {
	cfg AppConfig

	width         int32
	height        int32
	quit          bool
	launchClassic bool

	screen     screen
	menuCursor int
	levelIdx   int
	status     string

	campaign *game.Campaign
	parser   *parser.Parser
	intents  *intentQueue
	camera   camera

	input     string
	messages  []string
	lastUnit  string
	dragStart *rl.Vector2
	lastTick  time.Time
}

func (a *App) Run() error {
	if a.cfg.DebugLog != "" {
		f, err := os.OpenFile(a.cfg.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	campaign, err := game.NewCampaign(cfg.Store, cfg.Seed)
	if campaign == nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	ui := &gameUI{
		cfg:      cfg,
		width:    1366,
		height:   768,
		screen:   screenMenu,
		campaign: campaign,
		parser:   parser.New(),
		intents:  newIntentQueue(64),
		lastTick: time.Now(),
	}
	if err != nil {
		log.Printf("load progress: %v", err)
		ui.status = "Could not read saved progress; starting from level 1."
	}
	if cfg.Level > 0 {
		campaign.SelectLevel(cfg.Level)
	}
	ui.levelIdx = campaign.SelectedLevel() - 1
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Kingdom Heroes")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	loadFonts()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)
		if ui.launchClassic {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	unloadFonts()
	rl.CloseWindow()
	if ui.launchClassic {
		app := legacyui.NewApp(legacyui.AppConfig{
			Version:   ui.cfg.Version,
			Commit:    ui.cfg.Commit,
			BuildDate: ui.cfg.BuildDate,
			Store:     ui.cfg.Store,
			Seed:      ui.cfg.Seed,
			Level:     ui.campaign.SelectedLevel(),
			DebugLog:  ui.cfg.DebugLog,
		})
		return app.Run()
	}
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenLevels:
		ui.updateLevels()
	case screenBattle:
		ui.updateBattle(delta)
	}
}

func (ui *gameUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenLevels:
		ui.drawLevels()
	case screenBattle:
		ui.drawBattle()
	}
}

func (ui *gameUI) startBattle() {
	s, err := ui.campaign.Start()
	if err != nil {
		ui.status = err.Error()
		return
	}
	snap := s.Snapshot()
	ui.camera = newCamera(snap.WorldWidth, snap.WorldHeight)
	ui.messages = nil
	ui.input = ""
	ui.dragStart = nil
	ui.intents.Drain()
	ui.status = ""
	ui.screen = screenBattle
	ui.logf("Level %d: %s. %s", snap.Level.Number, snap.Level.Name, snap.Level.Description)
	ui.logf("Type commands below or click units. Enter sends, Esc returns to the menu.")
}

func (ui *gameUI) enterMenu() {
	ui.campaign.ReturnToMenu()
	ui.input = ""
	ui.dragStart = nil
	ui.levelIdx = ui.campaign.SelectedLevel() - 1
	ui.screen = screenMenu
}

// submitInput parses the typed line and queues it for the next drain.
func (ui *gameUI) submitInput() {
	raw := strings.TrimSpace(ui.input)
	ui.input = ""
	s := ui.campaign.Session()
	if raw == "" || s == nil {
		return
	}
	ui.logf("> %s", raw)

	intent := ui.parser.Parse(ui.parseContext(s), raw)
	if intent.Clarify != nil {
		// Plain command syntax the parser could not settle still goes straight to the battle.
		if res := s.ExecuteCommand(raw); res.Handled {
			ui.logf("%s", res.Message)
			return
		}
		ui.logf("%s", clarifyText(intent.Clarify))
		return
	}
	ui.intents.EnqueueIntent(intent)
}

// drainIntents runs every queued intent against the current battle.
func (ui *gameUI) drainIntents() {
	for _, intent := range ui.intents.Drain() {
		switch intent.Verb {
		case "quit":
			ui.quit = true
			return
		case "menu":
			ui.enterMenu()
			return
		}
		s := ui.campaign.Session()
		if s == nil {
			return
		}
		for _, cmd := range parser.CommandStrings(intent) {
			res := s.ExecuteCommand(cmd)
			if !res.Handled {
				ui.logf("I don't know how to %q.", cmd)
				break
			}
			ui.logf("%s", res.Message)
		}
		if intent.Verb == "recruit" && len(intent.Args) > 0 {
			ui.lastUnit = intent.Args[0]
		}
	}
}

func (ui *gameUI) tick(dt float64) {
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	for _, e := range ui.campaign.Tick(dt) {
		if line := legacyui.FormatEvent(e); line != "" {
			ui.logf("%s", line)
		}
		if e.Err != nil {
			log.Printf("%s: %v", e.Kind, e.Err)
		}
	}
}

func (ui *gameUI) parseContext(s *game.Session) parser.ParseContext {
	unlocked := game.UnlockedUnitTypes(s.Level().Number)
	names := make([]string, 0, len(unlocked))
	for _, t := range unlocked {
		names = append(names, string(t))
	}
	return parser.ParseContext{Unlocked: names, LastUnitType: ui.lastUnit}
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

func (ui *gameUI) logf(format string, args ...any) {
	ui.messages = append(ui.messages, fmt.Sprintf(format, args...))
	if over := len(ui.messages) - maxMessages; over > 0 {
		ui.messages = append([]string(nil), ui.messages[over:]...)
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
