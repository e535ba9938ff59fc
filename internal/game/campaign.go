package game

import "fmt"

type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// Campaign moves between the level menu and battles and owns level progression.
type Campaign struct {
	store    ProgressStore
	seed     int64
	starts   int64
	highest  int
	selected int
	phase    Phase
	session  *Session
}

// NewCampaign loads progression from store. A load error is returned alongside a usable
// campaign that starts from defaults.
func NewCampaign(store ProgressStore, seed int64) (*Campaign, error) {
	if store == nil {
		store = &MemoryStore{}
	}
	c := &Campaign{store: store, seed: seed, phase: PhaseMenu, highest: 1, selected: 1}
	progress, err := store.LoadProgress()
	if err != nil {
		err = fmt.Errorf("load progress: %w", err)
	}
	c.highest = ClampLevel(progress.MaxLevel, MaxCampaignLevel)
	c.selected = c.highest
	return c, err
}

func (c *Campaign) Phase() Phase         { return c.phase }
func (c *Campaign) HighestUnlocked() int { return c.highest }
func (c *Campaign) SelectedLevel() int   { return c.selected }
func (c *Campaign) Session() *Session    { return c.session }

// SelectLevel clamps n to the unlocked range and returns the level actually selected.
func (c *Campaign) SelectLevel(n int) int {
	c.selected = ClampLevel(n, c.highest)
	return c.selected
}

// CheckLevel reports whether n can be played right now.
func (c *Campaign) CheckLevel(n int) error {
	if n < 1 || n > MaxCampaignLevel {
		return fmt.Errorf("level %d: out of range 1-%d", n, MaxCampaignLevel)
	}
	if n > c.highest {
		return fmt.Errorf("level %d: %w", n, ErrLevelLocked)
	}
	return nil
}

// Start opens a battle on the selected level. Each start gets its own seed derived from
// the campaign seed.
func (c *Campaign) Start() (*Session, error) {
	s, err := NewSession(SessionConfig{
		Level: c.selected,
		Seed:  c.seed + c.starts,
		Store: c.store,
	})
	if err != nil {
		return nil, err
	}
	c.starts++
	c.session = s
	c.phase = PhasePlaying
	return s, nil
}

// Tick forwards to the running battle and applies progression once it is decided.
func (c *Campaign) Tick(dt float64) []Event {
	if c.phase != PhasePlaying || c.session == nil {
		return nil
	}
	events := c.session.Tick(dt)
	switch c.session.Phase() {
	case PhaseWon:
		c.phase = PhaseWon
		events = append(events, c.recordWin()...)
	case PhaseLost:
		c.phase = PhaseLost
	}
	return events
}

func (c *Campaign) recordWin() []Event {
	if c.highest >= MaxCampaignLevel {
		return nil
	}
	c.highest++
	events := []Event{{
		Kind:    EventLevelUnlocked,
		Message: fmt.Sprintf("level %d unlocked", c.highest),
		Level:   c.highest,
	}}
	if err := c.store.SaveProgress(Progress{MaxLevel: c.highest}); err != nil {
		events = append(events, Event{
			Kind:    EventSaveFailed,
			Message: "could not save progress",
			Level:   c.highest,
			Err:     err,
		})
	}
	return events
}

func (c *Campaign) ReturnToMenu() {
	c.session = nil
	c.phase = PhaseMenu
	c.selected = ClampLevel(c.selected, c.highest)
}
