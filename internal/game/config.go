package game

import (
	"fmt"
)

type SessionConfig struct {
	Level int
	Seed  int64
	// Store defaults to an in-memory store when nil.
	Store ProgressStore
	// PickupCount is the number of resource placement attempts; 0 means DefaultPickupCount.
	PickupCount int
}

func (c SessionConfig) Validate() error {
	if c.Level < 1 || c.Level > MaxCampaignLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", MaxCampaignLevel, c.Level)
	}
	if c.PickupCount < 0 {
		return fmt.Errorf("pickup count must not be negative, got %d", c.PickupCount)
	}
	return nil
}
