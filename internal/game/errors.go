package game

import "errors"

var (
	ErrUnknownUnitType       = errors.New("unknown unit type")
	ErrUnitLocked            = errors.New("unit type not unlocked at this level")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrCastleMaxLevel        = errors.New("castle already at max level")
	ErrNoCommanderSelected   = errors.New("no commander selected")
	ErrNoEnemyCastle         = errors.New("no enemy castle standing")
	ErrNoSelection           = errors.New("no units selected")
	ErrNotPlaying            = errors.New("battle is not in progress")
	ErrLevelLocked           = errors.New("level is locked")
)
