package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

const FormatVersion = 1

const (
	progressFile = "progress.json"
	upgradesFile = "castle_upgrades.json"
)

var ErrUnsupportedVersion = errors.New("unsupported save format version")

type progressRecord struct {
	FormatVersion int `json:"format_version"`
	MaxLevel      int `json:"max_level"`
}

type upgradesRecord struct {
	FormatVersion int     `json:"format_version"`
	Level         int     `json:"level"`
	Bonus         float64 `json:"bonus"`
}

// Store keeps campaign progress and castle upgrades as JSON files in one directory.
// Missing files load as defaults. Unreadable ones load as defaults plus an error.
type Store struct {
	dir string
}

var _ game.ProgressStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) LoadProgress() (game.Progress, error) {
	var rec progressRecord
	found, err := readRecord(filepath.Join(s.dir, progressFile), &rec)
	if err != nil || !found {
		return game.DefaultProgress(), err
	}
	if rec.FormatVersion != FormatVersion {
		return game.DefaultProgress(), fmt.Errorf("%s: version %d: %w", progressFile, rec.FormatVersion, ErrUnsupportedVersion)
	}
	return game.Progress{MaxLevel: game.ClampLevel(rec.MaxLevel, game.MaxCampaignLevel)}, nil
}

func (s *Store) SaveProgress(p game.Progress) error {
	rec := progressRecord{
		FormatVersion: FormatVersion,
		MaxLevel:      game.ClampLevel(p.MaxLevel, game.MaxCampaignLevel),
	}
	return writeRecord(s.dir, progressFile, rec)
}

func (s *Store) LoadCastleUpgrades() (game.CastleUpgrades, error) {
	var rec upgradesRecord
	found, err := readRecord(filepath.Join(s.dir, upgradesFile), &rec)
	if err != nil || !found {
		return game.DefaultCastleUpgrades(), err
	}
	if rec.FormatVersion != FormatVersion {
		return game.DefaultCastleUpgrades(), fmt.Errorf("%s: version %d: %w", upgradesFile, rec.FormatVersion, ErrUnsupportedVersion)
	}
	return normalizeUpgrades(game.CastleUpgrades{Level: rec.Level, Bonus: rec.Bonus}), nil
}

func (s *Store) SaveCastleUpgrades(u game.CastleUpgrades) error {
	u = normalizeUpgrades(u)
	rec := upgradesRecord{FormatVersion: FormatVersion, Level: u.Level, Bonus: u.Bonus}
	return writeRecord(s.dir, upgradesFile, rec)
}

func normalizeUpgrades(u game.CastleUpgrades) game.CastleUpgrades {
	if u.Level < 1 {
		u.Level = 1
	}
	if u.Level > game.CastleMaxLevel {
		u.Level = game.CastleMaxLevel
	}
	if u.Bonus < 1 {
		u.Bonus = 1
	}
	return u
}

func readRecord(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeRecord replaces dir/name atomically through a temp file in the same directory.
func writeRecord(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, name+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		return err
	}

	cleanup = false
	return nil
}
