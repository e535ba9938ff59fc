package save

import (
	"errors"
	"os"
	"path/filepath"
)

const appDirName = "KingdomHeroes"

// DefaultDir is where records live when no -data-dir is given.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if base == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(base, appDirName), nil
}
