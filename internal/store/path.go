package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDBPath returns the archive database path, in priority order:
// 1. $TUTORSTATE_DB
// 2. $XDG_DATA_HOME/tutorstate/archive.db
// 3. ~/.local/share/tutorstate/archive.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TUTORSTATE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tutorstate", "archive.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
