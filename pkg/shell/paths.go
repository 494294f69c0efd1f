package shell

import (
	"os"
	"path/filepath"

	"github.com/dumbjshell/dumbjshell/pkg/env"
)

// Returns the path of the rc file, $XDG_CONFIG_HOME/dumbjshell/rc.yaml.
func rcPath() (string, error) {
	dir, err := xdgDir(env.XDG_CONFIG_HOME, ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dumbjshell", "rc.yaml"), nil
}

// Returns the path of the history database, $XDG_DATA_HOME/dumbjshell/db.bolt.
func dbPath() (string, error) {
	dir, err := xdgDir(env.XDG_DATA_HOME, filepath.Join(".local", "share"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dumbjshell", "db.bolt"), nil
}

// Returns the value of an XDG directory variable, falling back to a path
// relative to the home directory.
func xdgDir(name, fallback string) (string, error) {
	if dir := os.Getenv(name); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}
