package shell

import (
	"path/filepath"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/env"
	"github.com/dumbjshell/dumbjshell/pkg/testutil"
)

func TestPaths_XDG(t *testing.T) {
	home := setupCleanHomePaths(t)

	rc, err := rcPath()
	if want := filepath.Join(home, "config", "dumbjshell", "rc.yaml"); rc != want || err != nil {
		t.Errorf("rcPath() -> (%q, %v), want (%q, nil)", rc, err, want)
	}
	db, err := dbPath()
	if want := filepath.Join(home, "data", "dumbjshell", "db.bolt"); db != want || err != nil {
		t.Errorf("dbPath() -> (%q, %v), want (%q, nil)", db, err, want)
	}
}

func TestPaths_HomeFallback(t *testing.T) {
	home := setupCleanHomePaths(t)
	testutil.Unsetenv(t, env.XDG_CONFIG_HOME)
	testutil.Unsetenv(t, env.XDG_DATA_HOME)

	rc, err := rcPath()
	if want := filepath.Join(home, ".config", "dumbjshell", "rc.yaml"); rc != want || err != nil {
		t.Errorf("rcPath() -> (%q, %v), want (%q, nil)", rc, err, want)
	}
	db, err := dbPath()
	if want := filepath.Join(home, ".local", "share", "dumbjshell", "db.bolt"); db != want || err != nil {
		t.Errorf("dbPath() -> (%q, %v), want (%q, nil)", db, err, want)
	}
}
