package shell

import (
	"path/filepath"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/env"
	"github.com/dumbjshell/dumbjshell/pkg/testutil"
)

// Points the home, config and data directories to a fresh temporary directory,
// and returns the directory.
func setupCleanHomePaths(t *testing.T) string {
	home := testutil.TempDir(t)
	testutil.Setenv(t, env.HOME, home)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, filepath.Join(home, "config"))
	testutil.Setenv(t, env.XDG_DATA_HOME, filepath.Join(home, "data"))
	return home
}
