package testutil

import (
	"os"
	"path/filepath"

	"github.com/dumbjshell/dumbjshell/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed after
// the test finishes. It has symlinks resolved, so that it can be compared with
// paths computed by the code under test.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "dumbjshelltest"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			println("failed to remove temp dir:", err.Error())
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the working directory when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes.
func Chdir(c Cleanuper, dir string) {
	oldWd := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
}

// ApplyDir creates files in the current directory, mapping names to contents.
func ApplyDir(files map[string]string) {
	for name, content := range files {
		must.WriteFile(name, content)
	}
}
