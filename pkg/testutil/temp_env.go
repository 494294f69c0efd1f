package testutil

import "os"

// Setenv sets an environment variable until the test finishes, and returns
// the value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnvLater(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv removes an environment variable until the test finishes.
func Unsetenv(c Cleanuper, name string) {
	restoreEnvLater(c, name)
	os.Unsetenv(name)
}

func restoreEnvLater(c Cleanuper, name string) {
	if old, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
