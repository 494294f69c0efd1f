package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/must"
	. "github.com/dumbjshell/dumbjshell/pkg/prog/progtest"
	"github.com/dumbjshell/dumbjshell/pkg/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("full.yaml", strings.Join([]string{
		`prompt: "jsh> "`,
		`result-prefix: "=> "`,
		`history: false`,
		`preload:`,
		`  - int answer = 42;`,
		`  - String greeting = "hi";`,
	}, "\n"))
	must.WriteFile("partial.yaml", `prompt: "> "`)
	must.WriteFile("empty.yaml", "")
	must.WriteFile("malformed.yaml", "prompt: [")
	must.WriteFile("unknown-key.yaml", "colour: red")

	tests := []struct {
		name    string
		file    string
		want    Config
		wantErr bool
	}{
		{"full", "full.yaml", Config{
			Prompt: "jsh> ", ResultPrefix: "=> ", History: false,
			Preload: []string{"int answer = 42;", `String greeting = "hi";`}}, false},
		{"partial", "partial.yaml", Config{
			Prompt: "> ", ResultPrefix: "==> ", History: true}, false},
		{"empty", "empty.yaml", defaultConfig(), false},
		{"nonexistent", "nonexistent.yaml", defaultConfig(), false},
		{"malformed", "malformed.yaml", defaultConfig(), true},
		{"unknown key", "unknown-key.yaml", defaultConfig(), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := loadConfig(test.file)
			if diff := cmp.Diff(test.want, cfg); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
			if (err != nil) != test.wantErr {
				t.Errorf("got error %v, want error: %v", err, test.wantErr)
			}
		})
	}
}

func TestShell_RC(t *testing.T) {
	home := setupCleanHomePaths(t)
	rc := filepath.Join(home, "config", "dumbjshell", "rc.yaml")
	must.OK(os.MkdirAll(filepath.Dir(rc), 0700))
	must.WriteFile(rc, strings.Join([]string{
		`result-prefix: "=> "`,
		`preload:`,
		`  - int answer = 42;`,
		`  - y`,
	}, "\n"))
	other := filepath.Join(home, "other.yaml")
	must.WriteFile(other, `result-prefix: "-> "`)
	bad := filepath.Join(home, "bad.yaml")
	must.WriteFile(bad, "prompt: [")

	Test(t, &Program{},
		ThatDumbjshell().WithStdin("answer + 1\n").
			WritesStdout("=> 43\n").
			// Errors in preloaded statements are shown but don't stop the shell.
			WritesStderrContaining("[preload 2]:1:1"),
		ThatDumbjshell("-norc").WithStdin("1\n").WritesStdout("==> 1\n"),
		ThatDumbjshell("-rc", other).WithStdin("1\n").WritesStdout("-> 1\n"),
		ThatDumbjshell("-rc", bad).WithStdin("1\n").
			WritesStdout("==> 1\n").
			WritesStderrContaining("Warning: "+bad),
	)
}
