package diag

import (
	"errors"
	"strings"
	"testing"
)

type fixedShow struct{}

func (fixedShow) Error() string        { return "plain" }
func (fixedShow) Show(_ string) string { return "shown" }

func TestShowError(t *testing.T) {
	setMessageMarkers(t, "{", "}")
	setCulpritMarkers(t, "<", ">")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Shower", fixedShow{}, "shown\n"},
		{"plain error", errors.New("oops"), "{oops}\n"},
		{"diag.Error",
			&Error{Type: "error", Message: "bad",
				Context: *NewContext("[tty 1]", "x + 1", Ranging{0, 1})},
			"Error: {bad}\n  [tty 1]:1:1: <x> + 1\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var sb strings.Builder
			ShowError(&sb, test.err)
			if got := sb.String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestComplainf(t *testing.T) {
	setMessageMarkers(t, "{", "}")
	var sb strings.Builder
	Complainf(&sb, "unknown command /%s", "foo")
	if got, want := sb.String(), "{unknown command /foo}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
