package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		code string
		want []Line
	}{
		{"", nil},
		{"  \n\t\n", nil},
		{"a", []Line{{"a", 0}}},
		{"a\n\n  b\r\n\nc", []Line{{"a", 0}, {"  b", 3}, {"c", 9}}},
		{"x;\n", []Line{{"x;", 0}}},
	}
	for _, test := range tests {
		got := SplitLines(test.code)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("SplitLines(%q) (-want +got):\n%s", test.code, diff)
		}
	}
}
