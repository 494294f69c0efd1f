package parse

import "strings"

// Line is a non-blank line of a multi-line source.
type Line struct {
	Text string
	// Byte offset of the line in the whole source.
	Start int
}

// SplitLines splits code into non-blank lines. Line terminators are dropped,
// and "\r\n" is treated the same as "\n".
func SplitLines(code string) []Line {
	var lines []Line
	start := 0
	for _, text := range strings.SplitAfter(code, "\n") {
		trimmed := strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(trimmed) != "" {
			lines = append(lines, Line{trimmed, start})
		}
		start += len(text)
	}
	return lines
}
