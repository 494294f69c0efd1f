package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns a Java string literal that evaluates to s.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		if e, ok := escapeOf[r]; ok {
			sb.WriteByte('\\')
			sb.WriteByte(e)
		} else if unicode.IsPrint(r) && r != utf8.RuneError {
			sb.WriteRune(r)
		} else if r > 0xffff {
			r1, r2 := utf16.EncodeRune(r)
			writeUnicodeEscape(&sb, r1)
			writeUnicodeEscape(&sb, r2)
		} else {
			writeUnicodeEscape(&sb, r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	const hex = "0123456789abcdef"
	sb.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		sb.WriteByte(hex[(r>>shift)&0xf])
	}
}

var escapeOf = map[rune]byte{
	'\b': 'b', '\t': 't', '\n': 'n', '\f': 'f', '\r': 'r',
	'"': '"', '\\': '\\',
}

var unescapeOf = map[byte]rune{
	'b': '\b', 't': '\t', 'n': '\n', 'f': '\f', 'r': '\r', 's': ' ',
	'"': '"', '\'': '\'', '\\': '\\',
}

// Unescape interprets the escape sequences in the content of a Java string
// literal, without the quotes. Malformed escape sequences are kept verbatim.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	var pendingHigh rune
	flushHigh := func() {
		if pendingHigh != 0 {
			sb.WriteRune(utf8.RuneError)
			pendingHigh = 0
		}
	}
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 == len(s) {
			flushHigh()
			sb.WriteByte(s[i])
			i++
			continue
		}
		c := s[i+1]
		switch {
		case c == 'u':
			j := i + 1
			for j < len(s) && s[j] == 'u' {
				j++
			}
			if j+4 > len(s) {
				break
			}
			v, err := strconv.ParseUint(s[j:j+4], 16, 16)
			if err != nil {
				break
			}
			r := rune(v)
			switch {
			case utf16.IsSurrogate(r) && r < 0xdc00:
				flushHigh()
				pendingHigh = r
			case utf16.IsSurrogate(r) && pendingHigh != 0:
				sb.WriteRune(utf16.DecodeRune(pendingHigh, r))
				pendingHigh = 0
			default:
				flushHigh()
				sb.WriteRune(r)
			}
			i = j + 4
			continue
		case '0' <= c && c <= '7':
			// Up to three octal digits, with a value of at most 0377.
			j, v := i+1, 0
			for j < len(s) && j < i+4 && '0' <= s[j] && s[j] <= '7' && v*8+int(s[j]-'0') <= 0377 {
				v = v*8 + int(s[j]-'0')
				j++
			}
			flushHigh()
			sb.WriteRune(rune(v))
			i = j
			continue
		default:
			if r, ok := unescapeOf[c]; ok {
				flushHigh()
				sb.WriteRune(r)
				i += 2
				continue
			}
		}
		flushHigh()
		sb.WriteByte('\\')
		i++
	}
	flushHigh()
	return sb.String()
}
