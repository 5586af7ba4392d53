package node

import (
	"fmt"
	"strconv"
	"strings"
)

// GetValue decodes the scalar's raw, still-quoted text into its logical
// string value: single-quote doubling for single-quoted scalars, the full
// backslash escape table for double-quoted scalars, and line-break folding
// to a single '\n' for plain and block scalars split across lines. This
// mirrors ScalarNode::getValue in the reference parser.
func (n *ScalarNode) GetValue() (string, error) {
	text := n.rng.Text(n.d.buf)
	switch {
	case n.single:
		return strings.ReplaceAll(text[1:len(text)-1], "''", "'"), nil
	case n.double:
		return decodeDoubleQuoted(text[1 : len(text)-1])
	default:
		return foldLineBreaks(text), nil
	}
}

func foldLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	var b strings.Builder
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		b.WriteString(strings.TrimRight(line, " \t"))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return strings.TrimSpace(b.String())
}

func decodeDoubleQuoted(s string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			if isBreak(c) {
				b.WriteByte(' ')
				i++
				if c == '\r' && i < len(s) && s[i] == '\n' {
					i++
				}
				continue
			}
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("unterminated escape sequence at offset %d", i)
		}
		esc := s[i+1]
		switch esc {
		case '0':
			b.WriteByte(0)
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'e':
			b.WriteByte(0x1B)
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case 'N':
			b.WriteRune(0x85)
			i += 2
		case '_':
			b.WriteRune(0xA0)
			i += 2
		case 'L':
			b.WriteRune(0x2028)
			i += 2
		case 'P':
			b.WriteRune(0x2029)
			i += 2
		case 'x':
			r, n, err := decodeHexEscape(s, i+2, 2)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 2 + n
		case 'u':
			r, n, err := decodeHexEscape(s, i+2, 4)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 2 + n
		case 'U':
			r, n, err := decodeHexEscape(s, i+2, 8)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 2 + n
		default:
			if isBreak(esc) {
				i += 2
				continue
			}
			return "", fmt.Errorf("unknown escape sequence '\\%c' at offset %d", esc, i)
		}
	}
	return b.String(), nil
}

func decodeHexEscape(s string, start, width int) (rune, int, error) {
	if start+width > len(s) {
		return 0, 0, fmt.Errorf("truncated escape sequence at offset %d", start)
	}
	v, err := strconv.ParseUint(s[start:start+width], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hex escape at offset %d: %w", start, err)
	}
	return rune(v), width, nil
}
