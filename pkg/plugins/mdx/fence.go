package mdx

import "strings"

// fence describes an opening code fence line.
type fence struct {
	char   byte
	length int
	info   string
	indent int
}

// trimIndent strips up to three leading spaces. It reports false when the
// line is indented further, which makes it an indented code line instead.
func trimIndent(line string) (string, int, bool) {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n > 3 {
		return line, n, false
	}
	return line[n:], n, true
}

func parseFenceOpen(line string) (fence, bool) {
	s, indent, ok := trimIndent(line)
	if !ok || len(s) < 3 || (s[0] != '`' && s[0] != '~') {
		return fence{}, false
	}
	ch := s[0]
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	if n < 3 {
		return fence{}, false
	}
	info := strings.TrimSpace(s[n:])
	if ch == '`' && strings.ContainsRune(info, '`') {
		return fence{}, false
	}
	return fence{char: ch, length: n, info: info, indent: indent}, true
}

func (f fence) closedBy(line string) bool {
	s, _, ok := trimIndent(line)
	if !ok {
		return false
	}
	n := 0
	for n < len(s) && s[n] == f.char {
		n++
	}
	return n >= f.length && strings.TrimSpace(s[n:]) == ""
}

// isSetextUnderline reports whether line is a run of = or - only.
func isSetextUnderline(line string) bool {
	s, _, ok := trimIndent(line)
	s = strings.TrimRight(s, " \t")
	if !ok || s == "" {
		return false
	}
	return strings.Trim(s, "=") == "" || strings.Trim(s, "-") == ""
}

// isTableDelimiter reports whether line is a table delimiter row like |---|:-:|.
func isTableDelimiter(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || !strings.Contains(s, "-") {
		return false
	}
	return strings.Trim(s, "|-: \t") == ""
}
