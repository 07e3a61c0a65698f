package listing

import (
	"strings"

	"github.com/google/shlex"
)

// shlexSpaces are the runes shlex splits words on.
const shlexSpaces = " \t\r\n"

// tokenize splits a transcript line the way a POSIX shell would, honouring
// quotes and backslash escapes. Unbalanced quotes are an error. A "#" is an
// ordinary character, so names like "#index.html#" survive.
func tokenize(line string) ([]string, error) {
	return shlex.Split(escapeLeadingHashes(line))
}

// escapeLeadingHashes backslash-escapes every unquoted "#" that would begin a
// word, the only place shlex reads it as a comment.
func escapeLeadingHashes(line string) string {
	if !strings.Contains(line, "#") {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + 4)
	var quote rune
	escaped := false
	wordStart := true
	for _, r := range line {
		atStart := wordStart
		wordStart = false
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else if r == '\\' && quote == '"' {
				escaped = true
			}
		case r == '\\':
			escaped = true
		case r == '\'' || r == '"':
			quote = r
		case strings.ContainsRune(shlexSpaces, r):
			wordStart = true
		case r == '#' && atStart:
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// splitLines breaks a transcript into lines without their terminators.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
