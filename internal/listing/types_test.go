package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "windows-dir-s", want: FormatWindowsDirS},
		{input: "Windows 'dir /s'", want: FormatWindowsDirS},
		{input: "linux-ls-lr", want: FormatLinuxLsLR},
		{input: "Linux 'ls -lR'", want: FormatLinuxLsLR},
		{input: " LINUX-LS-R ", want: FormatLinuxLsR},
		{input: "Linux 'ls -R'", want: FormatLinuxLsR},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("tree")
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\r\n\r\nb\r\n"))
	assert.Equal(t, []string{"a"}, splitLines("a"))
	assert.Empty(t, splitLines(""))
}

func TestTokenize(t *testing.T) {
	tokens, err := tokenize(`-rw-r--r-- 1 u g 10 Jan 1 00:00 "quarterly report.pdf"`)
	require.NoError(t, err)
	assert.Equal(t, "quarterly report.pdf", tokens[8])

	_, err = tokenize(`10/01/2020  10:00 AM  12 it's.txt`)
	assert.Error(t, err)
}

func TestEscapeLeadingHashes(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "index.html sub", want: "index.html sub"},
		{line: "#a# b", want: `\#a# b`},
		{line: "a  #b", want: `a  \#b`},
		{line: "a#b", want: "a#b"},
		{line: "'#a' \"#b\"", want: "'#a' \"#b\""},
		{line: `\#a`, want: `\#a`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLeadingHashes(tt.line))
		})
	}

	tokens, err := tokenize("index.html  #index.html#  sub")
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "#index.html#", "sub"}, tokens)
}
