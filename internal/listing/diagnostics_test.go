package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reasonsByLine(result *ParseResult) map[int]SkipReason {
	out := make(map[int]SkipReason, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		out[d.Line] = d.Reason
	}
	return out
}

func TestParseWindows_Diagnostics(t *testing.T) {
	lines := []string{
		" Volume in drive C has no label.",
		" Directory of D:\\inetpub\\wwwroot",
		"10/01/2020  10:00 AM               100 default.aspx",
		" Directory of C:\\var\\www\\app",
		"10/01/2020  10:00 AM               100 it's.txt",
		"               1 File(s)            100 bytes",
		"               5 Dir(s)  10,000,000,000 bytes free",
		"10/01/2020  10:00 AM    <DIR>          ..",
		"10/01/2020  10:00 AM               100 signout.aspx",
		"10/01/2020  10:00 AM               100 ok.html",
	}

	result, err := newTestParser().Parse(testConfig(FormatWindowsDirS), lines)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DirectoryCount)
	assert.Equal(t, []string{"http://example.com:80/app/ok.html"}, result.URLs)
	assert.Equal(t, map[int]SkipReason{
		1: ReasonUnclassified,
		3: ReasonPrefixMismatch,
		5: ReasonTokenize,
		6: ReasonTooFewColumns,
		7: ReasonSummaryLine,
		8: ReasonExcluded,
		9: ReasonExcluded,
	}, reasonsByLine(result))
}

func TestParseLinux_Diagnostics(t *testing.T) {
	lines := []string{
		"-rw-r--r-- 1 u g 10 Jan 1 00:00 early.html",
		".:",
		"total 4",
		"-rw-r--r-- 1 u g 10 Jan 1 00:00 index.html",
		"broken line",
		"-rw-r--r-- 1 u g 10 Jan 1 00:00 'unterminated.html",
		"-rw-r--r-- 1 u g 10 Jan 1 00:00 exit.html",
	}

	result, err := newTestParser().Parse(testConfig(FormatLinuxLsLR), lines)
	require.NoError(t, err)

	assert.Equal(t, 0, result.DirectoryCount)
	assert.Equal(t, []string{"http://example.com:80/index.html"}, result.URLs)
	assert.Equal(t, map[int]SkipReason{
		1: ReasonUnclassified,
		5: ReasonTooFewColumns,
		6: ReasonTokenize,
		7: ReasonExcluded,
	}, reasonsByLine(result))
}

func TestParseLsR_DotEntriesExcluded(t *testing.T) {
	lines := []string{".:", ".  ..  app", "./app:", ".  ..  index.php"}

	result, err := newTestParser().Parse(testConfig(FormatLinuxLsR), lines)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"http://example.com:80/app/",
		"http://example.com:80/app/index.php",
	}, result.URLs)
}
