package listing

import "strings"

const (
	// PowerShell Get-ChildItem -Recurse output: Mode, date, time, AM/PM, Length.
	windowsPowerShellMarker = "Directory: "
	windowsPowerShellOffset = 5
	// cmd.exe dir /s output: date, time, AM/PM, size or <DIR>.
	windowsCmdMarker = "Directory of "
	windowsCmdOffset = 4
)

// windowsHeader reports whether line announces a directory and returns the
// directory path and the entry column offset for the lines that follow.
func windowsHeader(line string) (string, int, bool) {
	if _, dir, ok := strings.Cut(line, windowsPowerShellMarker); ok {
		return strings.TrimSpace(dir), windowsPowerShellOffset, true
	}
	if _, dir, ok := strings.Cut(line, windowsCmdMarker); ok {
		return strings.TrimSpace(dir), windowsCmdOffset, true
	}
	return "", 0, false
}

// isWindowsSummary matches the per-directory footers of dir /s, such as
// "3 Dir(s)  10,000,000 bytes free".
func isWindowsSummary(tokens []string) bool {
	return len(tokens) > 1 && (tokens[1] == "File(s)" || tokens[1] == "Dir(s)")
}

func (p *Parser) parseWindows(cfg ParseConfig, lines []string) *ParseResult {
	result := newParseResult()
	state := newParserState("")

	for i, line := range lines {
		lineNo := i + 1

		if dir, offset, ok := windowsHeader(line); ok {
			state.enterDirectory(dir)
			state.offset = offset
			result.DirectoryCount++
			continue
		}
		if isBlank(line) {
			continue
		}
		if state.offset == 0 {
			p.skip(result, lineNo, line, ReasonUnclassified)
			continue
		}

		tokens, err := tokenize(line)
		if err != nil {
			p.skip(result, lineNo, line, ReasonTokenize)
			continue
		}
		if len(tokens) <= state.offset {
			p.skip(result, lineNo, line, ReasonTooFewColumns)
			continue
		}
		if isWindowsSummary(tokens) {
			p.skip(result, lineNo, line, ReasonSummaryLine)
			continue
		}

		name := state.collect(tokens, state.offset)
		relDir, ok := stripWindowsPrefix(state.dir, cfg.PathPrefix)
		if !ok {
			p.skip(result, lineNo, line, ReasonPrefixMismatch)
			continue
		}
		p.emit(cfg, result, lineNo, line, "", relDir, name)
	}
	return result
}
