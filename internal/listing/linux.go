package listing

import "strings"

// lsLongNameColumn is the index of the name in ls -l output, after
// permissions, links, owner, group, size, month, day and time.
const lsLongNameColumn = 8

const (
	lsParentMarker = ".:"
	lsTotalMarker  = "total "
)

// lsHeaderPath extracts "/app" from a "./app:" subdirectory header.
func lsHeaderPath(line string) (string, bool) {
	if !strings.HasSuffix(line, ":") {
		return "", false
	}
	dot := strings.Index(line, ".")
	if dot < 0 {
		return "", false
	}
	colon := strings.Index(line[dot:], ":")
	return line[dot+1 : dot+colon], true
}

// lsLongName rebuilds the name column of an ls -l line. Symbolic links keep
// only the link name.
func lsLongName(state *parserState, tokens []string) string {
	name := state.collect(tokens, lsLongNameColumn)
	if strings.HasPrefix(tokens[0], "l") {
		if link, _, ok := strings.Cut(name, " -> "); ok {
			return link
		}
	}
	return name
}

// parseLinux handles both ls -lR (long=true) and ls -R transcripts. They
// share header detection and differ only in how entry lines are read.
func (p *Parser) parseLinux(cfg ParseConfig, lines []string, long bool) *ParseResult {
	result := newParseResult()
	state := newParserState("/")
	base := linuxBase(cfg.PathPrefix)

	for i, line := range lines {
		lineNo := i + 1

		if strings.Contains(line, lsParentMarker) {
			state.enterParent()
			p.logger.Debug().Int("line", lineNo).Bool("parent_block", state.inParent).Msg("Entered current directory block")
			continue
		}
		if dir, ok := lsHeaderPath(line); ok {
			state.enterDirectory(dir)
			result.DirectoryCount++
			p.logger.Debug().Int("line", lineNo).Str("directory", dir).Bool("parent_block", state.inParent).Msg("Entered subdirectory")
			continue
		}
		if isBlank(line) {
			continue
		}
		if long && strings.Contains(line, lsTotalMarker) {
			continue
		}
		if !state.inBlock {
			p.skip(result, lineNo, line, ReasonUnclassified)
			continue
		}

		tokens, err := tokenize(line)
		if err != nil {
			p.skip(result, lineNo, line, ReasonTokenize)
			continue
		}
		if len(tokens) == 0 {
			p.skip(result, lineNo, line, ReasonUnclassified)
			continue
		}

		if !long {
			for _, name := range tokens {
				p.emit(cfg, result, lineNo, line, base, state.dir, name)
			}
			continue
		}
		if len(tokens) <= lsLongNameColumn {
			p.skip(result, lineNo, line, ReasonTooFewColumns)
			continue
		}
		p.emit(cfg, result, lineNo, line, base, state.dir, lsLongName(state, tokens))
	}
	return result
}
