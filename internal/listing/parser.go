package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/aleister1102/listingparser/internal/common/file"
	"github.com/rs/zerolog"
)

// DefaultMaxInputSize caps how much of a listing file is read into memory.
const DefaultMaxInputSize int64 = 100 * 1024 * 1024

// Parser turns listing transcripts into candidate URLs. It keeps no state
// between calls and may be shared across goroutines.
type Parser struct {
	logger       zerolog.Logger
	fileReader   *file.FileReader
	maxInputSize int64
}

// NewParser creates a Parser that logs through logger.
func NewParser(logger zerolog.Logger) *Parser {
	componentLogger := logger.With().Str("component", "ListingParser").Logger()
	return &Parser{
		logger:       componentLogger,
		fileReader:   file.NewFileReader(componentLogger),
		maxInputSize: DefaultMaxInputSize,
	}
}

// WithMaxInputSize sets the largest listing file ParseFile accepts, in bytes.
// Zero or less removes the limit.
func (p *Parser) WithMaxInputSize(n int64) *Parser {
	p.maxInputSize = n
	return p
}

// Parse classifies each line of a transcript and builds the URL list.
// Malformed lines never fail the parse; they are reported in Diagnostics.
func (p *Parser) Parse(cfg ParseConfig, lines []string) (*ParseResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var result *ParseResult
	switch cfg.Format {
	case FormatWindowsDirS:
		result = p.parseWindows(cfg, lines)
	case FormatLinuxLsLR:
		result = p.parseLinux(cfg, lines, true)
	case FormatLinuxLsR:
		result = p.parseLinux(cfg, lines, false)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, cfg.Format)
	}

	p.logger.Info().
		Str("format", cfg.Format.String()).
		Int("lines", len(lines)).
		Int("directories", result.DirectoryCount).
		Int("urls", len(result.URLs)).
		Int("skipped", len(result.Diagnostics)).
		Msg("Listing parsed")
	return result, nil
}

// ParseReader reads r to the end and parses its contents.
func (p *Parser) ParseReader(cfg ParseConfig, r io.Reader) (*ParseResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read listing")
	}
	return p.Parse(cfg, splitLines(string(data)))
}

// ParseFile parses the listing stored at path. A path that is missing, a
// directory or unreadable yields ErrMissingInput and no result.
func (p *Parser) ParseFile(cfg ParseConfig, path string) (*ParseResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := file.DefaultFileReadOptions()
	opts.MaxSize = p.maxInputSize
	data, err := p.fileReader.ReadFile(path, opts)
	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Msg("Listing file is not valid")
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingInput, path, err)
	}
	if len(data) == 0 {
		p.logger.Warn().Str("path", path).Msg("Listing file is empty")
	}
	return p.Parse(cfg, splitLines(string(data)))
}

// emit filters an entry and appends its URL to result.
func (p *Parser) emit(cfg ParseConfig, result *ParseResult, lineNo int, line, base, dir, name string) {
	// A quoted empty token would otherwise resolve to the directory itself.
	if strings.TrimSpace(name) == "" {
		p.skip(result, lineNo, line, ReasonUnclassified)
		return
	}
	if isDotEntry(name) {
		p.skip(result, lineNo, line, ReasonExcluded)
		return
	}
	path := entryPath(base, dir, name)
	if isSessionEnding(path) {
		p.skip(result, lineNo, line, ReasonExcluded)
		return
	}
	result.URLs = append(result.URLs, buildURL(cfg, path))
}

func (p *Parser) skip(result *ParseResult, lineNo int, line string, reason SkipReason) {
	p.logger.Debug().Int("line", lineNo).Str("reason", string(reason)).Str("text", line).Msg("Skipping listing line")
	result.skip(lineNo, line, reason)
}
