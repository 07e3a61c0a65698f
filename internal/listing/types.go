package listing

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Format identifies the command a listing transcript was captured from.
type Format string

const (
	FormatWindowsDirS Format = "windows-dir-s"
	FormatLinuxLsLR   Format = "linux-ls-lr"
	FormatLinuxLsR    Format = "linux-ls-r"
)

// formatAliases maps accepted spellings, including the labels of the
// importer drop-down, to their canonical Format.
var formatAliases = map[string]Format{
	"windows-dir-s":    FormatWindowsDirS,
	"windows":          FormatWindowsDirS,
	"dir":              FormatWindowsDirS,
	"dir /s":           FormatWindowsDirS,
	"windows 'dir /s'": FormatWindowsDirS,
	"linux-ls-lr":      FormatLinuxLsLR,
	"ls -lr":           FormatLinuxLsLR,
	"linux 'ls -lr'":   FormatLinuxLsLR,
	"linux-ls-r":       FormatLinuxLsR,
	"ls -r":            FormatLinuxLsR,
	"linux 'ls -r'":    FormatLinuxLsR,
}

// ParseFormat resolves a user supplied format name. Unknown names yield
// ErrUnrecognizedFormat rather than a fallback.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedFormat, name)
}

// IsValid reports whether f is one of the three supported formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatWindowsDirS, FormatLinuxLsLR, FormatLinuxLsR:
		return true
	default:
		return false
	}
}

func (f Format) String() string {
	return string(f)
}

// Scheme is the URL scheme used for generated URLs.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// DefaultPathPrefix is the placeholder prefix offered to users. For the Linux
// formats it means "no prefix".
const DefaultPathPrefix = `C:\var\www\`

// ParseConfig describes the target application and the transcript format.
// It is not modified by a parse.
type ParseConfig struct {
	Hostname   string `json:"hostname" validate:"required,hostname_rfc1123|ip"`
	PathPrefix string `json:"path_prefix"`
	Scheme     Scheme `json:"scheme" validate:"required,oneof=http https"`
	Port       int    `json:"port" validate:"min=1,max=65535"`
	Format     Format `json:"format"`
}

var configValidator = validator.New()

// Validate checks the format first so callers can tell an unknown format
// apart from other invalid settings.
func (c ParseConfig) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnrecognizedFormat, c.Format)
	}
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SkipReason explains why a transcript line produced no URL.
type SkipReason string

const (
	ReasonUnclassified   SkipReason = "unclassified"
	ReasonTokenize       SkipReason = "tokenize_failed"
	ReasonTooFewColumns  SkipReason = "too_few_columns"
	ReasonPrefixMismatch SkipReason = "prefix_mismatch"
	ReasonSummaryLine    SkipReason = "summary_line"
	ReasonExcluded       SkipReason = "excluded"
)

// Diagnostic records a skipped line or entry. Line is 1-based.
type Diagnostic struct {
	Line   int        `json:"line"`
	Text   string     `json:"text"`
	Reason SkipReason `json:"reason"`
}

// ParseResult holds the generated URLs in discovery order and the number of
// directory headers seen.
type ParseResult struct {
	URLs           []string     `json:"urls"`
	DirectoryCount int          `json:"directory_count"`
	Diagnostics    []Diagnostic `json:"skipped,omitempty"`
}

func newParseResult() *ParseResult {
	return &ParseResult{URLs: []string{}}
}

func (r *ParseResult) skip(line int, text string, reason SkipReason) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Line: line, Text: text, Reason: reason})
}

// parserState is the per-parse cursor shared by the format handlers.
type parserState struct {
	dir      string
	inBlock  bool
	inParent bool
	offset   int
	name     []string
}

func newParserState(root string) *parserState {
	return &parserState{dir: root}
}

func (s *parserState) enterDirectory(dir string) {
	s.dir = dir
	s.inBlock = true
	s.inParent = false
}

func (s *parserState) enterParent() {
	s.dir = "/"
	s.inBlock = true
	s.inParent = true
}

// collect gathers the filename tokens starting at from and joins them with
// single spaces, recovering names that contain spaces.
func (s *parserState) collect(tokens []string, from int) string {
	s.name = append(s.name[:0], tokens[from:]...)
	return strings.Join(s.name, " ")
}
