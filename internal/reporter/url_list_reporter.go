package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/aleister1102/listingparser/internal/common/file"
	"github.com/aleister1102/listingparser/internal/config"
	"github.com/aleister1102/listingparser/internal/listing"
	"github.com/rs/zerolog"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// URLListReport is the JSON shape of a parse result.
type URLListReport struct {
	URLs           []string             `json:"urls"`
	DirectoryCount int                  `json:"directory_count"`
	URLCount       int                  `json:"url_count"`
	Skipped        []listing.Diagnostic `json:"skipped,omitempty"`
}

// URLListReporter renders parse results and writes them to a file or stdout.
type URLListReporter struct {
	cfg    *config.OutputConfig
	logger zerolog.Logger
	writer *file.FileWriter
	stdout io.Writer
}

// NewURLListReporter creates a reporter for the given output settings.
func NewURLListReporter(cfg *config.OutputConfig, logger zerolog.Logger) (*URLListReporter, error) {
	if cfg == nil {
		return nil, errorwrapper.NewValidationError("output_config", nil, "output configuration is required")
	}
	switch strings.ToLower(cfg.Format) {
	case "", OutputFormatText, OutputFormatJSON:
	default:
		return nil, errorwrapper.NewValidationError("format", cfg.Format, "unsupported output format")
	}

	componentLogger := logger.With().Str("component", "URLListReporter").Logger()
	return &URLListReporter{
		cfg:    cfg,
		logger: componentLogger,
		writer: file.NewFileWriter(componentLogger),
		stdout: os.Stdout,
	}, nil
}

// WithStdout replaces the writer used when no output file is configured.
func (r *URLListReporter) WithStdout(w io.Writer) *URLListReporter {
	r.stdout = w
	return r
}

// Render formats result according to the output configuration.
func (r *URLListReporter) Render(result *listing.ParseResult) ([]byte, error) {
	if result == nil {
		return nil, errorwrapper.NewValidationError("result", nil, "parse result is required")
	}

	urls := result.URLs
	if r.cfg.Unique {
		urls = uniqueURLs(urls)
	}

	if strings.EqualFold(r.cfg.Format, OutputFormatJSON) {
		return r.renderJSON(result, urls)
	}
	return r.renderText(result, urls), nil
}

// Write renders result and sends it to the configured destination.
func (r *URLListReporter) Write(result *listing.ParseResult) error {
	data, err := r.Render(result)
	if err != nil {
		return err
	}

	if r.cfg.OutputFile == "" {
		if _, err := r.stdout.Write(data); err != nil {
			return errorwrapper.WrapError(err, "failed to write URL list to stdout")
		}
		return nil
	}

	if err := r.writer.WriteFile(r.cfg.OutputFile, data, file.DefaultFileWriteOptions()); err != nil {
		return err
	}
	r.logger.Info().Str("path", r.cfg.OutputFile).Int("urls", len(result.URLs)).Msg("URL list written")
	return nil
}

func (r *URLListReporter) renderText(result *listing.ParseResult, urls []string) []byte {
	var buf bytes.Buffer
	for _, u := range urls {
		buf.WriteString(u)
		buf.WriteByte('\n')
	}
	if r.cfg.IncludeSummary {
		fmt.Fprintf(&buf, "\nTotal Directories Found: %d\n", result.DirectoryCount)
		fmt.Fprintf(&buf, "Total URLs Created: %d\n", len(urls))
	}
	return buf.Bytes()
}

func (r *URLListReporter) renderJSON(result *listing.ParseResult, urls []string) ([]byte, error) {
	report := URLListReport{
		URLs:           urls,
		DirectoryCount: result.DirectoryCount,
		URLCount:       len(urls),
		Skipped:        result.Diagnostics,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal URL list")
	}
	return append(data, '\n'), nil
}

// uniqueURLs drops repeated URLs, keeping the first occurrence.
func uniqueURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
