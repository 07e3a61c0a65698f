package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileReader reads whole files into memory after validating them.
type FileReader struct {
	logger    zerolog.Logger
	validator *FileValidator
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	componentLogger := logger.With().Str("component", "FileReader").Logger()
	return &FileReader{
		logger:    componentLogger,
		validator: NewFileValidator(componentLogger),
	}
}

// ReadFile reads a file with the given options
func (fr *FileReader) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	if _, err := fr.validator.ValidateFileForReading(path, opts); err != nil {
		return nil, err
	}

	ctx, cancel := fr.setupContextWithTimeout(opts)
	if cancel != nil {
		defer cancel()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := f.Close(); err != nil {
			fr.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	var reader io.Reader = f
	if opts.BufferSize > 0 {
		reader = bufio.NewReaderSize(f, opts.BufferSize)
	}
	if opts.MaxSize > 0 {
		reader = io.LimitReader(reader, opts.MaxSize)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error
	go func() {
		defer close(done)
		content, readErr = io.ReadAll(reader)
	}()

	select {
	case <-ctx.Done():
		fr.logger.Warn().Str("path", path).Msg("File read cancelled due to context timeout")
		return nil, errorwrapper.WrapError(ctx.Err(), "file read operation cancelled")
	case <-done:
		if readErr != nil {
			return nil, errorwrapper.WrapError(readErr, fmt.Sprintf("failed to read file content: %s", path))
		}
	}

	return content, nil
}

func (fr *FileReader) setupContextWithTimeout(opts FileReadOptions) (context.Context, context.CancelFunc) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, nil
}
