package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileWriter handles file writing operations
type FileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		logger: logger.With().Str("component", "FileWriter").Logger(),
	}
}

// WriteFile writes data to path, truncating any existing content.
func (fw *FileWriter) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.CreateDirs {
		if err := fw.ensureDirectory(filepath.Dir(path)); err != nil {
			return errorwrapper.WrapError(err, "failed to create parent directories for: "+path)
		}
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- fw.performFileWrite(path, data, opts)
	}()

	select {
	case <-ctx.Done():
		fw.logger.Warn().Str("path", path).Msg("File write cancelled due to context timeout")
		return errorwrapper.WrapError(ctx.Err(), "file write operation cancelled")
	case err := <-done:
		if err != nil {
			return errorwrapper.WrapError(err, fmt.Sprintf("failed to write file: %s", path))
		}
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}

func (fw *FileWriter) ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errorwrapper.NewValidationError("path", dir, "exists but is not a directory")
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	fw.logger.Debug().Str("path", dir).Msg("Created directory")
	return nil
}

func (fw *FileWriter) performFileWrite(path string, data []byte, opts FileWriteOptions) error {
	perm := opts.Permissions
	if perm == 0 {
		perm = 0644
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fw.logger.Error().Err(closeErr).Str("path", path).Msg("Failed to close file after writing")
		}
	}()

	_, err = f.Write(data)
	return err
}
