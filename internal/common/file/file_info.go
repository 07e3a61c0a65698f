package file

import (
	"context"
	"io/fs"
	"time"
)

// FileInfo contains metadata about a file
type FileInfo struct {
	Path        string
	Name        string
	Size        int64
	IsDir       bool
	ModTime     time.Time
	Permissions fs.FileMode
}

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize    int64           // Maximum file size to read (0 = no limit)
	BufferSize int             // Buffer size for reading
	Timeout    time.Duration   // Read timeout
	Context    context.Context // Context for cancellation
}

// FileWriteOptions configures file writing behavior
type FileWriteOptions struct {
	CreateDirs  bool
	Permissions fs.FileMode
	Timeout     time.Duration
	Context     context.Context
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:    50 * 1024 * 1024,
		BufferSize: 64 * 1024,
		Timeout:    30 * time.Second,
		Context:    context.Background(),
	}
}

// DefaultFileWriteOptions returns default file writing options
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{
		CreateDirs:  true,
		Permissions: 0644,
		Timeout:     30 * time.Second,
		Context:     context.Background(),
	}
}
