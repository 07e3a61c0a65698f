package logger

import (
	"strings"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// Defaults for the log_config section. An empty LogFile keeps logs on the console only.
const (
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// FileLogConfig is the log_config section as written in the configuration file.
type FileLogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" validate:"min=0"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"min=0"`
}

// NewDefaultFileLogConfig logs at info level to the console.
func NewDefaultFileLogConfig() FileLogConfig {
	return FileLogConfig{
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// LogFormat selects how log lines are rendered.
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	FormatText    LogFormat = "text"
)

// LoggerConfig is the resolved form of FileLogConfig that the builder consumes.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// resolveConfig turns the file section into builder settings. Console output
// is always on; an unknown level falls back to info.
func resolveConfig(cfg FileLogConfig) LoggerConfig {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return LoggerConfig{
		Level:         level,
		Format:        parseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     positiveOr(cfg.MaxLogSizeMB, DefaultMaxLogSizeMB),
		MaxBackups:    positiveOr(cfg.MaxLogBackups, DefaultMaxLogBackups),
	}
}

func parseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

func parseFormat(s string) LogFormat {
	switch f := LogFormat(strings.ToLower(s)); f {
	case FormatJSON, FormatText:
		return f
	default:
		return FormatConsole
	}
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
