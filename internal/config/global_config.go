package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/aleister1102/listingparser/internal/common/file"
	"github.com/aleister1102/listingparser/internal/logger"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	ParserConfig ParserConfig         `json:"parser_config,omitempty" yaml:"parser_config,omitempty"`
	OutputConfig OutputConfig         `json:"output_config,omitempty" yaml:"output_config,omitempty"`
	LogConfig    logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ParserConfig: NewDefaultParserConfig(),
		OutputConfig: NewDefaultOutputConfig(),
		LogConfig:    logger.NewDefaultFileLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// Values missing from the file keep their defaults. YAML is used for .yaml
// and .yml files, JSON otherwise.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" {
		if _, err := os.Stat(providedPath); err != nil {
			return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
		}
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	reader := file.NewFileReader(logger)
	opts := file.DefaultFileReadOptions()
	opts.MaxSize = 10 * 1024 * 1024
	data, err := reader.ReadFile(filePath, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}

func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
