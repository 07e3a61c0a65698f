package config

import "github.com/aleister1102/listingparser/internal/listing"

const (
	// Parser Defaults
	DefaultParserHostname       = "localhost"
	DefaultParserPathPrefix     = listing.DefaultPathPrefix
	DefaultParserScheme         = "http"
	DefaultParserPort           = 80
	DefaultParserFormat         = "windows-dir-s"
	DefaultParserMaxInputSizeMB = 100

	// Output Defaults
	DefaultOutputFormat         = "text"
	DefaultOutputIncludeSummary = true

	// ConfigPathEnv overrides the config file location
	ConfigPathEnv = "LISTINGPARSER_CONFIG_PATH"
)
