package config

import (
	"strings"

	"github.com/aleister1102/listingparser/internal/listing"
)

// ParserConfig describes the listing to parse and the application it came from.
type ParserConfig struct {
	Hostname       string `json:"hostname,omitempty" yaml:"hostname,omitempty" validate:"required,hostname_rfc1123|ip"`
	PathPrefix     string `json:"path_prefix,omitempty" yaml:"path_prefix,omitempty"`
	Scheme         string `json:"scheme,omitempty" yaml:"scheme,omitempty" validate:"required,scheme"`
	Port           int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=1,max=65535"`
	Format         string `json:"format,omitempty" yaml:"format,omitempty" validate:"required,listingformat"`
	InputFile      string `json:"input_file,omitempty" yaml:"input_file,omitempty" validate:"omitempty,fileexists"`
	MaxInputSizeMB int    `json:"max_input_size_mb,omitempty" yaml:"max_input_size_mb,omitempty" validate:"min=0"`
}

// NewDefaultParserConfig creates default parser configuration
func NewDefaultParserConfig() ParserConfig {
	return ParserConfig{
		Hostname:       DefaultParserHostname,
		PathPrefix:     DefaultParserPathPrefix,
		Scheme:         DefaultParserScheme,
		Port:           DefaultParserPort,
		Format:         DefaultParserFormat,
		MaxInputSizeMB: DefaultParserMaxInputSizeMB,
	}
}

// ToParseConfig converts the section into the parser's own configuration.
// The format name may be any alias accepted by listing.ParseFormat.
func (pc ParserConfig) ToParseConfig() (listing.ParseConfig, error) {
	format, err := listing.ParseFormat(pc.Format)
	if err != nil {
		return listing.ParseConfig{}, err
	}
	return listing.ParseConfig{
		Hostname:   strings.TrimSpace(pc.Hostname),
		PathPrefix: pc.PathPrefix,
		Scheme:     listing.Scheme(strings.ToLower(pc.Scheme)),
		Port:       pc.Port,
		Format:     format,
	}, nil
}

// MaxInputSizeBytes returns the input size limit in bytes; zero means no limit.
func (pc ParserConfig) MaxInputSizeBytes() int64 {
	return int64(pc.MaxInputSizeMB) * 1024 * 1024
}
