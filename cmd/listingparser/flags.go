package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/aleister1102/listingparser/internal/config"
)

// AppFlags holds command line overrides. Zero values mean "not given".
type AppFlags struct {
	GlobalConfigFile string
	InputFile        string
	Format           string
	Hostname         string
	PathPrefix       string
	Scheme           string
	Port             int
	OutputFile       string
	OutputFormat     string
	Unique           bool
	LogLevel         string
}

// ParseFlags parses args (without the program name). Each long flag has a
// short alias; the long form wins when both are set.
func ParseFlags(args []string, stderr io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("listingparser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	globalConfigFile := fs.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	inputFile := fs.String("input", "", "Path to the directory listing file, or - for stdin.")
	inputFileAlias := fs.String("i", "", "Alias for -input")

	format := fs.String("format", "", "Type of file listing: windows-dir-s, linux-ls-lr or linux-ls-r")
	formatAlias := fs.String("f", "", "Alias for -format")

	hostname := fs.String("hostname", "", "Hostname of the target application")
	hostnameAlias := fs.String("H", "", "Alias for -hostname")

	pathPrefix := fs.String("prefix", "", `Full directory prefix to strip, e.g. C:\var\www\`)

	scheme := fs.String("scheme", "", "URL scheme: http or https")
	port := fs.Int("port", 0, "Port of the target application")
	portAlias := fs.Int("p", 0, "Alias for -port")

	outputFile := fs.String("output", "", "Write the URL list to this file instead of stdout")
	outputFileAlias := fs.String("o", "", "Alias for -output")
	outputFormat := fs.String("output-format", "", "Output format: text or json")
	unique := fs.Bool("unique", false, "Drop duplicate URLs from the output")

	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}
	if fs.NArg() > 0 {
		return AppFlags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return AppFlags{
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
		InputFile:        firstNonEmpty(*inputFile, *inputFileAlias),
		Format:           firstNonEmpty(*format, *formatAlias),
		Hostname:         firstNonEmpty(*hostname, *hostnameAlias),
		PathPrefix:       *pathPrefix,
		Scheme:           *scheme,
		Port:             firstNonZero(*port, *portAlias),
		OutputFile:       firstNonEmpty(*outputFile, *outputFileAlias),
		OutputFormat:     *outputFormat,
		Unique:           *unique,
		LogLevel:         *logLevel,
	}, nil
}

// Apply copies the given flags over the loaded configuration.
func (f AppFlags) Apply(cfg *config.GlobalConfig) {
	pc := &cfg.ParserConfig
	if f.InputFile != "" {
		pc.InputFile = f.InputFile
	}
	if f.Format != "" {
		pc.Format = f.Format
	}
	if f.Hostname != "" {
		pc.Hostname = f.Hostname
	}
	if f.PathPrefix != "" {
		pc.PathPrefix = f.PathPrefix
	}
	if f.Scheme != "" {
		pc.Scheme = f.Scheme
	}
	if f.Port != 0 {
		pc.Port = f.Port
	}
	if f.OutputFile != "" {
		cfg.OutputConfig.OutputFile = f.OutputFile
	}
	if f.OutputFormat != "" {
		cfg.OutputConfig.Format = f.OutputFormat
	}
	if f.Unique {
		cfg.OutputConfig.Unique = true
	}
	if f.LogLevel != "" {
		cfg.LogConfig.LogLevel = f.LogLevel
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
