package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/listingparser/internal/common/file"
	"github.com/aleister1102/listingparser/internal/config"
	"github.com/aleister1102/listingparser/internal/listing"
	"github.com/aleister1102/listingparser/internal/logger"
	"github.com/aleister1102/listingparser/internal/reporter"
	"github.com/rs/zerolog"
)

const stdinInput = "-"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Could not load config using path '%s': %v\n", flags.GlobalConfigFile, err)
		return 1
	}
	flags.Apply(gCfg)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Could not initialize logger: %v\n", err)
		return 1
	}

	inputFile := gCfg.ParserConfig.InputFile
	switch {
	case inputFile == "":
		zLogger.Error().Msg("No directory listing given, use -input <file> or -input - for stdin")
		return 1
	case inputFile == stdinInput:
		// stdin is not a file, keep it out of the fileexists rule.
		gCfg.ParserConfig.InputFile = ""
	case !file.NewFileValidator(zLogger).FileExists(inputFile):
		zLogger.Error().Err(listing.ErrMissingInput).Str("path", inputFile).Msg("Directory listing file is not valid")
		return 1
	}

	parseCfg, err := gCfg.ParserConfig.ToParseConfig()
	if err != nil {
		zLogger.Error().Err(err).Msg("Invalid listing type")
		return 1
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	parser := listing.NewParser(zLogger).WithMaxInputSize(gCfg.ParserConfig.MaxInputSizeBytes())

	var result *listing.ParseResult
	if inputFile == stdinInput {
		result, err = parser.ParseReader(parseCfg, stdin)
	} else {
		result, err = parser.ParseFile(parseCfg, inputFile)
	}
	if err != nil {
		zLogger.Error().Err(err).Str("input", inputFile).Msg("Failed to parse directory listing")
		return 1
	}

	if len(result.URLs) == 0 {
		zLogger.Warn().
			Int("directories", result.DirectoryCount).
			Int("skipped", len(result.Diagnostics)).
			Msg("No URLs generated. Make sure the directory listing is a valid format and all input is correct.")
	}

	urlReporter, err := reporter.NewURLListReporter(&gCfg.OutputConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize URL list reporter")
		return 1
	}
	if err := urlReporter.WithStdout(stdout).Write(result); err != nil {
		zLogger.Error().Err(err).Msg("Failed to write URL list")
		return 1
	}

	zLogger.Info().
		Int("directories", result.DirectoryCount).
		Int("urls", len(result.URLs)).
		Msg("Directory listing processed")
	return 0
}
