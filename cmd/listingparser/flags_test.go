package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/aleister1102/listingparser/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want AppFlags
	}{
		{
			name: "long flags",
			args: []string{"-config", "cfg.yaml", "-input", "dump.txt", "-format", "linux-ls-r", "-hostname", "intranet", "-port", "8080", "-scheme", "https", "-unique"},
			want: AppFlags{GlobalConfigFile: "cfg.yaml", InputFile: "dump.txt", Format: "linux-ls-r", Hostname: "intranet", Port: 8080, Scheme: "https", Unique: true},
		},
		{
			name: "short aliases",
			args: []string{"-c", "cfg.yaml", "-i", "-", "-f", "linux-ls-lr", "-H", "10.0.0.1", "-p", "443", "-o", "urls.txt"},
			want: AppFlags{GlobalConfigFile: "cfg.yaml", InputFile: "-", Format: "linux-ls-lr", Hostname: "10.0.0.1", Port: 443, OutputFile: "urls.txt"},
		},
		{
			name: "long form wins",
			args: []string{"-input", "long.txt", "-i", "short.txt", "-port", "81", "-p", "82"},
			want: AppFlags{InputFile: "long.txt", Port: 81},
		},
		{
			name: "no flags",
			args: nil,
			want: AppFlags{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := ParseFlags([]string{"-bogus"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-input", "a.txt", "extra"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = ParseFlags([]string{"-h"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestAppFlags_Apply(t *testing.T) {
	cfg := config.NewDefaultGlobalConfig()

	AppFlags{}.Apply(cfg)
	assert.Equal(t, config.NewDefaultGlobalConfig(), cfg, "empty flags leave config untouched")

	AppFlags{
		InputFile:    "dump.txt",
		Format:       "linux-ls-lr",
		Hostname:     "intranet",
		PathPrefix:   "/srv/www",
		Scheme:       "https",
		Port:         8443,
		OutputFile:   "urls.json",
		OutputFormat: "json",
		Unique:       true,
		LogLevel:     "debug",
	}.Apply(cfg)

	assert.Equal(t, "dump.txt", cfg.ParserConfig.InputFile)
	assert.Equal(t, "linux-ls-lr", cfg.ParserConfig.Format)
	assert.Equal(t, "intranet", cfg.ParserConfig.Hostname)
	assert.Equal(t, "/srv/www", cfg.ParserConfig.PathPrefix)
	assert.Equal(t, "https", cfg.ParserConfig.Scheme)
	assert.Equal(t, 8443, cfg.ParserConfig.Port)
	assert.Equal(t, "urls.json", cfg.OutputConfig.OutputFile)
	assert.Equal(t, "json", cfg.OutputConfig.Format)
	assert.True(t, cfg.OutputConfig.Unique)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}
