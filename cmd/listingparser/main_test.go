package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/listingparser/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lsRListing = "./app:\nindex.html\nsub\n"

func runCLI(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")
	var stdout, stderr bytes.Buffer
	code := run(append(args, "-log-level", "error"), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String()
}

func TestRun_Stdin(t *testing.T) {
	code, out := runCLI(t, lsRListing, "-i", "-", "-f", "linux-ls-r", "-H", "example.com")

	assert.Equal(t, 0, code)
	assert.Equal(t, "http://example.com:80/app/index.html\n"+
		"http://example.com:80/app/sub/\n"+
		"\nTotal Directories Found: 1\n"+
		"Total URLs Created: 2\n", out)
}

func TestRun_FileToOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dump.txt")
	output := filepath.Join(dir, "out", "urls.json")
	require.NoError(t, os.WriteFile(input, []byte(" Directory of C:\\var\\www\\app\r\n\r\n01/01/2020  10:00 AM    <DIR>          sub\r\n01/01/2020  10:00 AM               12 file.txt\r\n"), 0644))

	code, out := runCLI(t, "", "-input", input, "-format", "Windows 'dir /s'", "-hostname", "example.com", "-output", output, "-output-format", "json")

	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"http://example.com:80/app/sub/"`)
	assert.Contains(t, string(data), `"http://example.com:80/app/file.txt"`)
	assert.Contains(t, string(data), `"directory_count": 1`)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "bad flag", args: []string{"-nope"}, code: 2},
		{name: "no input", args: []string{"-f", "linux-ls-r"}, code: 1},
		{name: "missing input file", args: []string{"-i", filepath.Join(t.TempDir(), "absent.txt")}, code: 1},
		{name: "input is a directory", args: []string{"-i", t.TempDir(), "-f", "linux-ls-r"}, code: 1},
		{name: "unknown format", args: []string{"-i", "-", "-f", "tree"}, code: 1},
		{name: "invalid port", args: []string{"-i", "-", "-f", "linux-ls-r", "-p", "70000"}, code: 1},
		{name: "missing config file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.yaml"), "-i", "-"}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runCLI(t, lsRListing, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
		})
	}
}

func TestRun_NoURLsStillSucceeds(t *testing.T) {
	code, out := runCLI(t, "just some text\n", "-i", "-", "-f", "linux-ls-r")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Total URLs Created: 0")
}
