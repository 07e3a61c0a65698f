package config

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/listingparser/internal/common/file"
	"github.com/rs/zerolog"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path given on the command line
// 2. LISTINGPARSER_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// 4. config.yaml / config.json next to the executable
func GetConfigPath(configFilePathFlag string) string {
	fv := file.NewFileValidator(zerolog.Nop())
	if configFilePathFlag != "" && fv.FileExists(configFilePathFlag) {
		return configFilePathFlag
	}

	if envPath := os.Getenv(ConfigPathEnv); envPath != "" && fv.FileExists(envPath) {
		return envPath
	}

	var locations []string
	cwd, errCwd := os.Getwd()
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		if exeDir := filepath.Dir(exePath); exeDir != cwd {
			locations = append(locations, exeDir)
		}
	}

	for _, loc := range locations {
		for _, name := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(loc, name)
			if fv.FileExists(path) {
				return path
			}
		}
	}
	return ""
}
