package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvSearchDepth bounds how many directories LoadDotEnv inspects.
const DotEnvSearchDepth = 5

// LoadDotEnv looks for a .env file in dir and up to DotEnvSearchDepth-1 of
// its parents, and loads the first one found. Variables already present in
// the environment win over the file. It returns the loaded path, or "" when
// no file was found.
func LoadDotEnv(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("dotenv: %w", err)
		}
		dir = wd
	}

	for i := 0; i < DotEnvSearchDepth; i++ {
		path := filepath.Join(dir, ".env")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if err := godotenv.Load(path); err != nil {
				return "", fmt.Errorf("dotenv: load %s: %w", path, err)
			}
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
