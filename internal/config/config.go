// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindEnvFile returns the first existing .env file in the current or parent
// directory, or "" when there is none.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from the given .env file, or from the file
// found by FindEnvFile when envFile is empty. Variables already set in the process
// environment are kept. It returns the file that was loaded, "" if none.
func LoadEnv(envFile string) (string, error) {
	if envFile == "" {
		envFile = FindEnvFile()
		if envFile == "" {
			return "", nil
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		return "", err
	}
	return envFile, nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
