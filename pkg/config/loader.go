package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML config file into dst. Missing files are not an
// error when optional is true, so a checkout without config/ still starts
// in demo mode.
func LoadYAML(path string, dst interface{}, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment, if one exists. Real environment variables win.
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

// ConfigPath resolves the config file path: CONFIG_FILE env var first,
// then <dir>/base.yaml.
func ConfigPath(dir string) string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path
	}
	if dir == "" {
		dir = "config"
	}
	return filepath.Join(dir, "base.yaml")
}
