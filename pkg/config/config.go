// Package config loads CLI configuration from the environment, with
// optional .env files. The core packages never read the environment
// themselves; values are passed in explicitly.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/admimic/admimic/pkg/adspec"
)

// Config holds runtime settings for the admimic CLI.
type Config struct {
	AppEnv    string
	FontsDir  string
	AssetsDir string
	MaxCanvas int
}

// Load reads configuration from the environment, consulting .env files when
// present. Missing file is not an error.
func Load() Config {
	_ = godotenv.Load(".env", ".env.local")

	return Config{
		AppEnv:    getenv("APP_ENV", "development"),
		FontsDir:  getenv("ADMIMIC_FONTS_DIR", "./fonts"),
		AssetsDir: getenv("ADMIMIC_ASSETS_DIR", "./assets"),
		MaxCanvas: getenvInt("ADMIMIC_MAX_CANVAS", adspec.MaxCanvasSize),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
