package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultLogFile is where debug logs go when CUBEMAZE_LOG_FILE is unset.
const DefaultLogFile = "logs/cubemaze.log"

// Config holds game configuration options.
type Config struct {
	// Size overrides the level's tiles per face edge. Zero keeps the level's size.
	Size int
	// Seed pins the first level's maze. Zero derives it from the level.
	Seed int64
	// Level is the 1-based level to start on.
	Level int
	// Debug enables logging to LogFile.
	Debug   bool
	LogFile string
	// Telemetry enables the OTLP trace exporter.
	Telemetry bool
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{Level: 1, LogFile: DefaultLogFile}
}

// LoadConfig loads .env from the working directory, if present, and reads the
// CUBEMAZE_* variables from the environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine: variables may be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a variable lookup. Invalid values are errors.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("CUBEMAZE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return Config{}, fmt.Errorf("CUBEMAZE_SIZE %q: must be a positive integer", v)
		}
		cfg.Size = size
	}
	if v := getenv("CUBEMAZE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CUBEMAZE_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := getenv("CUBEMAZE_LEVEL"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 1 {
			return Config{}, fmt.Errorf("CUBEMAZE_LEVEL %q: must be a positive integer", v)
		}
		cfg.Level = level
	}
	if v := getenv("CUBEMAZE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CUBEMAZE_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}
	if v := getenv("CUBEMAZE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("CUBEMAZE_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CUBEMAZE_TELEMETRY %q: %w", v, err)
		}
		cfg.Telemetry = enabled
	}
	return cfg, nil
}
