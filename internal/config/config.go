// Package config loads steeple configuration from a TOML file with
// defaults matching the classic starting position.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime configuration.
type Config struct {
	Game    GameConfig    `toml:"game"`
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// GameConfig seeds a new simulation.
type GameConfig struct {
	ChurchName       string `toml:"church_name"`
	Seed             int64  `toml:"seed"` // 0 = random
	StartingBudget   int    `toml:"starting_budget"`
	CongregationSize int    `toml:"congregation_size"`

	Utilities   int `toml:"utilities"`
	Programs    int `toml:"programs"`
	Maintenance int `toml:"maintenance"`
	Supplies    int `toml:"supplies"`
}

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	AdminToken  string   `toml:"admin_token"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls the save database.
type StorageConfig struct {
	Path string `toml:"path"`
	Slot string `toml:"slot"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// Default returns the starting configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			ChurchName:       "Grace Community Church",
			StartingBudget:   5000,
			CongregationSize: 50,
			Utilities:        200,
			Programs:         100,
			Maintenance:      50,
			Supplies:         50,
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Path: filepath.Join(steepleHome(), "steeple.db"),
			Slot: "default",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config file at path, falling back to defaults when path
// is empty or the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(steepleHome(), "config.toml")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// steepleHome returns the data directory.
func steepleHome() string {
	if env := os.Getenv("STEEPLE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".steeple")
}
