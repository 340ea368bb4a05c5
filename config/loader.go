package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// SearchPaths are tried in order by LoadAppConfig
var SearchPaths = []string{"config.yml", "./configs/config.yml"}

// Default returns the configuration used when a field is left out of config.yml
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 16181},
		Stations: StationsConfig{
			Path: "stations.csv",
		},
		Network: NetworkConfig{
			AverageSpeedKMH: 40,
			TransferMinutes: 3,
			EarthRadiusKM:   6371,
			LoopLines:       []string{"CC"},
			CodeSeparator:   "/",
			EdgeConflict:    "last",
		},
		Cache: CacheConfig{
			Size:       1024,
			TTLSeconds: 600,
		},
	}
}

// LoadAppConfig loads and validates the application configuration from the
// first config.yml found in SearchPaths. A missing file is not an error: the
// defaults are used.
func LoadAppConfig() error {
	var data []byte
	var err error
	for _, p := range SearchPaths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadFromFile loads and validates the configuration at path
func LoadFromFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults, applies environment overrides and
// validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env then .env.local (which overrides) if present
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("MRT_STATIONS_CSV"); v != "" {
		cfg.Stations.Path = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}
