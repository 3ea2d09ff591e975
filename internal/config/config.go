package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/mosdash/internal/weather"
	"github.com/five82/mosdash/internal/worldclock"
)

// Config captures the endpoints and credentials mosdash polls.
type Config struct {
	TimeURL    string
	TimeZone   string
	WeatherURL string
	CityID     string
	APIKeys    []string
	LogFile    string // empty disables logging
	Theme      string
}

const (
	defaultConfigPath = "~/.config/mosdash/config.toml"
	defaultLogFile    = "~/.local/state/mosdash/mosdash.log"
	defaultTheme      = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TimeURL:    worldclock.DefaultBaseURL,
		TimeZone:   worldclock.DefaultZone,
		WeatherURL: weather.DefaultBaseURL,
		CityID:     weather.DefaultCityID,
		APIKeys:    append([]string(nil), weather.DefaultKeys...),
		LogFile:    mustExpand(defaultLogFile),
		Theme:      defaultTheme,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TimeURL    string   `toml:"time_url"`
		TimeZone   string   `toml:"time_zone"`
		WeatherURL string   `toml:"weather_url"`
		CityID     string   `toml:"city_id"`
		APIKeys    []string `toml:"api_keys"`
		LogFile    *string  `toml:"log_file"`
		Theme      string   `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.TimeURL = orDefault(raw.TimeURL, cfg.TimeURL)
	cfg.TimeZone = orDefault(raw.TimeZone, cfg.TimeZone)
	cfg.WeatherURL = orDefault(raw.WeatherURL, cfg.WeatherURL)
	cfg.CityID = orDefault(raw.CityID, cfg.CityID)
	cfg.Theme = orDefault(raw.Theme, cfg.Theme)

	if keys := filterStrings(raw.APIKeys); len(keys) > 0 {
		cfg.APIKeys = keys
	}

	// An explicit empty log_file turns logging off.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed != "" {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func filterStrings(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
