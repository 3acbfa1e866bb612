package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	DataDir string `env:"PHARMACY_DATA_DIR"`

	// Logging
	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`

	Version bool `env:"-"` // show version and exit (flag only)
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из окружения
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "каталог с базами аптек")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug|info|warn|error")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "писать лог в файл (с ротацией) вместо stderr")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if !validLevels[cfg.LogLevel] {
		cfg.LogLevel = "warn"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}

	return cfg
}

// DefaultDataDir возвращает каталог по умолчанию: <UserConfigDir>/PharmaKeeper/pharmacies.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = home
	}
	return filepath.Join(base, "PharmaKeeper", "pharmacies")
}
