// Package config resolves runtime settings from config.yaml, TICKR_*
// environment variables and flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sadopc/tickr/internal/store"
)

const (
	KeyDBPath       = "db_path"
	KeyLogFile      = "log_file"
	KeyLogLevel     = "log_level"
	KeyTickInterval = "tick_interval"

	DefaultTickInterval = 250 * time.Millisecond
)

type Config struct {
	DBPath       string
	LogFile      string
	LogLevel     string
	TickInterval time.Duration
}

// Load reads configuration into v. A missing config file is not an error.
// configFile, when set, is read instead of searching the config paths.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	dataDir, err := store.DataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	v.SetDefault(KeyDBPath, filepath.Join(dataDir, "tickr.db"))
	v.SetDefault(KeyLogFile, filepath.Join(dataDir, "tickr.log"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTickInterval, DefaultTickInterval)
	v.SetEnvPrefix("TICKR")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config") // .yaml is implicit
		if override := os.Getenv("TICKR_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "tickr"))
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	dbPath, err := expand(v.GetString(KeyDBPath))
	if err != nil {
		return nil, err
	}
	logFile, err := expand(v.GetString(KeyLogFile))
	if err != nil {
		return nil, err
	}

	tick := v.GetDuration(KeyTickInterval)
	if tick <= 0 {
		tick = DefaultTickInterval
	}

	return &Config{
		DBPath:       dbPath,
		LogFile:      logFile,
		LogLevel:     v.GetString(KeyLogLevel),
		TickInterval: tick,
	}, nil
}

func expand(path string) (string, error) {
	if path == "" || path == "-" || path == ":memory:" {
		return path, nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return p, nil
}
