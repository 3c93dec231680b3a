package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds application-level options that are not part of the round
// rules: where data lives, how fast the display refreshes and logging.
type Settings struct {
	DBPath    string `mapstructure:"db"`
	FPS       int    `mapstructure:"fps"`
	Seed      int64  `mapstructure:"seed"`
	RulesPath string `mapstructure:"rules"`
	LogFile   string `mapstructure:"log-file"`
	LogLevel  string `mapstructure:"log-level"`
	Sound     bool   `mapstructure:"sound"`
}

// Setting defaults.
const (
	DefaultDBPath   = "~/.numrush/numrush.db"
	DefaultLogFile  = "~/.numrush/numrush.log"
	DefaultFPS      = 60
	DefaultLogLevel = "info"
)

// LoadSettings merges settings from defaults, an optional settings file,
// NUMRUSH_* environment variables and the given flags (highest priority).
// A missing settings file is not an error.
func LoadSettings(flags *pflag.FlagSet, settingsPath string) (Settings, error) {
	var s Settings

	v := viper.New()
	v.SetEnvPrefix("NUMRUSH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", DefaultDBPath)
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("seed", 0)
	v.SetDefault("rules", "")
	v.SetDefault("log-file", DefaultLogFile)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("sound", true)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return s, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	if settingsPath == "" {
		settingsPath = userConfigPath("config.yaml")
	}
	if settingsPath != "" {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return s, fmt.Errorf("config: reading %s: %w", settingsPath, err)
			}
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: decoding settings: %w", err)
	}

	s.DBPath = ExpandHome(s.DBPath)
	s.LogFile = ExpandHome(s.LogFile)
	s.RulesPath = ExpandHome(s.RulesPath)
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}
	return s, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
