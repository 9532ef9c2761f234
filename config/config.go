package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings shared by the solver, the reader
// and the command line tools.
type Config struct {
	DataPath   string
	LeavesPath string
	MaxPieces  int
	Debug      bool
}

// Load reads the configuration from an optional draughts.yml file in
// the working directory and from DRAUGHTS_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data-path", "./data")
	v.SetDefault("leaves-path", "./data/draughts-leaves.bin")
	v.SetDefault("max-pieces", 5)
	v.SetDefault("debug", false)

	v.SetConfigName("draughts")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("draughts")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		DataPath:   v.GetString("data-path"),
		LeavesPath: v.GetString("leaves-path"),
		MaxPieces:  v.GetInt("max-pieces"),
		Debug:      v.GetBool("debug"),
	}, nil
}
