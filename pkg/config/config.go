package config

import (
	"github.com/spf13/viper"
)

// Report holds the report rendering settings.
type Report struct {
	// Output is the report file path. Empty renders to stdout.
	Output string `mapstructure:"output"`
	// Revision is the default revision label applied when a results
	// file does not name one.
	Revision string `mapstructure:"revision"`
}

type Config struct {
	Report Report `mapstructure:"report"`
}

// Default returns the configuration used when no config file exists:
// stdout output and the "release" revision scope.
func Default() *Config {
	return &Config{Report: Report{Revision: "release"}}
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("report.revision", "release")

	var config Config

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
