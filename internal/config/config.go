package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the poker CLI
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}

	// Seed drives the random deal; 0 means use a crypto source
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The YAML file is optional; environment variables always apply on top.
func Load() error {
	configFile := os.Getenv("POKER_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	config = Config{}
	if file, err := os.Open(configFile); err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("poker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
