// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Config holds all configuration settings for the server.
// It maps directly to the structure of config.yml.
type Config struct {
	Port     int            `mapstructure:"port"`
	Database DatabaseConfig `mapstructure:"database"`
	Library  LibraryConfig  `mapstructure:"library"`
	Settings SettingsConfig `mapstructure:"settings"`
}

// DatabaseConfig locates the SQLite file holding the reading history.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LibraryConfig names the root used until the reader settings choose one.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
}

// SettingsConfig locates the JSON file holding the reader settings.
type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c, validation.Field(&c.Path, validation.Required))
}

func (c LibraryConfig) Validate() error {
	return validation.ValidateStruct(&c, validation.Field(&c.Path, validation.Required))
}

func (c SettingsConfig) Validate() error {
	return validation.ValidateStruct(&c, validation.Field(&c.Path, validation.Required))
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Database),
		validation.Field(&c.Library),
		validation.Field(&c.Settings),
	)
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// e.g., MANGO_LIBRARY_PATH will override the `library.path` key.
	viper.SetEnvPrefix("MANGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 15000)
	viper.SetDefault("database.path", "./mango.db")
	viper.SetDefault("library.path", "./manga")
	viper.SetDefault("settings.path", "./manga_config.json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
