package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

type Config struct {
	Env               string `mapstructure:"ENV"`
	ServerPort        int    `mapstructure:"SERVER_PORT"`
	SigningKey        string `mapstructure:"SIGNING_KEY"`
	DataStoreBaseURL  string `mapstructure:"DATASTORE_BASE_URL"`
	DataStoreKey      string `mapstructure:"DATASTORE_KEY"`
	AuthBaseURL       string `mapstructure:"AUTH_BASE_URL"`
	AuthKey           string `mapstructure:"AUTH_KEY"`
	Papertrail        string `mapstructure:"PAPERTRAIL"`
	PapertrailAppName string `mapstructure:"PAPERTRAIL_APP_NAME"`
	SupportContact    string `mapstructure:"SUPPORT_CONTACT"`
}

func LoadConfig(path string) (*Config, error) {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Disable environment variable prefix
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// Create config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Additional security: Validate critical configurations
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	// Add validation for critical configurations
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.DataStoreBaseURL == "" || config.DataStoreKey == "" {
		return fmt.Errorf("data store credentials must be provided")
	}

	if config.SigningKey == "" {
		return fmt.Errorf("token signing key must be provided")
	}

	return nil
}

// Optional: Masking sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.SigningKey = "****"
	redacted.DataStoreKey = "****"
	redacted.AuthKey = "****"
	return redacted
}

func LoadCustomConfig(path string, val interface{}) error {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Allow overriding config via environment variables
	v.SetEnvPrefix("MINT") // Prefix for env vars
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	if err := v.Unmarshal(&val); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}

	return nil
}
