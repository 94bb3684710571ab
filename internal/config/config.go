package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port       string `yaml:"port" env:"SERVER_PORT"`
		Mode       string `yaml:"mode" env:"SERVER_MODE"`
		CORSOrigin string `yaml:"cors_origin" env:"SERVER_CORS_ORIGIN"`
	} `yaml:"server"`

	MongoDB struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Database       string `yaml:"database" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	} `yaml:"mongodb"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional, env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CORSOrigin = "http://localhost:3000"

	// MongoDB defaults
	config.MongoDB.URI = "mongodb://localhost:27017"
	config.MongoDB.Database = "edunexus"
	config.MongoDB.ConnectTimeout = "10s"

	// JWT defaults
	config.JWT.TokenExpiration = "24h"
	config.JWT.Issuer = "edunexus.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required")
	}

	if config.MongoDB.Database == "" {
		return fmt.Errorf("mongodb database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.MongoDB.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid mongodb connect timeout format: %w", err)
	}

	return nil
}
