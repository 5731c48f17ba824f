package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	DBSource          string        `mapstructure:"DB_SOURCE"`           // Database connection string
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`      // Address where the server will run (e.g., "0.0.0.0:8080")
	TokenSymmetricKey string        `mapstructure:"TOKEN_SYMMETRIC_KEY"` // Secret key for verifying tokens
	AlertWindow       time.Duration `mapstructure:"ALERT_WINDOW"`        // How far back job alerts look (e.g., "24h")
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`    // Grace period for in-flight requests
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LogJSON           bool          `mapstructure:"LOG_JSON"`
	LogFile           string        `mapstructure:"LOG_FILE"` // Optional rotated log file
	GinMode           string        `mapstructure:"GIN_MODE"`
}

// defaults are applied before the config file and the environment are read.
var defaults = map[string]any{
	"SERVER_ADDRESS":   "0.0.0.0:8080",
	"ALERT_WINDOW":     "24h",
	"SHUTDOWN_TIMEOUT": "10s",
	"LOG_LEVEL":        "info",
	"LOG_JSON":         false,
	"GIN_MODE":         "release",
}

// LoadConfig loads environment variables from a file and environment into the Config struct.
// The app.env file is optional: in containers everything usually comes from the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Add the directory where the config file is located
	v.AddConfigPath(path)

	// Specify the name of the config file (without extension)
	v.SetConfigName("app")

	// Specify the file type. In this case, we're using a .env-style file
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// AutomaticEnv only sees keys viper already knows about, so bind the
	// ones without a default explicitly.
	v.AutomaticEnv()
	for _, key := range []string{"DB_SOURCE", "TOKEN_SYMMETRIC_KEY", "LOG_FILE"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	// Read the config file
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		err = nil
	}

	// Unmarshal the config values into the Config struct
	err = v.Unmarshal(&config)
	return
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.DBSource == "" {
		return errors.New("DB_SOURCE is required")
	}
	if len(c.TokenSymmetricKey) < 32 {
		return errors.New("TOKEN_SYMMETRIC_KEY must be at least 32 characters")
	}
	if c.AlertWindow <= 0 {
		return fmt.Errorf("ALERT_WINDOW must be positive, got %s", c.AlertWindow)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}
