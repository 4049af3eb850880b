package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Resolver strategy names accepted for RESOLVER_STRATEGY.
const (
	ResolverStrategyVirtual      = "virtual"
	ResolverStrategyMaterialized = "materialized"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Occurrence resolution strategy: "virtual" recomputes occurrences from
	// rules and exceptions on every read, "materialized" reads pre-generated
	// occurrence rows.
	ResolverStrategy string `mapstructure:"RESOLVER_STRATEGY"`

	// Occurrence generation configuration. GenerationCron is a cron-style
	// schedule string (e.g. "0 3 * * *"); empty disables the in-process
	// scheduler, leaving generation to the HTTP entry point.
	GenerationCron      string `mapstructure:"GENERATION_CRON"`
	GenerationDaysAhead int    `mapstructure:"GENERATION_DAYS_AHEAD"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "session_booking")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Resolution and generation defaults
	viper.SetDefault("RESOLVER_STRATEGY", ResolverStrategyVirtual)
	viper.SetDefault("GENERATION_CRON", "")
	viper.SetDefault("GENERATION_DAYS_AHEAD", 7)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.ResolverStrategy {
	case ResolverStrategyVirtual, ResolverStrategyMaterialized:
	default:
		return fmt.Errorf("invalid RESOLVER_STRATEGY %q: must be %q or %q",
			config.ResolverStrategy, ResolverStrategyVirtual, ResolverStrategyMaterialized)
	}

	if config.GenerationDaysAhead <= 0 {
		return fmt.Errorf("GENERATION_DAYS_AHEAD must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
