package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required,oneof=development staging production test"`
	Port        string `validate:"required,numeric"`
	ServiceName string `validate:"required"`
	Log         LogConfig
	HTTP        HTTPConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

// HTTPConfig holds knobs that only apply to the long-running server
type HTTPConfig struct {
	RateLimitRPS         float64       `validate:"gt=0"`
	RateLimitBurst       int           `validate:"gt=0"`
	MaxBodyBytes         int64         `validate:"gt=0"`
	ShutdownTimeout      time.Duration `validate:"gt=0"`
	SlowRequestThreshold time.Duration `validate:"gte=0"`
	EnableSwagger        bool
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	environment := strings.ToLower(v.GetString("ENVIRONMENT"))
	if !v.IsSet("ENABLE_SWAGGER") {
		v.Set("ENABLE_SWAGGER", environment != "production")
	}

	config := &Config{
		Environment: environment,
		Port:        v.GetString("PORT"),
		ServiceName: v.GetString("SERVICE_NAME"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:         v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:       v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:         v.GetInt64("MAX_BODY_BYTES"),
			ShutdownTimeout:      v.GetDuration("SHUTDOWN_TIMEOUT"),
			SlowRequestThreshold: v.GetDuration("SLOW_REQUEST_THRESHOLD"),
			EnableSwagger:        v.GetBool("ENABLE_SWAGGER"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the configuration Load produces with an empty environment
func Default() *Config {
	return &Config{
		Environment: "development",
		Port:        "8081",
		ServiceName: DefaultServiceName,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		HTTP: HTTPConfig{
			RateLimitRPS:         100,
			RateLimitBurst:       200,
			MaxBodyBytes:         10 * 1024 * 1024,
			ShutdownTimeout:      30 * time.Second,
			SlowRequestThreshold: time.Second,
			EnableSwagger:        true,
		},
	}
}

// DefaultServiceName is the name reported by the health endpoint
const DefaultServiceName = "Kalaa Saarathi API"

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ENVIRONMENT", d.Environment)
	v.SetDefault("PORT", d.Port)
	v.SetDefault("SERVICE_NAME", d.ServiceName)
	v.SetDefault("LOG_LEVEL", d.Log.Level)
	v.SetDefault("LOG_FORMAT", d.Log.Format)
	v.SetDefault("RATE_LIMIT_RPS", d.HTTP.RateLimitRPS)
	v.SetDefault("RATE_LIMIT_BURST", d.HTTP.RateLimitBurst)
	v.SetDefault("MAX_BODY_BYTES", d.HTTP.MaxBodyBytes)
	v.SetDefault("SHUTDOWN_TIMEOUT", d.HTTP.ShutdownTimeout)
	v.SetDefault("SLOW_REQUEST_THRESHOLD", d.HTTP.SlowRequestThreshold)
}

var validate = validator.New()

// Validate checks the configuration and reports every invalid field
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
