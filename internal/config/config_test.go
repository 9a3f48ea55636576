package config

import (
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"ENVIRONMENT", "PORT", "SERVICE_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES",
	"SHUTDOWN_TIMEOUT", "SLOW_REQUEST_THRESHOLD", "ENABLE_SWAGGER",
}

// clearEnv blanks every key Load reads; viper ignores empty variables
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Environment != want.Environment || cfg.Port != want.Port || cfg.ServiceName != want.ServiceName {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
	if cfg.Log != want.Log {
		t.Errorf("Log = %+v, want %+v", cfg.Log, want.Log)
	}
	if cfg.HTTP != want.HTTP {
		t.Errorf("HTTP = %+v, want %+v", cfg.HTTP, want.HTTP)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SHUTDOWN_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsProduction() {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.HTTP.RateLimitRPS != 2.5 || cfg.HTTP.RateLimitBurst != 5 {
		t.Errorf("rate limit = %v/%d", cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	}
	if cfg.HTTP.ShutdownTimeout != 45*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.EnableSwagger {
		t.Error("swagger should default to off in production")
	}
}

func TestLoad_SwaggerOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_SWAGGER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.HTTP.EnableSwagger {
		t.Error("explicit ENABLE_SWAGGER should win")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantField string
	}{
		{"unknown environment", "ENVIRONMENT", "moon", "Environment"},
		{"non numeric port", "PORT", "http", "Port"},
		{"bad log level", "LOG_LEVEL", "loud", "Level"},
		{"bad log format", "LOG_FORMAT", "xml", "Format"},
		{"negative burst", "RATE_LIMIT_BURST", "-1", "RateLimitBurst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not name %s", err, tt.wantField)
			}
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Port = ""
	cfg.ServiceName = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"Config.Port", "Config.ServiceName"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not name %s", err, field)
		}
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	tests := []struct {
		name        string
		sc          *ServerlessConfig
		wantFormat  string
		wantSwagger bool
		wantEnv     string
	}{
		{"not lambda", &ServerlessConfig{IsLambda: false}, "text", true, "development"},
		{"nil config", nil, "text", true, "development"},
		{"lambda dev stage", &ServerlessConfig{IsLambda: true, Stage: "dev"}, "json", false, "development"},
		{"lambda prod stage", &ServerlessConfig{IsLambda: true, Stage: "prod"}, "json", false, "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Log.Format = "text"

			got := AdaptConfigForServerless(tt.sc, cfg)
			if got.Log.Format != tt.wantFormat {
				t.Errorf("Log.Format = %q, want %q", got.Log.Format, tt.wantFormat)
			}
			if got.HTTP.EnableSwagger != tt.wantSwagger {
				t.Errorf("EnableSwagger = %v, want %v", got.HTTP.EnableSwagger, tt.wantSwagger)
			}
			if got.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", got.Environment, tt.wantEnv)
			}
		})
	}
}

func TestDetectServerless(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "kalaa-whatsapp")
	t.Setenv("AWS_REGION", "ap-south-1")
	t.Setenv("STAGE", "")

	sc := detectServerless()
	if !sc.IsLambda || sc.FunctionName != "kalaa-whatsapp" || sc.Region != "ap-south-1" {
		t.Errorf("got %+v", sc)
	}
	if sc.Stage != "dev" {
		t.Errorf("Stage = %q, want dev", sc.Stage)
	}

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	if detectServerless().IsLambda {
		t.Error("expected server mode without AWS_LAMBDA_FUNCTION_NAME")
	}
}
