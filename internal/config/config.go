package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds extraction engine settings.
type EngineConfig struct {
	PreviewLines int `mapstructure:"preview_lines"`
}

// Load reads configuration from environment variables with the DRISHTI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DRISHTI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Engine defaults
	v.SetDefault("engine.preview_lines", 30)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "DRISHTI_SERVER_PORT",
		"server.read_timeout":  "DRISHTI_SERVER_READ_TIMEOUT",
		"server.write_timeout": "DRISHTI_SERVER_WRITE_TIMEOUT",
		"server.environment":   "DRISHTI_SERVER_ENVIRONMENT",
		"log.level":            "DRISHTI_LOG_LEVEL",
		"log.format":           "DRISHTI_LOG_FORMAT",
		"cors.allowed_origins": "DRISHTI_CORS_ALLOWED_ORIGINS",
		"engine.preview_lines": "DRISHTI_ENGINE_PREVIEW_LINES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DRISHTI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DRISHTI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitOrigins(v.GetString("cors.allowed_origins")),
	}
	cfg.Engine = EngineConfig{
		PreviewLines: v.GetInt("engine.preview_lines"),
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
