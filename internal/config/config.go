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
	Upload UploadConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds resume ingestion bounds. The size and text caps defend a
// memory-constrained deployment; they are deployment tuning, not semantics.
type UploadConfig struct {
	FormField      string        `mapstructure:"form_field"`
	MaxUploadKB    int64         `mapstructure:"max_upload_kb"`
	TmpDir         string        `mapstructure:"tmp_dir"`
	ProcessTimeout time.Duration `mapstructure:"process_timeout"`
	MaxTextChars   int           `mapstructure:"max_text_chars"`
	MinTextChars   int           `mapstructure:"min_text_chars"`
}

// MaxUploadBytes returns the upload size cap in bytes.
func (u *UploadConfig) MaxUploadBytes() int64 {
	return u.MaxUploadKB * 1024
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

// Load reads configuration from environment variables with the RESUMELENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESUMELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.form_field", "resume")
	v.SetDefault("upload.max_upload_kb", 512)
	v.SetDefault("upload.tmp_dir", os.TempDir())
	v.SetDefault("upload.process_timeout", "20s")
	v.SetDefault("upload.max_text_chars", 50000)
	v.SetDefault("upload.min_text_chars", 30)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "RESUMELENS_SERVER_PORT",
		"server.read_timeout":    "RESUMELENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "RESUMELENS_SERVER_WRITE_TIMEOUT",
		"server.environment":     "RESUMELENS_SERVER_ENVIRONMENT",
		"upload.form_field":      "RESUMELENS_UPLOAD_FORM_FIELD",
		"upload.max_upload_kb":   "RESUMELENS_UPLOAD_MAX_UPLOAD_KB",
		"upload.tmp_dir":         "RESUMELENS_UPLOAD_TMP_DIR",
		"upload.process_timeout": "RESUMELENS_UPLOAD_PROCESS_TIMEOUT",
		"upload.max_text_chars":  "RESUMELENS_UPLOAD_MAX_TEXT_CHARS",
		"upload.min_text_chars":  "RESUMELENS_UPLOAD_MIN_TEXT_CHARS",
		"log.level":              "RESUMELENS_LOG_LEVEL",
		"log.format":             "RESUMELENS_LOG_FORMAT",
		"cors.allowed_origins":   "RESUMELENS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RESUMELENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RESUMELENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		FormField:      v.GetString("upload.form_field"),
		MaxUploadKB:    v.GetInt64("upload.max_upload_kb"),
		TmpDir:         v.GetString("upload.tmp_dir"),
		ProcessTimeout: v.GetDuration("upload.process_timeout"),
		MaxTextChars:   v.GetInt("upload.max_text_chars"),
		MinTextChars:   v.GetInt("upload.min_text_chars"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
