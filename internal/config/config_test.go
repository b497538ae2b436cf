package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "resume", cfg.Upload.FormField)
	assert.Equal(t, int64(512), cfg.Upload.MaxUploadKB)
	assert.Equal(t, int64(512*1024), cfg.Upload.MaxUploadBytes())
	assert.Equal(t, 20*time.Second, cfg.Upload.ProcessTimeout)
	assert.Equal(t, 50000, cfg.Upload.MaxTextChars)
	assert.Equal(t, 30, cfg.Upload.MinTextChars)
	assert.NotEmpty(t, cfg.Upload.TmpDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RESUMELENS_UPLOAD_MAX_UPLOAD_KB", "64")
	t.Setenv("RESUMELENS_UPLOAD_PROCESS_TIMEOUT", "5s")
	t.Setenv("RESUMELENS_LOG_FORMAT", "json")
	t.Setenv("RESUMELENS_CORS_ALLOWED_ORIGINS", "https://resumes.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(64), cfg.Upload.MaxUploadKB)
	assert.Equal(t, 5*time.Second, cfg.Upload.ProcessTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://resumes.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RESUMELENS_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}
