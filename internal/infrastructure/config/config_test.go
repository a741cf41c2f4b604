package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "dropout-predictor", cfg.Tracing.ServiceName)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8090", cfg.HTTPAddress())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PREDICTOR_SERVER_PORT", "9100")
	t.Setenv("PREDICTOR_LOG_LEVEL", "debug")
	t.Setenv("PREDICTOR_ENVIRONMENT", "production")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  host: 127.0.0.1
  port: 9200
log:
  level: warn
  format: text
tracing:
  enabled: true
  endpoint: collector:4317
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9200", cfg.HTTPAddress())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"PREDICTOR_SERVER_PORT": "70000"},
			wantErr: "server port",
		},
		{
			name:    "unknown environment",
			env:     map[string]string{"PREDICTOR_ENVIRONMENT": "qa"},
			wantErr: "unknown environment",
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"PREDICTOR_LOG_LEVEL": "trace"},
			wantErr: "unknown log level",
		},
		{
			name:    "unknown log format",
			env:     map[string]string{"PREDICTOR_LOG_FORMAT": "xml"},
			wantErr: "unknown log format",
		},
		{
			name:    "sample rate out of range",
			env:     map[string]string{"PREDICTOR_TRACING_SAMPLE_RATE": "1.5"},
			wantErr: "sample rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
