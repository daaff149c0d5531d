package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  mode: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.True(t, cfg.Server.CORS.AllowAllOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./reviews.db", cfg.Database.DSN())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "local", cfg.Model.Storage.Type)
	assert.Equal(t, "tfidf_vectorizer.json", cfg.Model.VectorizerKey)
	assert.Equal(t, "sentiment_model.json", cfg.Model.ModelKey)
	assert.True(t, cfg.Translation.Enabled)
	assert.Equal(t, time.Duration(0), cfg.Translation.Timeout)
	assert.False(t, cfg.Translation.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Translation.Cache.TTL)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("TRANSLATION_ENABLED", "false")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := Load(writeConfig(t, "translation:\n  timeout: 3s\n"))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "file:test.db", cfg.Database.DSN())
	assert.False(t, cfg.Translation.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, "cache:6379", cfg.Translation.Cache.Addr)
}

func TestLoad_InvalidModelStorage(t *testing.T) {
	_, err := Load(writeConfig(t, "model:\n  storage:\n    type: s3\n"))
	assert.ErrorContains(t, err, "bucket is required")

	_, err = Load(writeConfig(t, "model:\n  storage:\n    type: ftp\n"))
	assert.ErrorContains(t, err, "unknown type")
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestModelStorageConfig_ResolveEnvVars(t *testing.T) {
	t.Setenv("MY_ACCESS", "from-env")
	t.Setenv("MY_SECRET", "secret-env")

	c := ModelStorageConfig{AccessKeyEnv: "MY_ACCESS", SecretKey: "direct", SecretKeyEnv: "MY_SECRET"}
	c.ResolveEnvVars()

	assert.Equal(t, "from-env", c.AccessKey)
	assert.Equal(t, "direct", c.SecretKey)
}

func TestModelStorageConfig_StorageConfig(t *testing.T) {
	c := ModelStorageConfig{Type: "s3", Bucket: "models", Region: "eu-west-1", Prefix: "v1"}
	sc := c.StorageConfig()

	assert.Equal(t, storage.StorageTypeS3, sc.Type)
	assert.Equal(t, "models", sc.Bucket)
	assert.Equal(t, "eu-west-1", sc.Region)
	assert.Equal(t, "v1", sc.Prefix)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{"sqlite path", DatabaseConfig{Driver: "sqlite", Path: "/tmp/r.db"}, "/tmp/r.db"},
		{"explicit dsn wins", DatabaseConfig{Driver: "sqlite", Path: "/tmp/r.db", URL: "file::memory:"}, "file::memory:"},
		{"postgres dsn", DatabaseConfig{Driver: "postgres", URL: "postgres://u@h/db"}, "postgres://u@h/db"},
		{"postgres without dsn", DatabaseConfig{Driver: "postgres", Path: "/ignored"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
