package config

import (
	"fmt"
	"os"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
)

// ModelConfig locates the fitted vectorizer and model artifacts.
type ModelConfig struct {
	Storage       ModelStorageConfig `mapstructure:"storage"`
	VectorizerKey string             `mapstructure:"vectorizer_key"` // Object key of the vectorizer export
	ModelKey      string             `mapstructure:"model_key"`      // Object key of the model export
}

// ModelStorageConfig selects where artifacts are read from.
type ModelStorageConfig struct {
	Type         string `mapstructure:"type"`           // "local", "s3", "r2", "s3compatible" or "auto"
	BasePath     string `mapstructure:"base_path"`      // Directory for local storage
	Endpoint     string `mapstructure:"endpoint"`       // Custom endpoint for S3-compatible services
	Bucket       string `mapstructure:"bucket"`         // Bucket holding the artifacts
	Region       string `mapstructure:"region"`         // AWS region
	Prefix       string `mapstructure:"prefix"`         // Key prefix inside the bucket
	UseSSL       bool   `mapstructure:"use_ssl"`        // Use https for a custom endpoint
	AccessKey    string `mapstructure:"access_key"`     // Access key (can be set directly or via env var)
	AccessKeyEnv string `mapstructure:"access_key_env"` // Environment variable name for access key
	SecretKey    string `mapstructure:"secret_key"`     // Secret key (can be set directly or via env var)
	SecretKeyEnv string `mapstructure:"secret_key_env"` // Environment variable name for secret key
}

// ResolveEnvVars resolves environment variable references in the storage configuration.
// Direct values take precedence if already set.
func (c *ModelStorageConfig) ResolveEnvVars() {
	if c.AccessKeyEnv != "" && c.AccessKey == "" {
		if val := os.Getenv(c.AccessKeyEnv); val != "" {
			c.AccessKey = val
		}
	}
	if c.SecretKeyEnv != "" && c.SecretKey == "" {
		if val := os.Getenv(c.SecretKeyEnv); val != "" {
			c.SecretKey = val
		}
	}
}

// Validate checks that both artifacts can be located.
func (c *ModelConfig) Validate() error {
	if c.VectorizerKey == "" {
		return fmt.Errorf("model: vectorizer_key is required")
	}
	if c.ModelKey == "" {
		return fmt.Errorf("model: model_key is required")
	}

	switch c.Storage.Type {
	case "", "local":
	case "s3", "r2", "s3compatible", "auto":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("model storage %q: bucket is required", c.Storage.Type)
		}
	default:
		return fmt.Errorf("model storage: unknown type %q", c.Storage.Type)
	}
	return nil
}

// StorageConfig converts to the storage package configuration.
func (c *ModelStorageConfig) StorageConfig() *storage.Config {
	return &storage.Config{
		Type:      storage.StorageType(c.Type),
		BasePath:  c.BasePath,
		Endpoint:  c.Endpoint,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		UseSSL:    c.UseSSL,
		Bucket:    c.Bucket,
		Region:    c.Region,
		Prefix:    c.Prefix,
	}
}
