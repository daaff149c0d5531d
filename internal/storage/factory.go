package storage

import (
	"fmt"
	"strings"
)

// Config selects and configures an artifact storage backend.
type Config struct {
	Type StorageType

	// local
	BasePath string

	// s3 and s3-compatible
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
	Prefix    string
}

// NewStorage creates the ObjectStorage described by cfg. An empty type means local.
func NewStorage(cfg *Config) (ObjectStorage, error) {
	switch cfg.Type {
	case "", StorageTypeLocal:
		return NewLocalStorage(cfg.BasePath), nil
	case StorageTypeS3, StorageTypeR2, StorageTypeS3Compatible:
		return NewS3Storage(cfg)
	case "auto":
		cfg.Type = detectStorageType(cfg.Endpoint)
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// detectStorageType guesses the S3 flavour from the endpoint.
func detectStorageType(endpoint string) StorageType {
	endpoint = strings.ToLower(endpoint)

	switch {
	case strings.Contains(endpoint, "r2.cloudflarestorage.com"):
		return StorageTypeR2
	case endpoint == "" || strings.Contains(endpoint, "amazonaws.com"):
		return StorageTypeS3
	default:
		return StorageTypeS3Compatible
	}
}
