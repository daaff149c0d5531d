package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Download(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "m.json"), []byte(`{}`), 0o644))

	s := NewLocalStorage(dir)

	rc, err := s.Download(context.Background(), "models/m.json")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))

	_, err = s.Download(context.Background(), "models/missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, filepath.Join(dir, "models", "m.json"), s.Describe("models/m.json"))
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalStorage(t.TempDir()).Download(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(&Config{BasePath: "/tmp"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(&Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(&Config{Type: StorageTypeS3})
	assert.Error(t, err, "bucket is required")

	s, err = NewStorage(&Config{Type: StorageTypeS3, Bucket: "models", Prefix: "/sentiment/", Region: "eu-west-1"})
	require.NoError(t, err)
	assert.Equal(t, "s3://models/sentiment/vec.json", s.Describe("vec.json"))
}

func TestDetectStorageType(t *testing.T) {
	assert.Equal(t, StorageTypeR2, detectStorageType("https://acc.r2.cloudflarestorage.com"))
	assert.Equal(t, StorageTypeS3, detectStorageType("s3.eu-west-1.amazonaws.com"))
	assert.Equal(t, StorageTypeS3, detectStorageType(""))
	assert.Equal(t, StorageTypeS3Compatible, detectStorageType("localhost:9000"))
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "localhost:9000", normalizeEndpoint("http://localhost:9000/bucket"))
	assert.Equal(t, "minio.internal", normalizeEndpoint("https://minio.internal"))
	assert.Equal(t, "", normalizeEndpoint(""))
}
