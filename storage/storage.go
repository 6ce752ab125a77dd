// Package storage keeps exported portal snapshots on the local filesystem or in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage stores snapshot documents
type Storage interface {
	// Upload stores a document of the given snapshot and returns its storage path
	Upload(ctx context.Context, snapshotID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// Type represents the storage backend type
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds configuration for storage
type Config struct {
	Type         Type   `mapstructure:"type" yaml:"type"`
	LocalPath    string `mapstructure:"local_path" yaml:"local_path"`
	S3Bucket     string `mapstructure:"s3_bucket" yaml:"s3_bucket"`
	S3Region     string `mapstructure:"s3_region" yaml:"s3_region"`
	AWSAccessKey string `mapstructure:"aws_access_key" yaml:"aws_access_key"`
	AWSSecretKey string `mapstructure:"aws_secret_key" yaml:"aws_secret_key"`
}

var ErrNotFound = errors.New("document not found")

// New creates a storage backend from configuration
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal, "":
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/snapshots"
		}
		return NewLocalStorage(cfg.LocalPath)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("s3 bucket is required for S3 storage")
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// snapshotPath places every document of a snapshot under one prefix
func snapshotPath(snapshotID uuid.UUID, filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	return path.Join("snapshots", snapshotID.String(), name)
}

func contentType(filename string) string {
	switch filepath.Ext(filename) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".md":
		return "text/markdown; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
