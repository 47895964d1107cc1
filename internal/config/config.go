package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Storage backend identifiers accepted by STORAGE_BACKEND.
const (
	StorageFilesystem = "filesystem"
	StorageS3         = "s3"
	StorageMemory     = "memory"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	StorageBackend  string
	UploadDir       string
	PublicBaseURL   string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultStorageBackend  = StorageFilesystem
	defaultUploadDir       = "data/uploads"
	defaultMaxUploadBytes  = 32 << 20
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		StorageBackend:  getString(lookup, "STORAGE_BACKEND", defaultStorageBackend),
		UploadDir:       getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		PublicBaseURL:   getString(lookup, "PUBLIC_BASE_URL", ""),
		S3Bucket:        getString(lookup, "S3_BUCKET", ""),
		S3Region:        getString(lookup, "S3_REGION", ""),
		S3Endpoint:      getString(lookup, "S3_ENDPOINT", ""),
		S3AccessKey:     getString(lookup, "S3_ACCESS_KEY", ""),
		S3SecretKey:     getString(lookup, "S3_SECRET_KEY", ""),
		MaxUploadBytes:  getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("folioorder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "Attachment storage backend (filesystem, s3, memory)")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for the filesystem storage backend")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", cfg.PublicBaseURL, "Public base URL prefixed to filesystem stored references")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "Bucket for the s3 storage backend")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum accepted attachment size in bytes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	switch cfg.StorageBackend {
	case StorageFilesystem:
		if cfg.UploadDir == "" {
			return nil, fmt.Errorf("upload directory must be provided for the filesystem backend")
		}
	case StorageS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 bucket must be provided for the s3 backend")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
