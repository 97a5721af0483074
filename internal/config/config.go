package config

import (
	"os"
	"strconv"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendS3    = "s3"
	BackendMinio = "minio"
)

// Config is the full function configuration, read once at startup.
type Config struct {
	Storage  StorageConfig
	Server   ServerConfig
	LogLevel string
}

// StorageConfig selects and configures the object store backend.
type StorageConfig struct {
	Backend string
	S3      S3Config
	Minio   MinioConfig
}

// S3Config leaves credentials empty to fall back on the default AWS chain
// (the Lambda execution role in production).
type S3Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// MinioConfig points at a MinIO server for local runs.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ServerConfig applies to the local HTTP server only.
type ServerConfig struct {
	Port string
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendS3),
			S3: S3Config{
				Region:          getEnv("AWS_REGION", "us-east-1"),
				Endpoint:        getEnv("S3_ENDPOINT", ""),
				AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			},
			Minio: MinioConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
				UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			},
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3003"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
