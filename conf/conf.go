package conf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendDynamoDb = "dynamodb"
	StoreBackendMemory   = "memory"

	FileBackendLocal = "local"
	FileBackendS3    = "s3"
)

type Config struct {
	Port           string
	JwtKey         []byte
	AllowedOrigins []string

	StoreBackend        string
	PostgresConnStr     string
	DynamoDbTablePrefix string
	DynamoDbEndpoint    string
	AwsRegion           string

	FileBackend    string
	UploadDir      string
	S3Bucket       string
	MaxUploadBytes int64 // 0 means no limit

	LogLevel slog.Level
	Env      string
}

// LoadDotEnv loads .env into the process environment. A missing file is not
// an error, deployments set the variables directly.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func LoadFromEnv() (*Config, error) {
	jwtKey := os.Getenv("JWT_SECRET")
	if jwtKey == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	cfg := &Config{
		Port:                getEnvOr("PORT", "5000"),
		JwtKey:              []byte(jwtKey),
		AllowedOrigins:      splitList(getEnvOr("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		StoreBackend:        getEnvOr("STORE_BACKEND", StoreBackendPostgres),
		DynamoDbTablePrefix: getEnvOr("DYNAMODB_TABLE_PREFIX", "HandleWall"),
		DynamoDbEndpoint:    os.Getenv("DYNAMODB_ENDPOINT"),
		AwsRegion:           getEnvOr("AWS_REGION", "eu-central-1"),
		FileBackend:         getEnvOr("FILE_BACKEND", FileBackendLocal),
		UploadDir:           getEnvOr("UPLOAD_DIR", "uploads"),
		S3Bucket:            os.Getenv("S3_BUCKET"),
		Env:                 getEnvOr("APP_ENV", "dev"),
	}

	switch cfg.StoreBackend {
	case StoreBackendPostgres:
		connStr, err := GetPgConnStrFromEnv()
		if err != nil {
			return nil, err
		}
		cfg.PostgresConnStr = connStr
	case StoreBackendDynamoDb, StoreBackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %q", cfg.StoreBackend)
	}

	switch cfg.FileBackend {
	case FileBackendLocal:
	case FileBackendS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required when FILE_BACKEND=s3")
		}
	default:
		return nil, fmt.Errorf("unknown FILE_BACKEND: %q", cfg.FileBackend)
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %q", raw)
		}
		cfg.MaxUploadBytes = limit
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %q", raw)
		}
	}

	return cfg, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var res []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}
