package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	ServerAddress  string   `env:"SERVER_ADDRESS,default=:8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=*"`

	RecipeAPIBaseURL   string        `env:"RECIPE_API_BASE_URL,default=https://forkify-api.herokuapp.com/api/v2/recipes"`
	RecipeFetchTimeout time.Duration `env:"RECIPE_FETCH_TIMEOUT,default=15s"`

	StorageBackend string `env:"STORAGE_BACKEND,default=file"`
	DataDir        string `env:"DATA_DIR,default=./data"`

	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB,default=recipebox"`

	FirestoreProjectID       string `env:"FIRESTORE_PROJECT_ID"`
	FirestoreCredentialsJSON string `env:"FIRESTORE_CREDENTIALS_JSON"`

	S3Bucket string `env:"S3_BUCKET"`
	S3Prefix string `env:"S3_PREFIX,default=recipebox"`

	ProfileSecret       string        `env:"PROFILE_SECRET,default=change-me-in-production"`
	ProfileTTL          time.Duration `env:"PROFILE_TTL,default=8760h"`
	ProfileSecureCookie bool          `env:"PROFILE_SECURE_COOKIE,default=false"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`

	OtelEndpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName    string `env:"OTEL_SERVICE_NAME,default=recipebox"`
	OtelServiceVersion string `env:"OTEL_SERVICE_VERSION,default=0.1.0"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.RecipeFetchTimeout < 0 {
		return nil, fmt.Errorf("RECIPE_FETCH_TIMEOUT must not be negative, got %s", cfg.RecipeFetchTimeout)
	}
	return &cfg, nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
