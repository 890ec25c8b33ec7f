package config

import (
	"strings"
	"sync"

	"planit-api/core/constants"
	"planit-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Seating  SeatingConfig
}

type ServerConfig struct {
	Port int
	Env  string // development, production
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	TokenExpiryMinutes int
}

type StorageConfig struct {
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // optional, for S3-compatible stores
}

type SeatingConfig struct {
	AutosaveDebounceSeconds int
	SyncPollSeconds         int
	SuggestionServiceURL    string // AI suggestion endpoint, empty disables
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the loaded application configuration
func Get() *Config {
	once.Do(func() {
		instance = load()
	})
	return instance
}

func load() *Config {
	// .env is optional, env vars win either way
	if err := godotenv.Load(constants.DefaultEnvFile); err != nil {
		logger.Debug("Config:load no .env file, using environment", "error", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", constants.DefaultServerPort)
	v.SetDefault("server.env", "development")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "planit")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_expiry_minutes", 1440)
	v.SetDefault("storage.s3_bucket", "planit-exports")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.s3_access_key", "")
	v.SetDefault("storage.s3_secret_key", "")
	v.SetDefault("storage.s3_endpoint", "")
	v.SetDefault("seating.autosave_debounce_seconds", 3)
	v.SetDefault("seating.sync_poll_seconds", 20)
	v.SetDefault("seating.suggestion_service_url", "")

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("server.port"),
			Env:  v.GetString("server.env"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:          v.GetString("auth.jwt_secret"),
			TokenExpiryMinutes: v.GetInt("auth.token_expiry_minutes"),
		},
		Storage: StorageConfig{
			S3Bucket:    v.GetString("storage.s3_bucket"),
			S3Region:    v.GetString("storage.s3_region"),
			S3AccessKey: v.GetString("storage.s3_access_key"),
			S3SecretKey: v.GetString("storage.s3_secret_key"),
			S3Endpoint:  v.GetString("storage.s3_endpoint"),
		},
		Seating: SeatingConfig{
			AutosaveDebounceSeconds: v.GetInt("seating.autosave_debounce_seconds"),
			SyncPollSeconds:         v.GetInt("seating.sync_poll_seconds"),
			SuggestionServiceURL:    v.GetString("seating.suggestion_service_url"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("Config:load JWT secret is empty, tokens cannot be validated")
	}

	return cfg
}
