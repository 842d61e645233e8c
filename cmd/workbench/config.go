package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/app"
	"github.com/hairizuanbinnoorazman/qa-workbench/auth"
	"github.com/hairizuanbinnoorazman/qa-workbench/database"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment override, e.g. WORKBENCH_SERVER_PORT.
const envPrefix = "WORKBENCH"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database database.Config
	Migrate  bool
	Slots    kvstore.Config
	Storage  storage.Config
	Auth     auth.Config
	Session  SessionConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SessionConfig holds browser session configuration.
type SessionConfig struct {
	CookieName   string
	CookieSecret string
	Duration     time.Duration
	Secure       bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// App returns the part of the configuration app.New consumes.
func (c *Config) App() app.Config {
	return app.Config{
		Database:    c.Database,
		AutoMigrate: c.Migrate,
		Slots:       c.Slots,
		Storage:     c.Storage,
		Auth:        c.Auth,
	}
}

// LoadConfig loads configuration from an optional .env file, the config
// file and WORKBENCH_ environment variables, in increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/workbench.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "qa_workbench")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("slots.backend", "memory")
	v.SetDefault("slots.blob_prefix", "slots")
	v.SetDefault("slots.valkey_addr", "localhost:6379")
	v.SetDefault("slots.valkey_password", "")
	v.SetDefault("slots.valkey_db", 0)
	v.SetDefault("slots.valkey_prefix", "workbench:")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.base_dir", "./uploads")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.s3_presign_expiry", "15m")

	v.SetDefault("auth.base_url", "http://localhost:5000/api")
	v.SetDefault("auth.timeout", "10s")
	v.SetDefault("auth.latency", "1s")

	v.SetDefault("session.cookie_name", "workbench_session")
	v.SetDefault("session.cookie_secret", "change-this-secret-in-production-min-32-chars")
	v.SetDefault("session.duration", "24h")
	v.SetDefault("session.secure", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config

	config.Server.Host = v.GetString("server.host")
	config.Server.Port = v.GetInt("server.port")
	config.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	config.Server.WriteTimeout = v.GetDuration("server.write_timeout")

	config.Database.Driver = v.GetString("database.driver")
	config.Database.Path = v.GetString("database.path")
	config.Database.Host = v.GetString("database.host")
	config.Database.Port = v.GetInt("database.port")
	config.Database.User = v.GetString("database.user")
	config.Database.Password = v.GetString("database.password")
	config.Database.Database = v.GetString("database.database")
	config.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	config.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	config.Migrate = v.GetBool("database.auto_migrate")

	config.Slots.Backend = v.GetString("slots.backend")
	config.Slots.BlobPrefix = v.GetString("slots.blob_prefix")
	config.Slots.ValkeyAddr = v.GetString("slots.valkey_addr")
	config.Slots.ValkeyPassword = v.GetString("slots.valkey_password")
	config.Slots.ValkeyDB = v.GetInt("slots.valkey_db")
	config.Slots.ValkeyPrefix = v.GetString("slots.valkey_prefix")

	config.Storage.Type = v.GetString("storage.type")
	config.Storage.BaseDir = v.GetString("storage.base_dir")
	config.Storage.S3Bucket = v.GetString("storage.s3_bucket")
	config.Storage.S3Region = v.GetString("storage.s3_region")
	config.Storage.S3PresignExpiry = v.GetDuration("storage.s3_presign_expiry")

	config.Auth.BaseURL = v.GetString("auth.base_url")
	config.Auth.Timeout = v.GetDuration("auth.timeout")
	config.Auth.Latency = v.GetDuration("auth.latency")

	config.Session.CookieName = v.GetString("session.cookie_name")
	config.Session.CookieSecret = v.GetString("session.cookie_secret")
	config.Session.Duration = v.GetDuration("session.duration")
	config.Session.Secure = v.GetBool("session.secure")

	config.Log.Level = v.GetString("log.level")
	config.Log.Format = v.GetString("log.format")

	return &config, nil
}
