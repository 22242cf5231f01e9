package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	State     StateConfig     `mapstructure:"state"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Export    ExportConfig    `mapstructure:"export"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port      int    `mapstructure:"port"`
	ClamdAddr string `mapstructure:"clamd_addr"`
}

// StateConfig selects where the persisted state blob lives.
// Driver is one of "file", "redis", "gorm".
type StateConfig struct {
	Driver  string `mapstructure:"driver"`
	DataDir string `mapstructure:"data_dir"`
}

// RedisConfig contains Redis connection settings (task queue, pub/sub,
// optional state driver).
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig contains connection options for the gorm state driver.
// Driver is "sqlite" or "postgres"; DSN is a file path for sqlite.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// ArtifactsConfig selects where finished PDF exports are stored.
// Driver is "local" or "minio".
type ArtifactsConfig struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// ExportConfig tunes the PDF export pipeline.
type ExportConfig struct {
	// ChromeBin overrides headless Chromium discovery when set.
	ChromeBin string `mapstructure:"chrome_bin"`
	// MaxPerMinute throttles export submissions per client; 0 disables.
	MaxPerMinute int `mapstructure:"max_per_minute"`
}

// RedisAddr builds the host:port address.
func (r RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("state.driver", "file")
	v.SetDefault("state.data_dir", "./data")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/resumeforge.db")
	v.SetDefault("artifacts.driver", "local")
	v.SetDefault("artifacts.dir", "./data/exports")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "resume-exports")
	v.SetDefault("export.max_per_minute", 6)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                "API_PORT",
		"api.clamd_addr":          "CLAMD_ADDR",
		"state.driver":            "STATE_DRIVER",
		"state.data_dir":          "DATA_DIR",
		"redis.host":              "REDIS_HOST",
		"redis.port":              "REDIS_PORT",
		"database.driver":         "DATABASE_DRIVER",
		"database.dsn":            "DATABASE_DSN",
		"artifacts.driver":        "ARTIFACTS_DRIVER",
		"artifacts.dir":           "ARTIFACTS_DIR",
		"minio.endpoint":          "MINIO_ENDPOINT",
		"minio.access_key_id":     "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key": "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":           "MINIO_USE_SSL",
		"minio.bucket":            "MINIO_BUCKET",
		"export.chrome_bin":       "CHROME_BIN",
		"export.max_per_minute":   "EXPORT_MAX_PER_MINUTE",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	switch cfg.State.Driver {
	case "file", "redis", "gorm":
	default:
		return fmt.Errorf("unknown state driver %q", cfg.State.Driver)
	}
	if cfg.State.Driver == "file" && cfg.State.DataDir == "" {
		return errors.New("data dir is required for the file state driver")
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.State.Driver == "gorm" {
		if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
			return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
		}
		if cfg.Database.DSN == "" {
			return errors.New("database dsn is required for the gorm state driver")
		}
	}
	switch cfg.Artifacts.Driver {
	case "local":
		if cfg.Artifacts.Dir == "" {
			return errors.New("artifacts dir is required for the local driver")
		}
	case "minio":
		if cfg.MinIO.Endpoint == "" {
			return errors.New("minio endpoint is required")
		}
		if cfg.MinIO.AccessKeyID == "" {
			return errors.New("minio access key id is required")
		}
		if cfg.MinIO.SecretAccessKey == "" {
			return errors.New("minio secret access key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return errors.New("minio bucket is required")
		}
	default:
		return fmt.Errorf("unknown artifacts driver %q", cfg.Artifacts.Driver)
	}
	if cfg.Export.MaxPerMinute < 0 {
		return errors.New("export rate limit must not be negative")
	}
	return nil
}
