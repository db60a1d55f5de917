// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"log/slog"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type TrashConfig struct {
	// rows soft-deleted longer ago than this are purged by the retention sweep
	RetentionDays int `mapstructure:"TRASH_RETENTION_DAYS"`
	// robfig/cron spec, empty disables the scheduled sweep
	CleanupSchedule string `mapstructure:"TRASH_CLEANUP_SCHEDULE"`
}

type StorageConfig struct {
	Endpoint        string        `mapstructure:"STORAGE_ENDPOINT"`
	Region          string        `mapstructure:"STORAGE_REGION"`
	Bucket          string        `mapstructure:"STORAGE_BUCKET"`
	AccessKeyID     string        `mapstructure:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `mapstructure:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `mapstructure:"STORAGE_USE_PATH_STYLE"`
	SignedURLTTL    time.Duration `mapstructure:"STORAGE_SIGNED_URL_TTL"`
	MaxUploadSize   int64         `mapstructure:"STORAGE_MAX_UPLOAD_SIZE"`
}

type TracingConfig struct {
	// one of "", "otlp-http", "otlp-grpc", "stdout"
	Exporter    string `mapstructure:"OTEL_EXPORTER"`
	ServiceName string `mapstructure:"OTEL_SERVICE_NAME"`
}

// Config is the complete runtime configuration of the app library.
// It is loaded once at startup and handed to the components which need it.
type Config struct {
	Port               string   `mapstructure:"PORT"`
	Environment        string   `mapstructure:"ENVIRONMENT"`
	ErrorTrackingDSN   string   `mapstructure:"ERROR_TRACKING_DSN"`
	DisableAutoMigrate bool     `mapstructure:"DISABLE_AUTOMIGRATE"`
	CORSAllowOrigins   []string `mapstructure:"CORS_ALLOW_ORIGINS"`
	// requests per second per client on the file routes
	FilesRateLimit float64 `mapstructure:"FILES_RATE_LIMIT"`

	Database database.PoolConfig `mapstructure:",squash"`
	Trash    TrashConfig         `mapstructure:",squash"`
	Storage  StorageConfig       `mapstructure:",squash"`
	Tracing  TracingConfig       `mapstructure:",squash"`
}

// FlagAnnotation marks a pflag as an override for the config key given as annotation value:
//
//	cmd.Flags().SetAnnotation("retention-days", config.FlagAnnotation, []string{"TRASH_RETENTION_DAYS"})
const FlagAnnotation = "config-key"

func setDefaults(v *viper.Viper) {
	pool := database.DefaultPoolConfig()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ERROR_TRACKING_DSN", "")
	v.SetDefault("DISABLE_AUTOMIGRATE", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("FILES_RATE_LIMIT", 10)

	v.SetDefault("POSTGRES_USER", "")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_HOST", pool.Host)
	v.SetDefault("POSTGRES_PORT", pool.Port)
	v.SetDefault("POSTGRES_DB", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", pool.MaxOpenConns)
	v.SetDefault("DB_MIN_CONNS", pool.MinConns)
	v.SetDefault("DB_CONN_MAX_LIFETIME", pool.ConnMaxLifetime)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", pool.ConnMaxIdleTime)

	v.SetDefault("TRASH_RETENTION_DAYS", 30)
	v.SetDefault("TRASH_CLEANUP_SCHEDULE", "@daily")

	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_BUCKET", "")
	v.SetDefault("STORAGE_ACCESS_KEY_ID", "")
	v.SetDefault("STORAGE_SECRET_ACCESS_KEY", "")
	v.SetDefault("STORAGE_USE_PATH_STYLE", true)
	// backblaze download authorizations were issued for 86400 seconds
	v.SetDefault("STORAGE_SIGNED_URL_TTL", 24*time.Hour)
	v.SetDefault("STORAGE_MAX_UPLOAD_SIZE", int64(2<<30))

	v.SetDefault("OTEL_EXPORTER", "")
	v.SetDefault("OTEL_SERVICE_NAME", "applibrary")
}

// Load reads a .env file (if present), the optional CONFIG_FILE and the environment.
// Flags, if given, take precedence over everything else.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on environment variables", "err", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "could not read config file %s", file)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			keys, ok := f.Annotations[FlagAnnotation]
			if !ok || len(keys) == 0 || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(keys[0], f)
		})
		if bindErr != nil {
			return Config{}, errors.Wrap(bindErr, "could not bind flags")
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, errors.Wrap(err, "could not decode config")
	}

	if cfg.Trash.RetentionDays < 0 {
		return Config{}, errors.Errorf("TRASH_RETENTION_DAYS must not be negative, got %d", cfg.Trash.RetentionDays)
	}

	return cfg, nil
}

// IsDev reports whether the service runs in a development environment.
func (c Config) IsDev() bool {
	return c.Environment == "dev"
}
