package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverREST     = "rest"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Instagram       Instagram       `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	AggregationSync AggregationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	ProjectName string `mapstructure:"project_name"`
	Version     string `mapstructure:"version"`
	APIPrefix   string `mapstructure:"api_v1_prefix"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Instagram struct {
	BaseURL              string        `mapstructure:"instagram_api_base_url"`
	URL                  string        `mapstructure:"-"`
	Version              string        `mapstructure:"instagram_api_version"`
	AccessToken          string        `mapstructure:"instagram_access_token"`
	UserID               string        `mapstructure:"instagram_user_id"`
	Timeout              time.Duration `mapstructure:"instagram_timeout"`
	RetryMaxAttempts     int           `mapstructure:"instagram_retry_max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"instagram_retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"instagram_retry_max_interval"`
}

type Storage struct {
	Driver      string `mapstructure:"storage_driver"`
	SupabaseURL string `mapstructure:"supabase_url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	TableName   string `mapstructure:"supabase_table_name"`
	AutoMigrate bool   `mapstructure:"storage_auto_migrate"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	Password   string `mapstructure:"database_password"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"backend_cors_origins"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_requests_per_second"`
	Burst             int     `mapstructure:"rate_limit_burst"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AggregationSync struct {
	CronSchedule string   `mapstructure:"aggregation_sync_cron"`
	Enabled      bool     `mapstructure:"aggregation_sync_enabled"`
	MediaLimit   int      `mapstructure:"aggregation_sync_media_limit"`
	Hashtags     []string `mapstructure:"aggregation_sync_hashtags"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PROJECT_NAME", "Instagram Insights API")
	viper.SetDefault("VERSION", "0.1.0")
	viper.SetDefault("API_V1_PREFIX", "/api/v1")

	viper.SetDefault("INSTAGRAM_API_BASE_URL", "https://graph.instagram.com")
	viper.SetDefault("INSTAGRAM_API_VERSION", "v22.0")
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_USER_ID", "")
	viper.SetDefault("INSTAGRAM_TIMEOUT", "30s")
	viper.SetDefault("INSTAGRAM_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("INSTAGRAM_RETRY_INITIAL_INTERVAL", "2s")
	viper.SetDefault("INSTAGRAM_RETRY_MAX_INTERVAL", "10s")

	viper.SetDefault("STORAGE_DRIVER", StorageDriverREST)
	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_KEY", "")
	viper.SetDefault("SUPABASE_TABLE_NAME", "instagram_data")
	viper.SetDefault("STORAGE_AUTO_MIGRATE", false)

	viper.SetDefault("DATABASE_URL", "localhost:5432/instagram")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("SQLITE_PATH", "instagram.db")

	viper.SetDefault("BACKEND_CORS_ORIGINS", "*")

	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("AUTH_SECRET", "") // vazio desativa a proteção das rotas de escrita

	// Agregação agendada
	viper.SetDefault("AGGREGATION_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("AGGREGATION_SYNC_ENABLED", false)
	viper.SetDefault("AGGREGATION_SYNC_MEDIA_LIMIT", 25)
	viper.SetDefault("AGGREGATION_SYNC_HASHTAGS", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment loaded by godotenv: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Instagram.BaseURL = strings.TrimRight(config.Instagram.BaseURL, "/")
	config.Instagram.URL = fmt.Sprintf("%s/%s", config.Instagram.BaseURL, config.Instagram.Version)
	config.App.APIPrefix = "/" + strings.Trim(config.App.APIPrefix, "/")
	config.Cors.AllowedOrigins = cleanList(config.Cors.AllowedOrigins)
	config.AggregationSync.Hashtags = cleanList(config.AggregationSync.Hashtags)

	config.Database.DSN = config.Database.URL
	if !strings.Contains(config.Database.URL, "://") {
		config.Database.DSN = fmt.Sprintf(
			"postgres://%s:%s@%s",
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverREST, StorageDriverPostgres, StorageDriverSQLite:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Instagram.RetryMaxAttempts < 1 {
		return fmt.Errorf("config: INSTAGRAM_RETRY_MAX_ATTEMPTS must be at least 1")
	}

	if c.AggregationSync.MediaLimit < 0 {
		return fmt.Errorf("config: AGGREGATION_SYNC_MEDIA_LIMIT must not be negative")
	}

	return nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not get working directory: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
