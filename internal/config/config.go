package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Model       ModelConfig       `mapstructure:"model"`
	Text        TextConfig        `mapstructure:"text"`
	Translation TranslationConfig `mapstructure:"translation"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	URL             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the connection string for the configured driver.
// For sqlite the explicit dsn wins over path.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Driver == "postgres" {
		return ""
	}
	return c.Path
}

type TextConfig struct {
	StopwordsPath string `mapstructure:"stopwords_path"`
}

type TranslationConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./reviews.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("model.storage.type", "local")
	v.SetDefault("model.storage.base_path", ".")
	v.SetDefault("model.vectorizer_key", "tfidf_vectorizer.json")
	v.SetDefault("model.model_key", "sentiment_model.json")
	v.SetDefault("text.stopwords_path", "")
	v.SetDefault("translation.enabled", true)
	v.SetDefault("translation.base_url", "https://translate.googleapis.com/translate_a/single")
	v.SetDefault("translation.timeout", 0)
	v.SetDefault("translation.cache.enabled", false)
	v.SetDefault("translation.cache.addr", "localhost:6379")
	v.SetDefault("translation.cache.ttl", 24*time.Hour)
	v.SetDefault("metrics.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for deployment settings and secrets
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.dsn", "DATABASE_DSN", "DATABASE_URL")
	v.BindEnv("model.storage.bucket", "S3_BUCKET")
	v.BindEnv("model.storage.endpoint", "S3_ENDPOINT")
	v.BindEnv("model.storage.region", "AWS_REGION")
	v.BindEnv("model.storage.access_key", "AWS_ACCESS_KEY_ID")
	v.BindEnv("model.storage.secret_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("translation.cache.addr", "REDIS_ADDR")
	v.BindEnv("translation.cache.password", "REDIS_PASSWORD")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Model.Storage.ResolveEnvVars()
	if err := cfg.Model.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
