package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	// AdminPhones is the comma-separated allow-list of phones provisioned as admin.
	AdminPhones    []string `envconfig:"ADMIN_PHONES"`
	InternalAPIKey string   `envconfig:"INTERNAL_API_KEY"`

	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	RabbitMQ  RabbitMQConfig  `envconfig:"RABBITMQ"`
	Firebase  FirebaseConfig  `envconfig:"FIREBASE"`
	Upload    UploadConfig    `envconfig:"UPLOAD"`
	Expiry    ExpiryConfig    `envconfig:"EXPIRY"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}

type ServerConfig struct {
	Port         string        `default:"5000"`
	ReadTimeout  time.Duration `split_words:"true" default:"10s"`
	WriteTimeout time.Duration `split_words:"true" default:"15s"`
	IdleTimeout  time.Duration `split_words:"true" default:"60s"`
	// BaseURL is where internal consumers reach this service.
	BaseURL string `split_words:"true" default:"http://localhost:5000"`
}

type DatabaseConfig struct {
	Host            string        `default:"localhost"`
	Port            int           `default:"3306"`
	User            string        `default:"root"`
	Password        string
	Name            string        `default:"coupon_marketplace"`
	MaxOpenConns    int           `split_words:"true" default:"20"`
	MaxIdleConns    int           `split_words:"true" default:"10"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"1h"`
}

// RedisConfig is optional: an empty Host disables the brand cache.
type RedisConfig struct {
	Host     string
	Port     int `default:"6379"`
	Password string
	DB       int           `default:"0"`
	CacheTTL time.Duration `split_words:"true" default:"10m"`
}

// RabbitMQConfig is optional: an empty Host disables delayed expiration messages.
type RabbitMQConfig struct {
	Host     string
	Port     int    `default:"5672"`
	User     string `default:"guest"`
	Password string `default:"guest"`
}

type FirebaseConfig struct {
	ProjectID string        `split_words:"true"`
	CertsURL  string        `split_words:"true" default:"https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"`
	CertsTTL  time.Duration `split_words:"true" default:"1h"`
}

type UploadConfig struct {
	// Backend is "local" or "s3".
	Backend     string `default:"local"`
	Dir         string `default:"uploads"`
	MaxBytes    int64  `split_words:"true" default:"5242880"`
	S3Bucket    string `split_words:"true"`
	S3Region    string `split_words:"true" default:"us-east-1"`
	S3Endpoint  string `split_words:"true"`
	S3AccessKey string `split_words:"true"`
	S3SecretKey string `split_words:"true"`
}

type ExpiryConfig struct {
	SweepInterval time.Duration `split_words:"true" default:"1h"`
}

type RateLimitConfig struct {
	RPS   float64 `default:"20"`
	Burst int     `default:"40"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.AdminPhones = normalizePhones(cfg.AdminPhones)
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func normalizePhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
