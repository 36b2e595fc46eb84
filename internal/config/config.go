package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища черновиков
const (
	DraftBackendRedis    = "redis"
	DraftBackendPostgres = "postgres"
	DraftBackendFile     = "file"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Draft storage
	DraftBackend   string        `env:"DRAFT_BACKEND" envDefault:"redis"`
	DraftKeyPrefix string        `env:"DRAFT_KEY_PREFIX" envDefault:"report_draft"`
	DraftDir       string        `env:"DRAFT_DIR" envDefault:"./data/drafts"`
	DraftTTL       time.Duration `env:"DRAFT_TTL" envDefault:"0"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	AttachmentDir  string        `env:"ATTACHMENT_DIR" envDefault:"./data/attachments"`
	// YAML-справочник городов и барангаев, пусто - адрес не сверяется
	AddressDirectoryFile string `env:"ADDRESS_DIRECTORY_FILE"`
	// Мастер без обращений дольше SESSION_IDLE_TTL выгружается из памяти, 0 - никогда
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Report backend
	ReportAPIURL      string        `env:"REPORT_API_URL"`
	ReportAPIToken    string        `env:"REPORT_API_TOKEN"`
	ReportAPITimeout  time.Duration `env:"REPORT_API_TIMEOUT" envDefault:"30s"`
	SubmitMaxAttempts int           `env:"SUBMIT_MAX_ATTEMPTS" envDefault:"3"`
	SubmitBaseDelay   time.Duration `env:"SUBMIT_BASE_DELAY" envDefault:"1s"`

	// Точка поиска участков, если у происшествия нет координат
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"121.0509"`
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"14.5176"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		DraftBackend:         strings.ToLower(getEnv("DRAFT_BACKEND", DraftBackendRedis)),
		DraftKeyPrefix:       getEnv("DRAFT_KEY_PREFIX", "report_draft"),
		DraftDir:             getEnv("DRAFT_DIR", "./data/drafts"),
		DraftTTL:             getEnvAsDuration("DRAFT_TTL", 0),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		AttachmentDir:        getEnv("ATTACHMENT_DIR", "./data/attachments"),
		SessionIdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),
		AddressDirectoryFile: os.Getenv("ADDRESS_DIRECTORY_FILE"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		ReportAPIURL:         os.Getenv("REPORT_API_URL"),
		ReportAPIToken:       os.Getenv("REPORT_API_TOKEN"),
		ReportAPITimeout:     getEnvAsDuration("REPORT_API_TIMEOUT", 30*time.Second),
		SubmitMaxAttempts:    getEnvAsInt("SUBMIT_MAX_ATTEMPTS", 3),
		SubmitBaseDelay:      getEnvAsDuration("SUBMIT_BASE_DELAY", time.Second),
		DefaultLongitude:     getEnvAsFloat("DEFAULT_LONGITUDE", 121.0509),
		DefaultLatitude:      getEnvAsFloat("DEFAULT_LATITUDE", 14.5176),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DraftBackend {
	case DraftBackendRedis, DraftBackendFile:
	case DraftBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the postgres draft backend")
		}
	default:
		return fmt.Errorf("unknown DRAFT_BACKEND %q", c.DraftBackend)
	}
	if c.ReportAPIURL == "" {
		return fmt.Errorf("REPORT_API_URL environment variable is required")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
