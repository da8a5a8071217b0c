package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

type Config struct {
	Port string

	DatabaseURL string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPass      string
	DbName      string
	DbSSLMode   string

	JWTSecret      string
	AccessTokenTTL string

	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	AITimeout       string
	AIMaxInputChars int

	CORSAllowedOrigin string

	StorageDriver string
	UploadDir     string
	MaxUploadMB   int

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool

	Log      string
	LogLevel string
	LogDir   string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует, чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom делает то же с явным путём к .env. Отсутствующий файл не ошибка.
func LoadConfigFrom(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	maxUpload, err := strconv.Atoi(def(os.Getenv("MAX_UPLOAD_MB"), "10"))
	if err != nil || maxUpload <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q", os.Getenv("MAX_UPLOAD_MB"))
	}
	maxChars, err := strconv.Atoi(def(os.Getenv("AI_MAX_INPUT_CHARS"), "30000"))
	if err != nil || maxChars <= 0 {
		return nil, fmt.Errorf("invalid AI_MAX_INPUT_CHARS %q", os.Getenv("AI_MAX_INPUT_CHARS"))
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "4000"),

		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DbHost:      os.Getenv("DB_HOST"),
		DbPort:      def(os.Getenv("DB_PORT"), "5432"),
		DbUser:      os.Getenv("DB_USER"),
		DbPass:      os.Getenv("DB_PASSWORD"),
		DbName:      os.Getenv("DB_NAME"),
		DbSSLMode:   def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AccessTokenTTL: def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "24h"),

		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     def(os.Getenv("GEMINI_MODEL"), "gemini-1.5-flash"),
		GeminiBaseURL:   def(os.Getenv("GEMINI_BASE_URL"), "https://generativelanguage.googleapis.com/v1beta"),
		AITimeout:       def(os.Getenv("AI_TIMEOUT"), "60s"),
		AIMaxInputChars: maxChars,

		CORSAllowedOrigin: strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGIN")),

		StorageDriver: strings.ToLower(def(os.Getenv("STORAGE_DRIVER"), StorageDisk)),
		UploadDir:     def(os.Getenv("UPLOAD_DIR"), "uploads"),
		MaxUploadMB:   maxUpload,

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    def(os.Getenv("S3_REGION"), "us-east-1"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:    strings.ToLower(def(os.Getenv("S3_USE_SSL"), "true")) == "true",

		Log:      strings.ToLower(os.Getenv("LOG")),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку, если без значения сервер стартовать не должен.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DatabaseURL == "" && (c.DbHost == "" || c.DbUser == "" || c.DbName == "") {
		return nil, fmt.Errorf("incomplete DB config (DATABASE_URL or DB_HOST/DB_USER/DB_NAME)")
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if c.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if c.CORSAllowedOrigin == "" {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGIN is not set")
	}
	if _, err := time.ParseDuration(c.AccessTokenTTL); err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRY: %w", err)
	}
	if _, err := time.ParseDuration(c.AITimeout); err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}

	switch c.StorageDriver {
	case StorageDisk:
		if strings.TrimSpace(c.UploadDir) == "" {
			return nil, fmt.Errorf("UPLOAD_DIR is not set")
		}
	case StorageS3:
		if c.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
		if c.S3AccessKey == "" || c.S3SecretKey == "" {
			warnings = append(warnings, "S3 static credentials are not set, falling back to the default AWS chain")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if len(c.JWTSecret) < 32 {
		warnings = append(warnings, "JWT_SECRET is shorter than 32 bytes")
	}

	return warnings, nil
}

func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func (c *Config) AITimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.AITimeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	if c.DatabaseURL != "" {
		return "<DATABASE_URL>"
	}
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
