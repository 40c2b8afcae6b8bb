package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AuditDBPath string
	ModelPath   string
	CORSOrigins []string
	Database    DatabaseConfig
	LLM         LLMConfig
	Search      SearchConfig
	Mail        MailConfig
	Redis       RedisConfig
}

type DatabaseConfig struct {
	Driver   string // "mysql", "sqlserver" or "sqlite3"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite3 only
	PoolSize int
	Encrypt  bool // sqlserver only
}

type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type SearchConfig struct {
	MaxAttempts int
	Timeout     time.Duration
}

type MailConfig struct {
	SMTPServer     string
	SMTPPort       string
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
}

// Enabled reports whether enough of the SMTP settings are present to send mail.
func (m MailConfig) Enabled() bool {
	return m.SMTPServer != "" && m.SenderEmail != "" && m.RecipientEmail != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func GetConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	driver := getEnv("DB_DRIVER", "mysql")

	return Config{
		Port:        getEnv("PORT", "5000"),
		AuditDBPath: getEnv("AUDIT_DB_PATH", "./data/audit"),
		ModelPath:   getEnv("MODEL_PATH", "./models/salary_model.json"),
		CORSOrigins: getListEnv("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		Database: DatabaseConfig{
			Driver:   driver,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", defaultPort(driver)),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", "root"),
			Name:     getEnv("DB_NAME", "company_db"),
			Path:     getEnv("DB_PATH", "./data/company.db"),
			PoolSize: getIntEnv("DB_POOL_SIZE", 5),
			Encrypt:  getEnv("DB_ENCRYPT", "false") == "true",
		},
		LLM: LLMConfig{
			BaseURL: getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
			APIKey:  getEnv("LLM_API_KEY", "ollama"),
			Model:   getEnv("LLM_MODEL", "qwen2.5-coder:1.5b"),
			Timeout: getDurationEnv("LLM_TIMEOUT", 120*time.Second),
		},
		Search: SearchConfig{
			MaxAttempts: getIntEnv("SEARCH_MAX_ATTEMPTS", 2),
			Timeout:     getDurationEnv("SEARCH_TIMEOUT", 60*time.Second),
		},
		Mail: MailConfig{
			SMTPServer:     getEnv("SMTP_SERVER", ""),
			SMTPPort:       getEnv("SMTP_PORT", "587"),
			SenderEmail:    getEnv("SENDER_EMAIL", ""),
			SenderPassword: getEnv("SENDER_PASSWORD", ""),
			RecipientEmail: getEnv("RECIPIENT_EMAIL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Username: getEnv("REDIS_USERNAME", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
	}
}

func defaultPort(driver string) string {
	if driver == "sqlserver" {
		return "1433"
	}
	return "3306"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Warning: invalid value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid duration for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func getListEnv(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
