package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`

	// Storage. DATABASE_URL may be "memory://" for a process-local store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Web session.
	JWTSecret           string `mapstructure:"JWT_SECRET"`
	JWTTTLHours         int    `mapstructure:"JWT_TTL_HOURS"`
	CookieSecure        bool   `mapstructure:"COOKIE_SECURE"`
	AdminEmail          string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword       string `mapstructure:"ADMIN_PASSWORD"`
	CompanyTempPassword string `mapstructure:"COMPANY_TEMP_PASSWORD"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Chatbot.
	ChatSessionStore string `mapstructure:"CHAT_SESSION_STORE"`
	// Zero keeps Redis chat sessions until the guest resets them.
	ChatSessionTTLHours int    `mapstructure:"CHAT_SESSION_TTL_HOURS"`
	ChatbotBrand        string `mapstructure:"CHATBOT_BRAND"`
	ChatbotCompanyID    string `mapstructure:"CHATBOT_COMPANY_ID"`
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string `mapstructure:"GEMINI_MODEL"`

	// WhatsApp Cloud API.
	WhatsAppAPIURL           string `mapstructure:"WHATSAPP_API_URL"`
	WhatsAppAccessToken      string `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID    string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppVerifyToken      string `mapstructure:"WHATSAPP_WEBHOOK_VERIFY_TOKEN"`
	WhatsAppTemplateLanguage string `mapstructure:"WHATSAPP_TEMPLATE_LANGUAGE"`

	// Uploads.
	UploadDriver        string `mapstructure:"UPLOAD_DRIVER"`
	UploadDir           string `mapstructure:"UPLOAD_DIR"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Outbound mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// Cron spec for the next-day trip reminder job.
	ReminderCron string `mapstructure:"REMINDER_CRON"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, skipping")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate rejects settings that are only acceptable outside production.
func (c Config) Validate() error {
	if c.Env == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")

	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tourdesk")

	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_TTL_HOURS", 12)
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("COMPANY_TEMP_PASSWORD", "12345678")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)

	viper.SetDefault("CHAT_SESSION_STORE", "mongo")
	viper.SetDefault("CHAT_SESSION_TTL_HOURS", 0)
	viper.SetDefault("CHATBOT_BRAND", "Royal Rams Tourism")
	viper.SetDefault("CHATBOT_COMPANY_ID", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")

	viper.SetDefault("WHATSAPP_API_URL", "https://graph.facebook.com/v19.0")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_WEBHOOK_VERIFY_TOKEN", "")
	viper.SetDefault("WHATSAPP_TEMPLATE_LANGUAGE", "en_US")

	viper.SetDefault("UPLOAD_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")

	viper.SetDefault("REMINDER_CRON", "0 18 * * *")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMemoryStore reports whether records live in the process-local store.
func UsesMemoryStore() bool {
	return AppConfig.DatabaseURL == "memory://"
}
