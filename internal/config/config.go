package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Printer   PrinterConfig
	Email     EmailConfig
	Receipt   ReceiptConfig
	Admin     AdminConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// RedisConfig is optional. With an empty Addr export guards stay in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PrinterConfig struct {
	Type      string // usb, network or none
	USBPath   string
	Address   string
	DotsWidth int // 384 for 58mm paper, 576 for 80mm
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// ReceiptConfig controls how receipt cards are rendered and exported.
type ReceiptConfig struct {
	FontRegular    string
	FontBold       string
	FontItalic     string
	FontBoldItalic string
	PixelRatio     float64
	Background     string
	JPEGQuality    int
	PDFMargin      float64
	SettleDelay    time.Duration
	OverridesPath  string
	NamesPath      string
	LogoPath       string
	GuardTTL       time.Duration
}

// AdminConfig seeds the first administrator on an empty database.
// New accounts must use an address under UserEmailDomain when it is set.
type AdminConfig struct {
	Email           string
	Password        string
	Name            string
	UserEmailDomain string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "rasid-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "rasid")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_DOTS_WIDTH", 576)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM_NAME", "Arsh Adhyayan Kendra")
	viper.SetDefault("RECEIPT_PIXEL_RATIO", 3)
	viper.SetDefault("RECEIPT_BACKGROUND", "#fff8f0")
	viper.SetDefault("RECEIPT_JPEG_QUALITY", 95)
	viper.SetDefault("RECEIPT_PDF_MARGIN_MM", 15)
	viper.SetDefault("RECEIPT_PRINT_SETTLE_MS", 800)
	viper.SetDefault("RECEIPT_GUARD_TTL_SECONDS", 60)
	viper.SetDefault("USER_EMAIL_DOMAIN", "aakb.org.in")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			DotsWidth: viper.GetInt("PRINTER_DOTS_WIDTH"),
		},
		Email: EmailConfig{
			SMTPHost:     viper.GetString("SMTP_HOST"),
			SMTPPort:     viper.GetInt("SMTP_PORT"),
			SMTPUsername: viper.GetString("SMTP_USERNAME"),
			SMTPPassword: viper.GetString("SMTP_PASSWORD"),
			FromName:     viper.GetString("SMTP_FROM_NAME"),
			FromEmail:    viper.GetString("SMTP_FROM_EMAIL"),
		},
		Receipt: ReceiptConfig{
			FontRegular:    viper.GetString("RECEIPT_FONT_REGULAR"),
			FontBold:       viper.GetString("RECEIPT_FONT_BOLD"),
			FontItalic:     viper.GetString("RECEIPT_FONT_ITALIC"),
			FontBoldItalic: viper.GetString("RECEIPT_FONT_BOLD_ITALIC"),
			PixelRatio:     viper.GetFloat64("RECEIPT_PIXEL_RATIO"),
			Background:     viper.GetString("RECEIPT_BACKGROUND"),
			JPEGQuality:    viper.GetInt("RECEIPT_JPEG_QUALITY"),
			PDFMargin:      viper.GetFloat64("RECEIPT_PDF_MARGIN_MM"),
			SettleDelay:    time.Duration(viper.GetInt("RECEIPT_PRINT_SETTLE_MS")) * time.Millisecond,
			OverridesPath:  viper.GetString("RECEIPT_OVERRIDES_PATH"),
			NamesPath:      viper.GetString("RECEIPT_NAMES_PATH"),
			LogoPath:       viper.GetString("RECEIPT_LOGO_PATH"),
			GuardTTL:       time.Duration(viper.GetInt("RECEIPT_GUARD_TTL_SECONDS")) * time.Second,
		},
		Admin: AdminConfig{
			Email:           viper.GetString("ADMIN_EMAIL"),
			Password:        viper.GetString("ADMIN_PASSWORD"),
			Name:            viper.GetString("ADMIN_NAME"),
			UserEmailDomain: viper.GetString("USER_EMAIL_DOMAIN"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
