package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AlertConfig holds everything the low-stock notifier needs: SMTP delivery
// settings and the minimum number of low-stock ingredients that warrants an
// alert email.
type AlertConfig struct {
	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
	EmailTo   string
	Threshold int
}

// IsConfigured reports whether email delivery can actually happen.
func (a AlertConfig) IsConfigured() bool {
	return a.EmailUser != "" && a.EmailPass != "" && a.EmailTo != ""
}

func LoadAlertConfig() AlertConfig {
	return AlertConfig{
		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvInt("SMTP_PORT", 587),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
		EmailTo:   os.Getenv("EMAIL_TO"),
		Threshold: getEnvInt("ALERT_THRESHOLD", 3),
	}
}

// BusinessLocation returns the fixed timezone orders are stamped in. The
// offset is configurable because deployments may not run in the business's
// own timezone; the default is UTC-5 (Bogotá, no DST).
func BusinessLocation() *time.Location {
	offsetHours := getEnvInt("BUSINESS_TZ_OFFSET_HOURS", -5)
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return time.FixedZone(name, offsetHours*3600)
}

// InitDB opens the database connection. DB_DRIVER selects mysql (default) or
// sqlite; sqlite keeps local development free of a database server.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "mysql")

	switch driver {
	case "sqlite":
		path := getEnv("DB_PATH", "kitchify.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getEnv("DB_USER", "root"),
				os.Getenv("DB_PASS"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "kitchify"),
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
