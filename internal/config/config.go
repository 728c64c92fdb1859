package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Admin      AdminConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AdminConfig holds the admin gate credential. The core never sees the
// plaintext, only this bcrypt hash.
type AdminConfig struct {
	PasswordHash string
}

// AttendanceConfig holds the clock window policy values as wall-clock
// "HH:MM:SS" strings. The canonical 21:00-22:00 / 10:00 windows are the
// defaults; LateAfter is the nominal shift start plus a 15 minute grace.
type AttendanceConfig struct {
	ClockInOpens     string
	ClockInCloses    string
	ClockOutDeadline string
	HalfDayBefore    string
	LateAfter        string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Admin gate configuration
	config.Admin = AdminConfig{
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// Attendance window configuration
	config.Attendance = AttendanceConfig{
		ClockInOpens:     getEnv("ATTENDANCE_CLOCK_IN_OPENS", "21:00:00"),
		ClockInCloses:    getEnv("ATTENDANCE_CLOCK_IN_CLOSES", "22:00:00"),
		ClockOutDeadline: getEnv("ATTENDANCE_CLOCK_OUT_DEADLINE", "10:00:00"),
		HalfDayBefore:    getEnv("ATTENDANCE_HALF_DAY_BEFORE", "09:00:00"),
		LateAfter:        getEnv("ATTENDANCE_LATE_AFTER", "21:15:00"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	for _, v := range []struct {
		key   string
		value string
	}{
		{"ATTENDANCE_CLOCK_IN_OPENS", c.Attendance.ClockInOpens},
		{"ATTENDANCE_CLOCK_IN_CLOSES", c.Attendance.ClockInCloses},
		{"ATTENDANCE_CLOCK_OUT_DEADLINE", c.Attendance.ClockOutDeadline},
		{"ATTENDANCE_HALF_DAY_BEFORE", c.Attendance.HalfDayBefore},
		{"ATTENDANCE_LATE_AFTER", c.Attendance.LateAfter},
	} {
		if _, err := time.Parse("15:04:05", v.value); err != nil {
			return fmt.Errorf("%s must be a HH:MM:SS time: %w", v.key, err)
		}
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
