package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DBConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type SuperAdminConfig struct {
	Name     string
	Email    string
	Password string
}

// Enabled reports whether the initial super admin should be seeded.
func (s SuperAdminConfig) Enabled() bool {
	return s.Email != "" && s.Password != ""
}

type RateLimitConfig struct {
	Login  int
	Signup int
	Window time.Duration
}

type Config struct {
	Env                 string
	HTTP                HTTPConfig
	DB                  DBConfig
	RedisAddr           string
	JWTSecret           string
	TokenTTL            time.Duration
	AdminEmailDomain    string
	EmployeeEmailDomain string
	SuperAdmin          SuperAdminConfig
	RateLimit           RateLimitConfig
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

var defaults = map[string]any{
	"APP_ENV":               "development",
	"PORT":                  "3000",
	"DB_HOST":               "localhost",
	"DB_PORT":               "5432",
	"DB_SSLMODE":            "disable",
	"DB_MAX_RETRIES":        5,
	"REDIS_ADDR":            "",
	"TOKEN_TTL":             "1h",
	"ADMIN_EMAIL_DOMAIN":    "spanadmin.com",
	"EMPLOYEE_EMAIL_DOMAIN": "spanemployee.com",
	"SUPER_ADMIN_NAME":      "Super Admin",
	"LOGIN_RATE_LIMIT":      5,
	"SIGNUP_RATE_LIMIT":     3,
	"RATE_LIMIT_WINDOW":     "10m",
	"HTTP_READ_TIMEOUT":     "5s",
	"HTTP_WRITE_TIMEOUT":    "10s",
	"HTTP_IDLE_TIMEOUT":     "60s",
}

// Load reads .env files (missing ones are ignored) and then the process
// environment, which always wins.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Port:         v.GetString("PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		},
		DB: DBConfig{
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		RedisAddr:           strings.TrimSpace(v.GetString("REDIS_ADDR")),
		JWTSecret:           v.GetString("JWT_SECRET"),
		TokenTTL:            v.GetDuration("TOKEN_TTL"),
		AdminEmailDomain:    strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL_DOMAIN"))),
		EmployeeEmailDomain: strings.ToLower(strings.TrimSpace(v.GetString("EMPLOYEE_EMAIL_DOMAIN"))),
		SuperAdmin: SuperAdminConfig{
			Name:     v.GetString("SUPER_ADMIN_NAME"),
			Email:    strings.TrimSpace(v.GetString("SUPER_ADMIN_EMAIL")),
			Password: v.GetString("SUPER_ADMIN_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Login:  v.GetInt("LOGIN_RATE_LIMIT"),
			Signup: v.GetInt("SIGNUP_RATE_LIMIT"),
			Window: v.GetDuration("RATE_LIMIT_WINDOW"),
		},
	}

	return cfg, cfg.Validate()
}

// Validate lists every missing or invalid key at once.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DB.User == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if c.DB.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_RETRIES must be at least 1, got %d", c.DB.MaxRetries))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be a positive duration"))
	}
	if c.RateLimit.Login < 1 || c.RateLimit.Signup < 1 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT and SIGNUP_RATE_LIMIT must be at least 1"))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be a positive duration"))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string for gorm.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}
