package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig holds the postgres connection settings shared by the sql and gorm
// handles.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the key=value connection string understood by lib/pq and the
// gorm postgres driver.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether outgoing mail is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

type Config struct {
	DB                  DBConfig
	ServerPort          string
	JWTSecret           string
	CatalogPath         string
	ExportDir           string
	ExportRetention     time.Duration
	ExportPurgeSchedule string
	SMTP                SMTPConfig
	CORSOrigins         []string
	GormLogLevel        string
	ProductPrefix       string
}

func defaults() *Config {
	return &Config{
		DB: DBConfig{
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		ServerPort:          "9000",
		ExportDir:           "./exports",
		ExportRetention:     72 * time.Hour,
		ExportPurgeSchedule: "30 2 * * *",
		SMTP:                SMTPConfig{Port: 587},
		CORSOrigins:         []string{"http://localhost:3000"},
		GormLogLevel:        "warn",
		ProductPrefix:       "PipeTrak",
	}
}

// Load reads an optional .env file and then the process environment.
// Malformed values are returned as an error rather than aborting, so the
// caller decides how to fail.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	var errs []error

	envOverride(&cfg.DB.Host, "DB_HOST")
	envOverride(&cfg.DB.Port, "DB_PORT")
	envOverride(&cfg.DB.User, "DB_USER")
	envOverride(&cfg.DB.Password, "DB_PASSWORD")
	envOverride(&cfg.DB.Name, "DB_NAME")
	envOverride(&cfg.DB.SSLMode, "DB_SSLMODE")
	envOverride(&cfg.ServerPort, "PORT")
	envOverride(&cfg.JWTSecret, "JWT_SECRET")
	envOverride(&cfg.CatalogPath, "CATALOG_PATH")
	envOverride(&cfg.ExportDir, "EXPORT_DIR")
	envOverride(&cfg.ExportPurgeSchedule, "EXPORT_PURGE_SCHEDULE")
	envOverride(&cfg.SMTP.Host, "SMTP_HOST")
	envOverride(&cfg.SMTP.User, "SMTP_USER")
	envOverride(&cfg.SMTP.Password, "SMTP_PASSWORD")
	envOverride(&cfg.SMTP.From, "SMTP_FROM")
	envOverride(&cfg.GormLogLevel, "GORM_LOG_LEVEL")
	envOverride(&cfg.ProductPrefix, "PRODUCT_PREFIX")

	errs = append(errs, envOverrideInt(&cfg.SMTP.Port, "SMTP_PORT"))

	hours := int(cfg.ExportRetention / time.Hour)
	errs = append(errs, envOverrideInt(&hours, "EXPORT_RETENTION_HOURS"))
	cfg.ExportRetention = time.Duration(hours) * time.Hour

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	errs = append(errs, cfg.validate())
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.ExportRetention <= 0 {
		errs = append(errs, errors.New("EXPORT_RETENTION_HOURS must be positive"))
	}
	switch strings.ToLower(c.GormLogLevel) {
	case "silent", "error", "warn", "info":
	default:
		errs = append(errs, fmt.Errorf("GORM_LOG_LEVEL %q must be one of silent, error, warn, info", c.GormLogLevel))
	}
	if strings.TrimSpace(c.ProductPrefix) == "" {
		errs = append(errs, errors.New("PRODUCT_PREFIX must not be blank"))
	}
	return errors.Join(errs...)
}

// RequireServer checks the settings only the HTTP server needs.
func (c *Config) RequireServer() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME is not set"))
	}
	if c.DB.User == "" {
		errs = append(errs, errors.New("DB_USER is not set"))
	}
	return errors.Join(errs...)
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	val := os.Getenv(envKey)
	if val == "" {
		return nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
	}
	*field = parsed
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
