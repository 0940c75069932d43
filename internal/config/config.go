package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidConfiguration     = errors.New("invalid configuration")
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Twilio   TwilioConfig
	Server   ServerConfig
	Dispatch DispatchConfig
	Survey   SurveyConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"pgx"`
	Host        string `env:"DB_HOST"`
	Username    string `env:"DB_USERNAME"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME"`
	SQLitePath  string `env:"DB_SQLITE_PATH" envDefault:"survey.db"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// TwilioConfig holds the telephony provider credentials. They are not
// required at boot; call placement checks them before dialing.
type TwilioConfig struct {
	AccountSID       string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken        string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber       string `env:"TWILIO_FROM_NUMBER"`
	ValidateWebhooks bool   `env:"TWILIO_VALIDATE_WEBHOOKS" envDefault:"false"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int      `env:"SERVER_PORT" envDefault:"8080"`
	PublicBaseURL  string   `env:"PUBLIC_BASE_URL"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// DispatchConfig controls the campaign launch worker pool
type DispatchConfig struct {
	Workers int           `env:"LAUNCH_WORKERS" envDefault:"4"`
	Timeout time.Duration `env:"LAUNCH_TIMEOUT" envDefault:"2m"`
}

// SurveyConfig controls the generated voice script
type SurveyConfig struct {
	Language      string `env:"SURVEY_LANGUAGE" envDefault:"es-ES"`
	GatherTimeout int    `env:"SURVEY_GATHER_TIMEOUT" envDefault:"8"`
}

// Load reads and validates all environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements that tags cannot express
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		required := []struct{ key, value string }{
			{"DB_HOST", c.Database.Host},
			{"DB_USERNAME", c.Database.Username},
			{"DB_PASSWORD", c.Database.Password},
			{"DB_NAME", c.Database.Name},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("%s is not set: %w", r.key, ErrEmptyEnvironmentVariable)
			}
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is not set: %w", ErrEmptyEnvironmentVariable)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: %w", c.Database.Driver, ErrInvalidConfiguration)
	}

	if _, err := language.Parse(c.Survey.Language); err != nil {
		return fmt.Errorf("SURVEY_LANGUAGE %q is not a valid language tag: %w", c.Survey.Language, ErrInvalidConfiguration)
	}
	if c.Survey.GatherTimeout <= 0 {
		return fmt.Errorf("SURVEY_GATHER_TIMEOUT must be positive: %w", ErrInvalidConfiguration)
	}
	if c.Dispatch.Workers <= 0 {
		return fmt.Errorf("LAUNCH_WORKERS must be positive: %w", ErrInvalidConfiguration)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be positive: %w", ErrInvalidConfiguration)
	}
	return nil
}

// DataSourceName returns the connection string for the configured driver
func (c *DatabaseConfig) DataSourceName() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return c.ConnectionString()
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// MissingCredentials lists the Twilio settings that are still empty
func (c *TwilioConfig) MissingCredentials() []string {
	var missing []string
	if c.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.FromNumber == "" {
		missing = append(missing, "TWILIO_FROM_NUMBER")
	}
	return missing
}
