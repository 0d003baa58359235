package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Venue    *VenueConfig    `mapstructure:"venue"`
	Log      *LogConfig      `mapstructure:"log"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the key/value connection string understood by pgx.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type VenueConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the YAML file at path and overlays environment variables on top of it,
// e.g. API_PORT overrides api.port.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("sqlite.path", "./data/party-venue.db")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("venue.timezone", "Europe/Zagreb")
	v.SetDefault("log.level", "info")

	return v
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return conf, nil
}

var errUnknownTimezone = errors.New("must be a valid IANA time zone")

func (c *AppConfig) Validate() error {
	if c.API == nil || c.Gin == nil || c.Database == nil || c.SQLite == nil ||
		c.Postgres == nil || c.Venue == nil || c.Log == nil {
		return errors.New("incomplete configuration")
	}

	err := validation.ValidateStruct(c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.Environment, validation.Required, validation.In("development", "production", "test")),
	)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	err = validation.ValidateStruct(c.Database,
		validation.Field(&c.Database.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
	)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Database.Driver == DriverSQLite {
		if err = validation.Validate(c.SQLite.Path, validation.Required); err != nil {
			return fmt.Errorf("sqlite: path: %w", err)
		}
	}

	err = validation.ValidateStruct(c.Venue,
		validation.Field(&c.Venue.Timezone, validation.Required, validation.By(loadableTimezone)),
	)
	if err != nil {
		return fmt.Errorf("venue: %w", err)
	}

	return validation.ValidateStruct(c.Log,
		validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
	)
}

func loadableTimezone(value interface{}) error {
	tz, _ := value.(string)
	if _, err := time.LoadLocation(tz); err != nil {
		return errUnknownTimezone
	}

	return nil
}
