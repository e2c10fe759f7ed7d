package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration, read from the environment
type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Log      Log      `yaml:"log"`
	Postgres Postgres `yaml:"postgres"`
	Session  Session  `yaml:"session"`
	Seed     Seed     `yaml:"seed"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"airws"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"airws"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB" env-default:"airlinews"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

// DSN returns the postgres connection string
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

type Session struct {
	TTLHours int `yaml:"ttl_hours" env:"SESSION_TTL_HOURS" env-default:"24"`
}

// Seed holds the bootstrap accounts created at startup
type Seed struct {
	AdminEmail       string `yaml:"admin_email" env:"SEED_ADMIN_EMAIL" env-default:"admin@airws.com"`
	AdminPassword    string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD" env-default:"password"`
	CustomerEmail    string `yaml:"customer_email" env:"SEED_CUSTOMER_EMAIL" env-default:"user@airws.com"`
	CustomerPassword string `yaml:"customer_password" env:"SEED_CUSTOMER_PASSWORD" env-default:"password"`
}

// New reads the configuration from the environment
func New() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
