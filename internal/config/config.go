package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const (
	DriverMemory    = "memory"
	DriverPostgres  = "postgres"
	DriverPostgREST = "postgrest"
)

type Config struct {
	App   AppConfig
	Log   LogConfig
	Store StoreConfig
}

type AppConfig struct {
	Name string `validate:"required"`
	// Env=development habilita el stack trace en las respuestas de error.
	Env  string `validate:"required,oneof=development production test"`
	Port string `validate:"required,numeric"`
}

type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn warning error"`
	Format string `validate:"omitempty,oneof=text json"`
}

type StoreConfig struct {
	Driver string `validate:"required,oneof=memory postgres postgrest"`

	DSN         string `validate:"required_if=Driver postgres"`
	AutoMigrate bool

	SupabaseURL string `validate:"required_if=Driver postgrest"`
	SupabaseKey string `validate:"required_if=Driver postgrest"`

	Timeout    time.Duration `validate:"gte=0"`
	MaxRetries int           `validate:"gte=0,lte=10"`
}

func (c Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// Load lee configuración desde env (y un .env opcional en dir actual).
// Las variables se leen sin prefijo: PORT, APP_ENV, DB_DSN, etc.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Defaults; también registran las keys para que AutomaticEnv las resuelva.
	v.SetDefault("APP_NAME", "pet-adoption-api")
	// Sin APP_ENV no hay stack en las respuestas: development hay que pedirlo.
	v.SetDefault("APP_ENV", EnvProduction)
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("STORE_DRIVER", "")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
	v.SetDefault("STORE_TIMEOUT", 10*time.Second)
	v.SetDefault("STORE_MAX_RETRIES", 2)
	return v
}

// FromViper arma y valida Config a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		App: AppConfig{
			Name: v.GetString("APP_NAME"),
			Env:  strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
			Port: strings.TrimSpace(v.GetString("PORT")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			DSN:         strings.TrimSpace(v.GetString("DB_DSN")),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			SupabaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("SUPABASE_URL")), "/"),
			SupabaseKey: strings.TrimSpace(v.GetString("SUPABASE_KEY")),
			Timeout:     v.GetDuration("STORE_TIMEOUT"),
			MaxRetries:  v.GetInt("STORE_MAX_RETRIES"),
		},
	}

	// Sin driver explícito: se infiere de lo que venga configurado.
	if cfg.Store.Driver == "" {
		switch {
		case cfg.Store.DSN != "":
			cfg.Store.Driver = DriverPostgres
		case cfg.Store.SupabaseURL != "":
			cfg.Store.Driver = DriverPostgREST
		default:
			cfg.Store.Driver = DriverMemory
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
