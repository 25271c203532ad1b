package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type OrderFileConfig struct {
	OutputDir string
	EscapeXML bool
}

// PartyConfig is the default ordering party stamped on every order. The
// carrier documents never carry it; it identifies our own client downstream.
type PartyConfig struct {
	Name              string
	Address           string
	Postcode          string
	City              string
	Phone             string
	Email             string
	VATNumber         string
	ChamberOfCommerce string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	OrderFile   OrderFileConfig
	Party       PartyConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		OrderFile: OrderFileConfig{
			OutputDir: v.GetString("ORDERFILE_OUTPUT_DIR"),
			EscapeXML: v.GetBool("ORDERFILE_ESCAPE_XML"),
		},
		Party: PartyConfig{
			Name:              v.GetString("PARTY_NAME"),
			Address:           v.GetString("PARTY_ADDRESS"),
			Postcode:          v.GetString("PARTY_POSTCODE"),
			City:              v.GetString("PARTY_CITY"),
			Phone:             v.GetString("PARTY_PHONE"),
			Email:             v.GetString("PARTY_EMAIL"),
			VATNumber:         v.GetString("PARTY_VAT"),
			ChamberOfCommerce: v.GetString("PARTY_KVK"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.OrderFile.OutputDir == "" {
		cfg.OrderFile.OutputDir = "./orderfiles"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
