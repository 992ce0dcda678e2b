package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne tudo o que a API lê do ambiente.
type Config struct {
	Porta       int
	DatabaseURL string

	// Resolução estilo AWS (usada quando DATABASE_URL está vazio)
	DBHost     string
	DBPort     uint
	DBName     string
	DBSecretID string

	JWTSecret    string
	CookieSeguro bool
	RedisAddr    string
	CorsOrigins  []string
	LogLevel     string
}

var ErrJWTSecretAusente = errors.New("JWT_SECRET não definida")

// Carregar lê o .env (se existir) e depois as variáveis de ambiente.
func Carregar() (*Config, error) {
	_ = godotenv.Load()
	return DoAmbiente(os.Getenv)
}

// DoAmbiente monta a Config a partir de uma função de lookup; facilita testes.
func DoAmbiente(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Porta:       8080,
		DatabaseURL: getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST"),
		DBPort:      5432,
		DBName:      getenv("DB_NAME"),
		DBSecretID:  getenv("DB_SECRET_ID"),
		JWTSecret:   getenv("JWT_SECRET"),
		RedisAddr:   getenv("REDIS_ADDR"),
		LogLevel:    getenv("LOG_LEVEL"),
	}

	// false em localhost, true atrás de HTTPS
	cfg.CookieSeguro = getenv("COOKIE_SECURE") == "true"
	if p, err := strconv.Atoi(getenv("PORTA")); err == nil && p > 0 {
		cfg.Porta = p
	}
	if p, err := strconv.ParseUint(getenv("DB_PORT"), 10, 32); err == nil {
		cfg.DBPort = uint(p)
	}
	if origins := getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CorsOrigins = append(cfg.CorsOrigins, o)
			}
		}
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"http://localhost:3000"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.JWTSecret == "" {
		return nil, ErrJWTSecretAusente
	}
	return cfg, nil
}

// UsaSQLite indica que nenhum Postgres foi configurado.
func (c *Config) UsaSQLite() bool {
	return c.DatabaseURL == "" && c.DBHost == ""
}
