package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ambiente(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDoAmbiente(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr error
	}{
		{
			name: "defaults",
			vars: map[string]string{"JWT_SECRET": "segredo"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Porta)
				assert.Equal(t, uint(5432), cfg.DBPort)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.CorsOrigins)
				assert.True(t, cfg.UsaSQLite())
				assert.False(t, cfg.CookieSeguro)
			},
		},
		{
			name: "valores explicitos",
			vars: map[string]string{
				"JWT_SECRET":    "segredo",
				"PORTA":         "9090",
				"DB_HOST":       "db.local",
				"DB_PORT":       "6543",
				"CORS_ORIGINS":  "https://app.exemplo.com, https://admin.exemplo.com",
				"REDIS_ADDR":    "localhost:6379",
				"COOKIE_SECURE": "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Porta)
				assert.Equal(t, uint(6543), cfg.DBPort)
				assert.Equal(t, []string{"https://app.exemplo.com", "https://admin.exemplo.com"}, cfg.CorsOrigins)
				assert.Equal(t, "localhost:6379", cfg.RedisAddr)
				assert.False(t, cfg.UsaSQLite())
				assert.True(t, cfg.CookieSeguro)
			},
		},
		{
			name:    "sem segredo JWT",
			vars:    map[string]string{},
			wantErr: ErrJWTSecretAusente,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DoAmbiente(ambiente(tt.vars))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
