package db

import (
	"os"

	"github.com/KromaEnergia/crm-comissoes/internal/config"
	"gorm.io/gorm"
)

const arquivoSQLite = "crm.db"

// GetDB escolhe o banco conforme a configuração:
// DATABASE_URL > DB_HOST (+ Secrets Manager) > arquivo SQLite local.
func GetDB(cfg *config.Config) (*gorm.DB, error) {
	switch {
	case cfg.DatabaseURL != "":
		return AbrirPostgres(cfg.DatabaseURL)
	case cfg.DBHost != "":
		sslDisabled := os.Getenv("DB_SSL_MODE_DISABLE") == "true"
		return ConnectDataBase(cfg.DBPort, cfg.DBHost, cfg.DBName, cfg.DBSecretID, sslDisabled)
	default:
		return AbrirSQLite(arquivoSQLite)
	}
}
