package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}
}

// ConnectDataBase abre o Postgres com credenciais vindas do ambiente ou do Secrets Manager.
func ConnectDataBase(port uint, host, dbname, secretID string, sslDisabled bool) (*gorm.DB, error) {
	var sslMode string
	if sslDisabled {
		sslMode = " sslmode=disable"
	}
	username, password, err := retrieveCredentials(secretID)
	if err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s", host, username, password, dbname, port, sslMode)
	return AbrirPostgres(dsn)
}

// AbrirPostgres abre uma conexão a partir de um DSN completo.
func AbrirPostgres(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no postgres: %w", err)
	}
	return database, nil
}

// AbrirSQLite abre um arquivo SQLite (ou um DSN "file:...?mode=memory").
func AbrirSQLite(caminho string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(caminho), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir sqlite %s: %w", caminho, err)
	}
	return database, nil
}
