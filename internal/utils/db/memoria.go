package db

import (
	"fmt"

	"gorm.io/gorm"
)

// AbrirMemoria abre um SQLite em memória isolado pelo nome; usado pelos testes
// de repositório. Uma única conexão mantém o banco vivo e evita travas de cache
// compartilhado.
func AbrirMemoria(nome string) (*gorm.DB, error) {
	database, err := AbrirSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", nome))
	if err != nil {
		return nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return database, nil
}
