// internal/meta/model.go
package meta

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MesAnual marca a meta do ano inteiro.
const MesAnual = 0

// Meta é o objetivo de vendas/comissão do corretor para um mês (ou ano, com Mes = 0).
type Meta struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	UsuarioID    string          `gorm:"size:36;not null;uniqueIndex:idx_meta_periodo" json:"usuarioId"`
	Mes          int             `gorm:"not null;uniqueIndex:idx_meta_periodo" json:"mes"`
	Ano          int             `gorm:"not null;uniqueIndex:idx_meta_periodo" json:"ano"`
	MetaVendas   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"metaVendas"`
	MetaComissao decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"metaComissao"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (m *Meta) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m Meta) Anual() bool { return m.Mes == MesAnual }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Meta{})
}
