// internal/venda/model.go
package venda

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Venda registra o fechamento de um imóvel.
type Venda struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UsuarioID   string          `gorm:"size:36;not null;index" json:"usuarioId"`
	ClienteID   *string         `gorm:"size:36;index" json:"clienteId"`
	ClienteNome string          `gorm:"size:255" json:"clienteNome"`
	Imovel      string          `gorm:"size:255;not null" json:"imovel"`
	Valor       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valor"`
	DataVenda   time.Time       `gorm:"not null" json:"dataVenda"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (v *Venda) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
