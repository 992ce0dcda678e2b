// internal/recebimento/model.go
package recebimento

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Observação gravada nos recebimentos criados pela quitação automática.
const ObservacaoQuitacao = "Quitação automática"

// Recebimento representa um pagamento (parcial ou total) de uma comissão.
type Recebimento struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	ComissaoID string          `gorm:"size:36;not null;index" json:"comissaoId"`
	UsuarioID  string          `gorm:"size:36;not null;index" json:"usuarioId"`
	Valor      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	Data       time.Time       `gorm:"not null" json:"data"`
	Observacao string          `gorm:"size:255" json:"observacao,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (Recebimento) TableName() string { return "recebimentos" }

func (r *Recebimento) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recebimento{})
}

// Somar devolve a soma simples dos valores recebidos.
func Somar(recs []Recebimento) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.Valor)
	}
	return total
}
