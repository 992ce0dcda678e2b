// internal/comissao/model.go
package comissao

import (
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPendente Status = "pendente"
	StatusParcial  Status = "parcial"
	StatusRecebido Status = "recebido"
)

func (s Status) Valido() bool {
	switch s {
	case StatusPendente, StatusParcial, StatusRecebido:
		return true
	}
	return false
}

// StatusValor acompanha revisões do preço da venda depois do contrato.
type StatusValor string

const (
	ValorAtualizado    StatusValor = "atualizado"
	ValorDesatualizado StatusValor = "desatualizado"
	ValorJustificado   StatusValor = "justificado"
)

// Comissao representa a comissão de uma venda de imóvel.
type Comissao struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	UsuarioID string  `gorm:"size:36;not null;index" json:"usuarioId"`
	VendaID   *string `gorm:"size:36;index" json:"vendaId"`
	Cliente   string  `gorm:"size:255;not null" json:"cliente"`
	Imovel    string  `gorm:"size:255" json:"imovel"`

	ValorVenda               decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorVenda"`
	ValorComissaoImobiliaria decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorComissaoImobiliaria"`
	ValorComissaoCorretor    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorComissaoCorretor"`

	DataContrato  time.Time  `json:"dataContrato"`
	DataVenda     time.Time  `gorm:"not null;index" json:"dataVenda"`
	DataPagamento *time.Time `json:"dataPagamento"`
	Status        Status     `gorm:"size:20;not null;default:'pendente';index" json:"status"`

	// Revisão de valor da venda (apenas armazenado)
	ValorVendaOriginal *decimal.Decimal `gorm:"type:numeric(14,2)" json:"valorVendaOriginal,omitempty"`
	ValorVendaAtual    *decimal.Decimal `gorm:"type:numeric(14,2)" json:"valorVendaAtual,omitempty"`
	DiferencaValor     *decimal.Decimal `gorm:"type:numeric(14,2)" json:"diferencaValor,omitempty"`
	StatusValor        StatusValor      `gorm:"size:20" json:"statusValor,omitempty"`
	Justificativa      string           `gorm:"type:text" json:"justificativa,omitempty"`

	Recebimentos []recebimento.Recebimento `gorm:"foreignKey:ComissaoID;constraint:OnDelete:CASCADE" json:"recebimentos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comissao) TableName() string { return "comissoes" }

func (c *Comissao) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria as tabelas de comissões e recebimentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comissao{}, &recebimento.Recebimento{})
}
