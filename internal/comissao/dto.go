// internal/comissao/dto.go
package comissao

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrValidacao = errors.New("dados inválidos")

// ComissaoDTO é o corpo de POST /comissoes e PUT /comissoes/{id}.
// Datas chegam como "2006-01-02" ou RFC3339.
type ComissaoDTO struct {
	VendaID                  *string         `json:"vendaId"`
	Cliente                  string          `json:"cliente"`
	Imovel                   string          `json:"imovel"`
	ValorVenda               decimal.Decimal `json:"valorVenda"`
	ValorComissaoImobiliaria decimal.Decimal `json:"valorComissaoImobiliaria"`
	ValorComissaoCorretor    decimal.Decimal `json:"valorComissaoCorretor"`
	DataContrato             string          `json:"dataContrato"`
	DataVenda                string          `json:"dataVenda"`

	ValorVendaOriginal *decimal.Decimal `json:"valorVendaOriginal"`
	ValorVendaAtual    *decimal.Decimal `json:"valorVendaAtual"`
	DiferencaValor     *decimal.Decimal `json:"diferencaValor"`
	StatusValor        StatusValor      `json:"statusValor"`
	Justificativa      string           `json:"justificativa"`
}

// ParseData aceita "2006-01-02" ou RFC3339.
func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data '%s' fora do formato AAAA-MM-DD", ErrValidacao, s)
	}
	return t, nil
}

func (d ComissaoDTO) validar() error {
	if strings.TrimSpace(d.Cliente) == "" {
		return fmt.Errorf("%w: cliente é obrigatório", ErrValidacao)
	}
	if strings.TrimSpace(d.DataVenda) == "" {
		return fmt.Errorf("%w: dataVenda é obrigatória", ErrValidacao)
	}
	for nome, v := range map[string]decimal.Decimal{
		"valorVenda":               d.ValorVenda,
		"valorComissaoImobiliaria": d.ValorComissaoImobiliaria,
		"valorComissaoCorretor":    d.ValorComissaoCorretor,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s não pode ser negativo", ErrValidacao, nome)
		}
	}
	switch d.StatusValor {
	case "", ValorAtualizado, ValorDesatualizado, ValorJustificado:
	default:
		return fmt.Errorf("%w: statusValor '%s' desconhecido", ErrValidacao, d.StatusValor)
	}
	return nil
}

// Aplicar valida o DTO e copia os campos para c (sem tocar em status/pagamento).
func (d ComissaoDTO) Aplicar(c *Comissao) error {
	if err := d.validar(); err != nil {
		return err
	}
	dataVenda, err := ParseData(d.DataVenda)
	if err != nil {
		return err
	}
	dataContrato := dataVenda
	if strings.TrimSpace(d.DataContrato) != "" {
		if dataContrato, err = ParseData(d.DataContrato); err != nil {
			return err
		}
	}

	c.VendaID = d.VendaID
	c.Cliente = strings.TrimSpace(d.Cliente)
	c.Imovel = strings.TrimSpace(d.Imovel)
	c.ValorVenda = d.ValorVenda
	c.ValorComissaoImobiliaria = d.ValorComissaoImobiliaria
	c.ValorComissaoCorretor = d.ValorComissaoCorretor
	c.DataContrato = dataContrato
	c.DataVenda = dataVenda
	c.ValorVendaOriginal = d.ValorVendaOriginal
	c.ValorVendaAtual = d.ValorVendaAtual
	c.DiferencaValor = d.DiferencaValor
	c.StatusValor = d.StatusValor
	c.Justificativa = d.Justificativa
	return nil
}

// ParaModelo cria uma comissão nova, sempre pendente.
func (d ComissaoDTO) ParaModelo(usuarioID string) (*Comissao, error) {
	c := &Comissao{UsuarioID: usuarioID, Status: StatusPendente}
	if err := d.Aplicar(c); err != nil {
		return nil, err
	}
	return c, nil
}
