// internal/venda/dto.go
package venda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/shopspring/decimal"
)

var ErrVendaInvalida = errors.New("venda inválida")

// VendaRequest é o corpo de POST/PUT /vendas. Se Comissao vier preenchido no
// POST, a comissão da venda é criada junto.
type VendaRequest struct {
	ClienteID   *string         `json:"clienteId"`
	ClienteNome string          `json:"clienteNome"`
	Imovel      string          `json:"imovel"`
	Valor       decimal.Decimal `json:"valor"`
	DataVenda   string          `json:"dataVenda"`
	Comissao    *ComissaoVenda  `json:"comissao,omitempty"`
}

type ComissaoVenda struct {
	ValorComissaoImobiliaria decimal.Decimal `json:"valorComissaoImobiliaria"`
	ValorComissaoCorretor    decimal.Decimal `json:"valorComissaoCorretor"`
	DataContrato             string          `json:"dataContrato"`
}

type VendaResponse struct {
	Venda    *Venda             `json:"venda"`
	Comissao *comissao.Comissao `json:"comissao,omitempty"`
}

func (r VendaRequest) Aplicar(v *Venda) error {
	if strings.TrimSpace(r.Imovel) == "" {
		return fmt.Errorf("%w: imóvel é obrigatório", ErrVendaInvalida)
	}
	if r.Valor.IsNegative() {
		return fmt.Errorf("%w: valor não pode ser negativo", ErrVendaInvalida)
	}
	data, err := comissao.ParseData(r.DataVenda)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVendaInvalida, err)
	}
	v.ClienteID = r.ClienteID
	v.ClienteNome = strings.TrimSpace(r.ClienteNome)
	v.Imovel = strings.TrimSpace(r.Imovel)
	v.Valor = r.Valor
	v.DataVenda = data
	return nil
}

// ComissaoDTO monta o DTO de comissão a partir da venda já validada.
func (c ComissaoVenda) ComissaoDTO(v *Venda) comissao.ComissaoDTO {
	id := v.ID
	return comissao.ComissaoDTO{
		VendaID:                  &id,
		Cliente:                  v.ClienteNome,
		Imovel:                   v.Imovel,
		ValorVenda:               v.Valor,
		ValorComissaoImobiliaria: c.ValorComissaoImobiliaria,
		ValorComissaoCorretor:    c.ValorComissaoCorretor,
		DataContrato:             c.DataContrato,
		DataVenda:                v.DataVenda.Format("2006-01-02"),
	}
}
