package conciliacao

import (
	"math"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/shopspring/decimal"
)

// DiasEntreParcelas é o prazo estimado entre um pagamento e o próximo.
const DiasEntreParcelas = 30

// ParcelaPendente é a projeção (não persistida) do saldo em aberto de uma comissão.
type ParcelaPendente struct {
	ComissaoID        string          `json:"comissaoId"`
	Cliente           string          `json:"cliente"`
	Imovel            string          `json:"imovel"`
	ValorTotal        decimal.Decimal `json:"valorTotal"`
	ValorPago         decimal.Decimal `json:"valorPago"`
	ValorPendente     decimal.Decimal `json:"valorPendente"`
	DataVenda         time.Time       `json:"dataVenda"`
	UltimoPagamento   *time.Time      `json:"ultimoPagamento"`
	ProximoVencimento time.Time       `json:"proximoVencimento"`
	DiasAtraso        int             `json:"diasAtraso"`
}

func (p ParcelaPendente) Atrasada() bool { return p.DiasAtraso > 0 }

// ProjetarParcela calcula o saldo e o próximo vencimento de c.
// O vencimento é estimado em 30 dias após o último pagamento, ou após a venda.
func ProjetarParcela(c comissao.Comissao, recs []recebimento.Recebimento, agora time.Time) ParcelaPendente {
	pago := recebimento.Somar(recs)
	p := ParcelaPendente{
		ComissaoID:    c.ID,
		Cliente:       c.Cliente,
		Imovel:        c.Imovel,
		ValorTotal:    c.ValorComissaoCorretor,
		ValorPago:     pago,
		ValorPendente: c.ValorComissaoCorretor.Sub(pago),
		DataVenda:     c.DataVenda,
	}

	base := c.DataVenda
	for _, r := range recs {
		if p.UltimoPagamento == nil || r.Data.After(*p.UltimoPagamento) {
			d := r.Data
			p.UltimoPagamento = &d
		}
	}
	if p.UltimoPagamento != nil {
		base = *p.UltimoPagamento
	}
	p.ProximoVencimento = base.AddDate(0, 0, DiasEntreParcelas)

	if atraso := agora.Sub(p.ProximoVencimento); atraso > 0 {
		p.DiasAtraso = int(math.Floor(atraso.Hours() / 24))
	}
	return p
}
