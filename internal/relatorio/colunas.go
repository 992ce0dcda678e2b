package relatorio

import (
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/shopspring/decimal"
)

// coluna é uma coluna da tabela principal. moeda != nil marca colunas de valor.
type coluna struct {
	titulo string
	peso   float64
	ativa  func(Campos) bool
	texto  func(comissao.Comissao) string
	moeda  func(comissao.Comissao) decimal.Decimal
	status bool
}

var colunasComissao = []coluna{
	{
		titulo: "Cliente", peso: 3,
		ativa: func(c Campos) bool { return c.Cliente },
		texto: func(c comissao.Comissao) string { return c.Cliente },
	},
	{
		titulo: "Imóvel", peso: 3,
		ativa: func(c Campos) bool { return c.Imovel },
		texto: func(c comissao.Comissao) string { return c.Imovel },
	},
	{
		titulo: "Valor da Venda", peso: 2,
		ativa: func(c Campos) bool { return c.ValorVenda },
		moeda: func(c comissao.Comissao) decimal.Decimal { return c.ValorVenda },
	},
	{
		titulo: "Comissão", peso: 2,
		ativa: func(c Campos) bool { return c.ValorComissao },
		moeda: func(c comissao.Comissao) decimal.Decimal { return c.ValorComissaoCorretor },
	},
	{
		titulo: "Data da Venda", peso: 1.6,
		ativa: func(c Campos) bool { return c.DataVenda },
		texto: func(c comissao.Comissao) string { return formatarDia(c.DataVenda) },
	},
	{
		titulo: "Data do Pagamento", peso: 1.6,
		ativa: func(c Campos) bool { return c.DataPagamento },
		texto: func(c comissao.Comissao) string { return FormatarData(c.DataPagamento) },
	},
	{
		titulo: "Status", peso: 1.4, status: true,
		ativa: func(c Campos) bool { return c.Status },
		texto: func(c comissao.Comissao) string { return RotuloStatus(c.Status) },
	},
}

func colunasAtivas(c Campos) []coluna {
	var out []coluna
	for _, col := range colunasComissao {
		if col.ativa(c) {
			out = append(out, col)
		}
	}
	return out
}

func (col coluna) valor(c comissao.Comissao) string {
	if col.moeda != nil {
		return FormatarMoeda(col.moeda(c))
	}
	return col.texto(c)
}

func titulos(cols []coluna) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.titulo
	}
	return out
}

var titulosParcelas = []string{
	"Cliente", "Imóvel", "Valor Total", "Valor Pago", "Valor Pendente",
	"Data da Venda", "Último Pagamento", "Próximo Vencimento", "Dias em Atraso",
}

// totaisParcelas soma total, pago e pendente.
func totaisParcelas(ps []conciliacao.ParcelaPendente) (total, pago, pendente decimal.Decimal) {
	for _, p := range ps {
		total = total.Add(p.ValorTotal)
		pago = pago.Add(p.ValorPago)
		pendente = pendente.Add(p.ValorPendente)
	}
	return total, pago, pendente
}
