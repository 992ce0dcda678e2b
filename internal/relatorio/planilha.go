package relatorio

import (
	"strconv"
	"strings"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/shopspring/decimal"
)

// planilha monta texto delimitado em que todo valor vai entre aspas.
type planilha struct {
	b strings.Builder
}

func (p *planilha) linha(valores ...string) {
	for i, v := range valores {
		if i > 0 {
			p.b.WriteByte(',')
		}
		p.b.WriteByte('"')
		p.b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		p.b.WriteByte('"')
	}
	p.b.WriteString("\r\n")
}

func (p *planilha) vazia() { p.b.WriteString("\r\n") }

// gerarPlanilha produz as seções COMISSÕES, RESUMO FINANCEIRO e PARCELAS PENDENTES,
// cada uma com sua linha de totais.
func gerarPlanilha(lista []comissao.Comissao, parcelas []conciliacao.ParcelaPendente, op Opcoes) ([]byte, error) {
	cols := colunasAtivas(op.Campos)
	var p planilha

	p.linha("COMISSÕES")
	p.linha(titulos(cols)...)
	somas := make([]decimal.Decimal, len(cols))
	for _, c := range lista {
		linha := make([]string, len(cols))
		for i, col := range cols {
			linha[i] = col.valor(c)
			if col.moeda != nil {
				somas[i] = somas[i].Add(col.moeda(c))
			}
		}
		p.linha(linha...)
	}
	total := make([]string, len(cols))
	for i, col := range cols {
		if col.moeda != nil {
			total[i] = FormatarMoeda(somas[i])
		}
	}
	total[0] = "TOTAL"
	if cols[0].moeda != nil {
		total[0] = "TOTAL " + FormatarMoeda(somas[0])
	}
	p.linha(total...)

	if op.Campos.ResumoFinanceiro {
		t := comissao.CalcularTotais(lista)
		p.vazia()
		p.linha("RESUMO FINANCEIRO")
		p.linha("Indicador", "Quantidade", "Valor")
		p.linha("Total", strconv.Itoa(t.QtdTotal), FormatarMoeda(t.ValorTotal))
		p.linha("Recebido", strconv.Itoa(t.QtdRecebido), FormatarMoeda(t.Recebido))
		p.linha("Pendente", strconv.Itoa(t.QtdPendente), FormatarMoeda(t.Pendente))
		p.linha("Parcial", strconv.Itoa(t.QtdParcial), FormatarMoeda(t.Parcial))
	}

	if op.Campos.ParcelasPendentes && len(parcelas) > 0 {
		p.vazia()
		p.linha("PARCELAS PENDENTES")
		p.linha(titulosParcelas...)
		for _, pp := range parcelas {
			p.linha(
				pp.Cliente,
				pp.Imovel,
				FormatarMoeda(pp.ValorTotal),
				FormatarMoeda(pp.ValorPago),
				FormatarMoeda(pp.ValorPendente),
				formatarDia(pp.DataVenda),
				FormatarData(pp.UltimoPagamento),
				formatarDia(pp.ProximoVencimento),
				strconv.Itoa(pp.DiasAtraso),
			)
		}
		tot, pago, pend := totaisParcelas(parcelas)
		p.linha("TOTAL", "", FormatarMoeda(tot), FormatarMoeda(pago), FormatarMoeda(pend), "", "", "", "")
	}
	return []byte(p.b.String()), nil
}
