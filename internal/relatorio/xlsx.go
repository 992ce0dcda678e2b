package relatorio

import (
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	abaComissoes = "Comissões"
	abaResumo    = "Resumo"
	abaParcelas  = "Parcelas Pendentes"
	formatoReal  = `"R$" #,##0.00`
)

type estilos struct {
	cabecalho int
	moeda     int
	total     int
	totalReal int
}

func novosEstilos(f *excelize.File, pal Paleta) (estilos, error) {
	var e estilos
	var err error
	numFmt := formatoReal
	if e.cabecalho, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{pal.Primaria.Hex()}},
	}); err != nil {
		return e, err
	}
	if e.moeda, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return e, err
	}
	if e.total, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return e, err
	}
	e.totalReal, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &numFmt})
	return e, err
}

func celula(col, linha int) string {
	c, _ := excelize.CoordinatesToCellName(col, linha)
	return c
}

func numero(v decimal.Decimal) float64 {
	f, _ := v.Round(2).Float64()
	return f
}

func escreverCabecalho(f *excelize.File, aba string, titulos []string, estilo int) error {
	for i, t := range titulos {
		if err := f.SetCellValue(aba, celula(i+1, 1), t); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(aba, celula(1, 1), celula(len(titulos), 1), estilo); err != nil {
		return err
	}
	return f.SetColWidth(aba, "A", colunaNome(len(titulos)), 20)
}

func colunaNome(n int) string {
	nome, _ := excelize.ColumnNumberToName(n)
	return nome
}

// gerarXLSX grava uma pasta com as abas Comissões, Resumo e Parcelas Pendentes,
// com valores numéricos e formato de moeda.
func gerarXLSX(lista []comissao.Comissao, parcelas []conciliacao.ParcelaPendente, op Opcoes) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", abaComissoes); err != nil {
		return nil, err
	}
	st, err := novosEstilos(f, op.Tema.Paleta())
	if err != nil {
		return nil, err
	}

	cols := colunasAtivas(op.Campos)
	if err := escreverCabecalho(f, abaComissoes, titulos(cols), st.cabecalho); err != nil {
		return nil, err
	}
	somas := make([]decimal.Decimal, len(cols))
	for i, c := range lista {
		linha := i + 2
		for j, col := range cols {
			cel := celula(j+1, linha)
			if col.moeda != nil {
				v := col.moeda(c)
				somas[j] = somas[j].Add(v)
				if err := f.SetCellFloat(abaComissoes, cel, numero(v), 2, 64); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(abaComissoes, cel, cel, st.moeda); err != nil {
					return nil, err
				}
				continue
			}
			if err := f.SetCellStr(abaComissoes, cel, col.texto(c)); err != nil {
				return nil, err
			}
		}
	}
	linhaTotal := len(lista) + 2
	// Com a primeira coluna em moeda, o rótulo vai para depois da última.
	colRotulo, ultima := 1, len(cols)
	if cols[0].moeda != nil {
		colRotulo, ultima = len(cols)+1, len(cols)+1
	}
	if err := f.SetCellStyle(abaComissoes, celula(1, linhaTotal), celula(ultima, linhaTotal), st.total); err != nil {
		return nil, err
	}
	if err := f.SetCellStr(abaComissoes, celula(colRotulo, linhaTotal), "TOTAL"); err != nil {
		return nil, err
	}
	for j, col := range cols {
		if col.moeda == nil {
			continue
		}
		cel := celula(j+1, linhaTotal)
		if err := f.SetCellFloat(abaComissoes, cel, numero(somas[j]), 2, 64); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(abaComissoes, cel, cel, st.totalReal); err != nil {
			return nil, err
		}
	}

	if op.Campos.ResumoFinanceiro {
		if err := escreverResumo(f, lista, st); err != nil {
			return nil, err
		}
	}
	if op.Campos.ParcelasPendentes && len(parcelas) > 0 {
		if err := escreverParcelas(f, parcelas, st); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func escreverResumo(f *excelize.File, lista []comissao.Comissao, st estilos) error {
	if _, err := f.NewSheet(abaResumo); err != nil {
		return err
	}
	if err := escreverCabecalho(f, abaResumo, []string{"Indicador", "Quantidade", "Valor"}, st.cabecalho); err != nil {
		return err
	}
	t := comissao.CalcularTotais(lista)
	linhas := []struct {
		rotulo string
		qtd    int
		valor  decimal.Decimal
	}{
		{"Total", t.QtdTotal, t.ValorTotal},
		{"Recebido", t.QtdRecebido, t.Recebido},
		{"Pendente", t.QtdPendente, t.Pendente},
		{"Parcial", t.QtdParcial, t.Parcial},
	}
	for i, l := range linhas {
		n := i + 2
		if err := f.SetSheetRow(abaResumo, celula(1, n), &[]interface{}{l.rotulo, l.qtd, numero(l.valor)}); err != nil {
			return err
		}
		if err := f.SetCellStyle(abaResumo, celula(3, n), celula(3, n), st.moeda); err != nil {
			return err
		}
	}
	return nil
}

func escreverParcelas(f *excelize.File, parcelas []conciliacao.ParcelaPendente, st estilos) error {
	if _, err := f.NewSheet(abaParcelas); err != nil {
		return err
	}
	if err := escreverCabecalho(f, abaParcelas, titulosParcelas, st.cabecalho); err != nil {
		return err
	}
	for i, p := range parcelas {
		n := i + 2
		linha := []interface{}{
			p.Cliente, p.Imovel,
			numero(p.ValorTotal), numero(p.ValorPago), numero(p.ValorPendente),
			formatarDia(p.DataVenda), FormatarData(p.UltimoPagamento), formatarDia(p.ProximoVencimento),
			p.DiasAtraso,
		}
		if err := f.SetSheetRow(abaParcelas, celula(1, n), &linha); err != nil {
			return err
		}
		if err := f.SetCellStyle(abaParcelas, celula(3, n), celula(5, n), st.moeda); err != nil {
			return err
		}
	}
	n := len(parcelas) + 2
	tot, pago, pend := totaisParcelas(parcelas)
	if err := f.SetSheetRow(abaParcelas, celula(1, n), &[]interface{}{"TOTAL", "", numero(tot), numero(pago), numero(pend)}); err != nil {
		return err
	}
	if err := f.SetCellStyle(abaParcelas, celula(1, n), celula(2, n), st.total); err != nil {
		return err
	}
	return f.SetCellStyle(abaParcelas, celula(3, n), celula(5, n), st.totalReal)
}
