package relatorio

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	larguraPagina  = 210.0
	alturaPagina   = 297.0
	margem         = 15.0
	larguraUtil    = larguraPagina - 2*margem
	limiteInferior = alturaPagina - margem - 10
	alturaLinha    = 7.0
	rotuloSistema  = "CRM Imobiliário"
)

var (
	branco = Cor{255, 255, 255}
	zebra  = Cor{245, 245, 247}
)

// Percentual é qtd/total*100 arredondado; 0 quando total é 0.
func Percentual(qtd, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(qtd) / float64(total) * 100))
}

type documento struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	pal   Paleta
	op    Opcoes
	agora time.Time
}

type cartao struct {
	rotulo string
	valor  string
	cor    Cor
}

type colunaPDF struct {
	titulo  string
	largura float64
	direita bool
}

func (d *documento) cor(c Cor) { d.pdf.SetTextColor(c.R, c.G, c.B) }
func (d *documento) fundo(c Cor) { d.pdf.SetFillColor(c.R, c.G, c.B) }
func (d *documento) traco(c Cor) { d.pdf.SetDrawColor(c.R, c.G, c.B) }

func (d *documento) celula(w float64, txt string, borda string, ln int, alinha string, preencher bool) {
	d.pdf.CellFormat(w, alturaLinha, d.caber(txt, w), borda, ln, alinha, preencher, 0, "")
}

// caber traduz s para a codificação da fonte e corta com "..." se não couber em w.
func (d *documento) caber(s string, w float64) string {
	t := d.tr(s)
	limite := w - 2
	if d.pdf.GetStringWidth(t) <= limite {
		return t
	}
	for len(t) > 0 && d.pdf.GetStringWidth(t+"...") > limite {
		t = t[:len(t)-1]
	}
	return t + "..."
}

func (d *documento) cabecalho() {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.cor(d.pal.Primaria)
	d.pdf.CellFormat(larguraUtil/2, 6, d.tr(d.op.Titulo), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 8)
	d.cor(d.pal.Texto)
	d.pdf.CellFormat(larguraUtil/2, 6, d.tr("Gerado em "+d.agora.Format("02/01/2006 15:04")), "", 1, "R", false, 0, "")
	d.traco(d.pal.Primaria)
	y := d.pdf.GetY() + 1
	d.pdf.Line(margem, y, larguraPagina-margem, y)
	d.pdf.Ln(5)
}

func (d *documento) rodape() {
	d.pdf.SetY(-margem)
	d.pdf.SetFont("Helvetica", "I", 8)
	d.cor(d.pal.Texto)
	d.pdf.CellFormat(larguraUtil/2, 6, d.tr(rotuloSistema), "T", 0, "L", false, 0, "")
	d.pdf.CellFormat(larguraUtil/2, 6, d.tr(fmt.Sprintf("Página %d de {nb}", d.pdf.PageNo())), "T", 0, "R", false, 0, "")
}

func (d *documento) quebrarSePreciso(altura float64, redesenhar func()) {
	if d.pdf.GetY()+altura <= limiteInferior {
		return
	}
	d.pdf.AddPage()
	if redesenhar != nil {
		redesenhar()
	}
}

func (d *documento) secao(titulo string) {
	d.quebrarSePreciso(20, nil)
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.cor(d.pal.Primaria)
	d.pdf.CellFormat(larguraUtil, 8, d.tr(titulo), "", 1, "L", false, 0, "")
	d.pdf.Ln(1)
}

func (d *documento) cartoes(itens []cartao) {
	const espaco = 4.0
	const altura = 18.0
	d.quebrarSePreciso(altura+4, nil)
	w := (larguraUtil - espaco*float64(len(itens)-1)) / float64(len(itens))
	y := d.pdf.GetY()
	for i, c := range itens {
		x := margem + float64(i)*(w+espaco)
		d.fundo(c.cor)
		d.pdf.Rect(x, y, w, altura, "F")
		d.cor(branco)
		d.pdf.SetXY(x+2, y+2)
		d.pdf.SetFont("Helvetica", "", 8)
		d.pdf.CellFormat(w-4, 5, d.caber(c.rotulo, w-4), "", 2, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "B", 11)
		d.pdf.CellFormat(w-4, 8, d.caber(c.valor, w-4), "", 0, "L", false, 0, "")
	}
	d.pdf.SetXY(margem, y+altura+4)
}

func (d *documento) tituloBloco() {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.cor(d.pal.Texto)
	d.pdf.CellFormat(larguraUtil, 9, d.tr(d.op.Titulo), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(larguraUtil, 6, d.tr("Período: "+d.op.Periodo), "", 1, "L", false, 0, "")
	d.pdf.Ln(3)
}

func (d *documento) corStatus(s comissao.Status) Cor {
	switch s {
	case comissao.StatusRecebido:
		return d.pal.Sucesso
	case comissao.StatusParcial:
		return d.pal.Alerta
	}
	return d.pal.Perigo
}

func (d *documento) distribuicao(t comissao.Totais) {
	d.secao("Distribuição por status")
	linhas := []struct {
		status comissao.Status
		qtd    int
	}{
		{comissao.StatusRecebido, t.QtdRecebido},
		{comissao.StatusPendente, t.QtdPendente},
		{comissao.StatusParcial, t.QtdParcial},
	}
	const larguraRotulo = 35.0
	const larguraNumeros = 30.0
	for _, l := range linhas {
		d.quebrarSePreciso(alturaLinha, nil)
		pct := Percentual(l.qtd, t.QtdTotal)
		d.pdf.SetFont("Helvetica", "", 10)
		d.cor(d.pal.Texto)
		d.celula(larguraRotulo, RotuloStatus(l.status), "", 0, "L", false)
		d.celula(larguraNumeros, fmt.Sprintf("%d (%d%%)", l.qtd, pct), "", 0, "R", false)
		if d.op.Campos.Graficos {
			maxBarra := larguraUtil - larguraRotulo - larguraNumeros - 5
			x, y := d.pdf.GetX()+5, d.pdf.GetY()+1.5
			d.fundo(zebra)
			d.pdf.Rect(x, y, maxBarra, alturaLinha-3, "F")
			if pct > 0 {
				d.fundo(d.corStatus(l.status))
				d.pdf.Rect(x, y, maxBarra*float64(pct)/100, alturaLinha-3, "F")
			}
		}
		d.pdf.Ln(alturaLinha)
	}
}

func (d *documento) cabecalhoTabela(cols []colunaPDF) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.fundo(d.pal.Primaria)
	d.cor(branco)
	for _, c := range cols {
		d.celula(c.largura, c.titulo, "", 0, "C", true)
	}
	d.pdf.Ln(alturaLinha)
}

func larguras(cols []coluna) []colunaPDF {
	var soma float64
	for _, c := range cols {
		soma += c.peso
	}
	out := make([]colunaPDF, len(cols))
	for i, c := range cols {
		out[i] = colunaPDF{titulo: c.titulo, largura: larguraUtil * c.peso / soma, direita: c.moeda != nil}
	}
	return out
}

func (d *documento) tabelaComissoes(lista []comissao.Comissao) {
	d.secao("Comissões")
	cols := colunasAtivas(d.op.Campos)
	pdfCols := larguras(cols)
	d.cabecalhoTabela(pdfCols)

	for i, c := range lista {
		d.quebrarSePreciso(alturaLinha, func() { d.cabecalhoTabela(pdfCols) })
		d.pdf.SetFont("Helvetica", "", 9)
		d.fundo(zebra)
		for j, col := range cols {
			alinha := "L"
			if pdfCols[j].direita {
				alinha = "R"
			}
			if col.status {
				d.fundo(d.corStatus(c.Status))
				d.cor(branco)
				d.pdf.SetFont("Helvetica", "B", 9)
				d.celula(pdfCols[j].largura, col.valor(c), "", 0, "C", true)
				d.pdf.SetFont("Helvetica", "", 9)
				d.fundo(zebra)
				continue
			}
			d.cor(d.pal.Texto)
			d.celula(pdfCols[j].largura, col.valor(c), "", 0, alinha, i%2 == 1)
		}
		d.pdf.Ln(alturaLinha)
	}
}

func (d *documento) secaoParcelas(parcelas []conciliacao.ParcelaPendente) {
	ordenadas := slices.Clone(parcelas)
	slices.SortStableFunc(ordenadas, func(a, b conciliacao.ParcelaPendente) int {
		return b.DiasAtraso - a.DiasAtraso
	})

	_, _, pendente := totaisParcelas(ordenadas)
	atrasadas, valorAtrasado := 0, decimal.Zero
	for _, p := range ordenadas {
		if p.Atrasada() {
			atrasadas++
			valorAtrasado = valorAtrasado.Add(p.ValorPendente)
		}
	}

	d.secao("Parcelas Pendentes")
	d.cartoes([]cartao{
		{"Parcelas em aberto", strconv.Itoa(len(ordenadas)), d.pal.Primaria},
		{"Total pendente", FormatarMoeda(pendente), d.pal.Alerta},
		{"Em atraso", fmt.Sprintf("%d - %s", atrasadas, FormatarMoeda(valorAtrasado)), d.pal.Perigo},
	})

	cols := []colunaPDF{
		{titulo: "Cliente", largura: 42},
		{titulo: "Imóvel", largura: 42},
		{titulo: "Pendente", largura: 28, direita: true},
		{titulo: "Último Pagamento", largura: 25},
		{titulo: "Próx. Vencimento", largura: 25},
		{titulo: "Atraso (dias)", largura: larguraUtil - 162, direita: true},
	}
	d.cabecalhoTabela(cols)
	for _, p := range ordenadas {
		d.quebrarSePreciso(alturaLinha, func() { d.cabecalhoTabela(cols) })
		estilo := ""
		d.cor(d.pal.Texto)
		if p.Atrasada() {
			estilo = "B"
			d.cor(d.pal.Perigo)
		}
		d.pdf.SetFont("Helvetica", estilo, 9)
		valores := []string{
			p.Cliente, p.Imovel, FormatarMoeda(p.ValorPendente),
			FormatarData(p.UltimoPagamento), formatarDia(p.ProximoVencimento), strconv.Itoa(p.DiasAtraso),
		}
		for j, v := range valores {
			alinha := "L"
			if cols[j].direita {
				alinha = "R"
			}
			d.celula(cols[j].largura, v, "B", 0, alinha, false)
		}
		d.pdf.Ln(alturaLinha)
	}
}

// gerarPDF monta o relatório paginado em A4.
func gerarPDF(lista []comissao.Comissao, parcelas []conciliacao.ParcelaPendente, op Opcoes, agora time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	d := &documento{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		pal:   op.Tema.Paleta(),
		op:    op,
		agora: agora,
	}
	pdf.SetCreationDate(agora)
	pdf.SetTitle(op.Titulo, true)
	pdf.SetMargins(margem, margem, margem)
	pdf.SetAutoPageBreak(true, margem+10)
	pdf.AliasNbPages("")
	pdf.SetHeaderFunc(d.cabecalho)
	pdf.SetFooterFunc(d.rodape)
	pdf.AddPage()

	d.tituloBloco()
	totais := comissao.CalcularTotais(lista)
	if op.Campos.ResumoFinanceiro {
		d.cartoes([]cartao{
			{"Quantidade", strconv.Itoa(totais.QtdTotal), d.pal.Primaria},
			{"Valor total", FormatarMoeda(totais.ValorTotal), d.pal.Texto},
			{"Recebido", FormatarMoeda(totais.Recebido), d.pal.Sucesso},
			{"Pendente", FormatarMoeda(totais.Pendente), d.pal.Perigo},
		})
	}
	d.distribuicao(totais)
	d.tabelaComissoes(lista)
	if op.Campos.ParcelasPendentes && len(parcelas) > 0 {
		d.secaoParcelas(parcelas)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
