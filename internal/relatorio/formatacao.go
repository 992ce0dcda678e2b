package relatorio

import (
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var impressora = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda escreve v como "R$ 1.234,56".
func FormatarMoeda(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return impressora.Sprintf("R$ %.2f", f)
}

// FormatarData usa dd/mm/aaaa e "-" para datas ausentes.
func FormatarData(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func formatarDia(t time.Time) string { return FormatarData(&t) }

func RotuloStatus(s comissao.Status) string {
	switch s {
	case comissao.StatusRecebido:
		return "Recebido"
	case comissao.StatusParcial:
		return "Parcial"
	case comissao.StatusPendente:
		return "Pendente"
	}
	return string(s)
}
