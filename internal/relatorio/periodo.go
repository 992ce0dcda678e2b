package relatorio

import (
	"fmt"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
)

// DescreverPeriodo devolve o texto do período exibido nos relatórios.
func DescreverPeriodo(f comissao.Filtro, agora time.Time) string {
	inicio, fim, ok := f.Intervalo(agora)
	if !ok {
		return "Todo o período"
	}
	intervalo := fmt.Sprintf("%s a %s", formatarDia(inicio), formatarDia(fim))

	switch f.Periodo {
	case comissao.PeriodoMes:
		return "Mês atual (" + intervalo + ")"
	case comissao.PeriodoTrimestre:
		return fmt.Sprintf("%dº trimestre de %d (%s)", (int(inicio.Month())-1)/3+1, inicio.Year(), intervalo)
	case comissao.PeriodoAno:
		return fmt.Sprintf("Ano de %d (%s)", inicio.Year(), intervalo)
	}
	switch {
	case f.Inicio == nil:
		return "Até " + formatarDia(*f.Fim)
	case f.Fim == nil:
		return "A partir de " + formatarDia(*f.Inicio)
	}
	return "De " + intervalo
}
