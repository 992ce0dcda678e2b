package comissao

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const AbaTodas = "todas"

type Periodo string

const (
	PeriodoTodos         Periodo = "todos"
	PeriodoMes           Periodo = "mes"
	PeriodoTrimestre     Periodo = "trimestre"
	PeriodoAno           Periodo = "ano"
	PeriodoPersonalizado Periodo = "personalizado"
)

// Filtro reúne todas as opções reconhecidas pela listagem de comissões.
type Filtro struct {
	Aba     string     `json:"aba"`
	Texto   string     `json:"texto"`
	Periodo Periodo    `json:"periodo"`
	Inicio  *time.Time `json:"inicio,omitempty"`
	Fim     *time.Time `json:"fim,omitempty"`
}

func fimDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DiaCivil devolve a meia-noite UTC do dia de calendário em que t cai no seu
// próprio fuso. Datas de venda e de recebimento são gravadas nessa forma.
func DiaCivil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Intervalo devolve a janela [inicio, fim] do período; ok=false quando não há filtro de data.
// O mês, trimestre e ano são os do dia civil de agora, com a janela em UTC.
func (f Filtro) Intervalo(agora time.Time) (inicio, fim time.Time, ok bool) {
	hoje := DiaCivil(agora)
	switch f.Periodo {
	case PeriodoMes:
		inicio = time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, time.UTC)
		return inicio, fimDoDia(inicio.AddDate(0, 1, -1)), true
	case PeriodoTrimestre:
		trimestre := (int(hoje.Month()) - 1) / 3
		inicio = time.Date(hoje.Year(), time.Month(trimestre*3+1), 1, 0, 0, 0, 0, time.UTC)
		return inicio, fimDoDia(inicio.AddDate(0, 3, -1)), true
	case PeriodoAno:
		inicio = time.Date(hoje.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return inicio, fimDoDia(time.Date(hoje.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)), true
	case PeriodoPersonalizado:
		if f.Inicio == nil && f.Fim == nil {
			return time.Time{}, time.Time{}, false
		}
		// janela aberta em um dos lados
		inicio = time.Time{}
		fim = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
		if f.Inicio != nil {
			inicio = *f.Inicio
		}
		if f.Fim != nil {
			fim = *f.Fim
		}
		return inicio, fimDoDia(fim), true
	}
	return time.Time{}, time.Time{}, false
}

// FiltrarComissoes aplica aba, texto e período, nessa ordem, preservando a ordem de entrada.
func FiltrarComissoes(todas []Comissao, f Filtro, agora time.Time) []Comissao {
	inicio, fim, comData := f.Intervalo(agora)
	texto := strings.ToLower(strings.TrimSpace(f.Texto))

	out := make([]Comissao, 0, len(todas))
	for _, c := range todas {
		if f.Aba != "" && f.Aba != AbaTodas && string(c.Status) != f.Aba {
			continue
		}
		if texto != "" &&
			!strings.Contains(strings.ToLower(c.Cliente), texto) &&
			!strings.Contains(strings.ToLower(c.Imovel), texto) {
			continue
		}
		if comData && (c.DataVenda.Before(inicio) || c.DataVenda.After(fim)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// OrdenarPorCliente devolve uma cópia ordenada pelo nome do cliente (A-Z ou Z-A),
// usando a colação do português.
func OrdenarPorCliente(lista []Comissao, crescente bool) []Comissao {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	out := slices.Clone(lista)
	slices.SortStableFunc(out, func(a, b Comissao) int {
		r := col.CompareString(a.Cliente, b.Cliente)
		if !crescente {
			r = -r
		}
		return r
	})
	return out
}

// Totais agrega valores e quantidades por status.
type Totais struct {
	Recebido    decimal.Decimal `json:"recebido"`
	Pendente    decimal.Decimal `json:"pendente"`
	Parcial     decimal.Decimal `json:"parcial"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	QtdRecebido int             `json:"qtdRecebido"`
	QtdPendente int             `json:"qtdPendente"`
	QtdParcial  int             `json:"qtdParcial"`
	QtdTotal    int             `json:"qtdTotal"`
}

var metade = decimal.NewFromFloat(0.5)

// CalcularTotais soma ValorComissaoCorretor por status. Comissões parciais
// entram com metade do valor no balde Parcial.
func CalcularTotais(lista []Comissao) Totais {
	t := Totais{
		Recebido:   decimal.Zero,
		Pendente:   decimal.Zero,
		Parcial:    decimal.Zero,
		ValorTotal: decimal.Zero,
	}
	for _, c := range lista {
		v := c.ValorComissaoCorretor
		t.ValorTotal = t.ValorTotal.Add(v)
		t.QtdTotal++
		switch c.Status {
		case StatusRecebido:
			t.Recebido = t.Recebido.Add(v)
			t.QtdRecebido++
		case StatusPendente:
			t.Pendente = t.Pendente.Add(v)
			t.QtdPendente++
		case StatusParcial:
			t.Parcial = t.Parcial.Add(v.Mul(metade))
			t.QtdParcial++
		}
	}
	return t
}

// AtingidoPercentual é recebido/meta*100; meta zero ou negativa dá 0.
func AtingidoPercentual(recebido, meta decimal.Decimal) float64 {
	if !meta.IsPositive() {
		return 0
	}
	pct, _ := recebido.Div(meta).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// ParseFiltro lê aba, texto, periodo, inicio e fim da query string.
func ParseFiltro(q url.Values) (Filtro, error) {
	f := Filtro{
		Aba:     strings.ToLower(strings.TrimSpace(q.Get("aba"))),
		Texto:   q.Get("texto"),
		Periodo: Periodo(strings.ToLower(strings.TrimSpace(q.Get("periodo")))),
	}
	if f.Aba == "" {
		f.Aba = AbaTodas
	}
	if f.Aba != AbaTodas && !Status(f.Aba).Valido() {
		return Filtro{}, fmt.Errorf("%w: aba '%s' desconhecida", ErrValidacao, f.Aba)
	}
	if f.Periodo == "" {
		f.Periodo = PeriodoTodos
	}
	switch f.Periodo {
	case PeriodoTodos, PeriodoMes, PeriodoTrimestre, PeriodoAno:
	case PeriodoPersonalizado:
		if q.Get("inicio") == "" || q.Get("fim") == "" {
			return Filtro{}, fmt.Errorf("%w: período personalizado exige inicio e fim", ErrValidacao)
		}
		inicio, err := ParseData(q.Get("inicio"))
		if err != nil {
			return Filtro{}, err
		}
		fim, err := ParseData(q.Get("fim"))
		if err != nil {
			return Filtro{}, err
		}
		if fim.Before(inicio) {
			return Filtro{}, fmt.Errorf("%w: fim anterior ao início", ErrValidacao)
		}
		f.Inicio, f.Fim = &inicio, &fim
	default:
		return Filtro{}, fmt.Errorf("%w: período '%s' desconhecido", ErrValidacao, f.Periodo)
	}
	return f, nil
}
