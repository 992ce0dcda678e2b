package comissao

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agoraFixo = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func fixture() []Comissao {
	return []Comissao{
		{ID: "1", Cliente: "João Silva", Imovel: "Apto 101", Status: StatusPendente, ValorComissaoCorretor: decimal.NewFromInt(1000), DataVenda: data(2026, 10, 5)},
		{ID: "2", Cliente: "Maria Souza", Imovel: "Casa Jardim", Status: StatusRecebido, ValorComissaoCorretor: decimal.NewFromInt(2000), DataVenda: data(2026, 10, 10)},
		{ID: "3", Cliente: "JOÃO Pereira", Imovel: "Sala 12", Status: StatusParcial, ValorComissaoCorretor: decimal.NewFromInt(3000), DataVenda: data(2026, 8, 1)},
		{ID: "4", Cliente: "Ana Lima", Imovel: "Cobertura", Status: StatusPendente, ValorComissaoCorretor: decimal.NewFromInt(4000), DataVenda: data(2025, 12, 31)},
		{ID: "5", Cliente: "Carlos Dias", Imovel: "Terreno", Status: StatusRecebido, ValorComissaoCorretor: decimal.NewFromInt(5000), DataVenda: data(2026, 1, 15)},
	}
}

func ids(lista []Comissao) []string {
	out := make([]string, 0, len(lista))
	for _, c := range lista {
		out = append(out, c.ID)
	}
	return out
}

func ptr(t time.Time) *time.Time { return &t }

func TestFiltrarComissoes(t *testing.T) {
	tests := []struct {
		name   string
		filtro Filtro
		want   []string
	}{
		{name: "sem filtros", filtro: Filtro{Aba: AbaTodas, Periodo: PeriodoTodos}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "aba vazia equivale a todas", filtro: Filtro{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "aba pendente", filtro: Filtro{Aba: "pendente"}, want: []string{"1", "4"}},
		{name: "aba recebido", filtro: Filtro{Aba: "recebido"}, want: []string{"2", "5"}},
		{name: "texto ignora caixa", filtro: Filtro{Texto: "joão"}, want: []string{"1", "3"}},
		{name: "texto no imovel", filtro: Filtro{Texto: "JARDIM"}, want: []string{"2"}},
		{name: "joao no mes atual", filtro: Filtro{Aba: AbaTodas, Texto: "joão", Periodo: PeriodoMes}, want: []string{"1"}},
		{name: "trimestre atual", filtro: Filtro{Periodo: PeriodoTrimestre}, want: []string{"1", "2"}},
		{name: "ano atual", filtro: Filtro{Periodo: PeriodoAno}, want: []string{"1", "2", "3", "5"}},
		{
			name:   "personalizado inclui o ultimo dia inteiro",
			filtro: Filtro{Periodo: PeriodoPersonalizado, Inicio: ptr(data(2025, 12, 1)), Fim: ptr(data(2026, 1, 15))},
			want:   []string{"4", "5"},
		},
		{
			name:   "personalizado sem datas nao filtra",
			filtro: Filtro{Periodo: PeriodoPersonalizado},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{name: "nada encontrado", filtro: Filtro{Texto: "inexistente"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FiltrarComissoes(fixture(), tt.filtro, agoraFixo)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFiltrarComissoes_FimDoDiaPersonalizado(t *testing.T) {
	lista := []Comissao{{ID: "tarde", DataVenda: time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)}}
	f := Filtro{Periodo: PeriodoPersonalizado, Inicio: ptr(data(2024, 3, 1)), Fim: ptr(data(2024, 3, 31))}

	assert.Len(t, FiltrarComissoes(lista, f, agoraFixo), 1)
}

func TestIntervalo(t *testing.T) {
	inicio, fim, ok := Filtro{Periodo: PeriodoMes}.Intervalo(agoraFixo)
	require.True(t, ok)
	assert.Equal(t, data(2026, 10, 1), inicio)
	assert.Equal(t, "2026-10-31 23:59:59.999", fim.Format("2006-01-02 15:04:05.000"))

	inicio, fim, ok = Filtro{Periodo: PeriodoTrimestre}.Intervalo(data(2024, 2, 29))
	require.True(t, ok)
	assert.Equal(t, data(2024, 1, 1), inicio)
	assert.Equal(t, "2024-03-31", fim.Format("2006-01-02"))

	_, _, ok = Filtro{Periodo: PeriodoTodos}.Intervalo(agoraFixo)
	assert.False(t, ok)
}

func TestCalcularTotais(t *testing.T) {
	todas := fixture()
	totais := CalcularTotais(FiltrarComissoes(todas, Filtro{Aba: AbaTodas, Periodo: PeriodoTodos}, agoraFixo))

	assert.Equal(t, len(todas), totais.QtdTotal)
	assert.Equal(t, 2, totais.QtdRecebido)
	assert.Equal(t, 2, totais.QtdPendente)
	assert.Equal(t, 1, totais.QtdParcial)
	assert.True(t, totais.Recebido.Equal(decimal.NewFromInt(7000)), totais.Recebido.String())
	assert.True(t, totais.Pendente.Equal(decimal.NewFromInt(5000)), totais.Pendente.String())
	assert.True(t, totais.Parcial.Equal(decimal.NewFromInt(1500)), totais.Parcial.String())
	assert.True(t, totais.ValorTotal.Equal(decimal.NewFromInt(15000)), totais.ValorTotal.String())
}

func TestCalcularTotais_Vazio(t *testing.T) {
	totais := CalcularTotais(nil)

	assert.Zero(t, totais.QtdTotal)
	assert.True(t, totais.Recebido.IsZero())
	assert.True(t, totais.ValorTotal.IsZero())
	assert.Equal(t, 0.0, AtingidoPercentual(totais.Recebido, decimal.Zero))
}

func TestAtingidoPercentual(t *testing.T) {
	assert.InDelta(t, 50.0, AtingidoPercentual(decimal.NewFromInt(5000), decimal.NewFromInt(10000)), 0.0001)
	assert.InDelta(t, 125.0, AtingidoPercentual(decimal.NewFromInt(2500), decimal.NewFromInt(2000)), 0.0001)
	assert.Equal(t, 0.0, AtingidoPercentual(decimal.NewFromInt(100), decimal.Zero))
}

func TestOrdenarPorCliente(t *testing.T) {
	lista := fixture()

	az := OrdenarPorCliente(lista, true)
	assert.Equal(t, "Ana Lima", az[0].Cliente)
	assert.Equal(t, "JOÃO Pereira", az[2].Cliente)
	assert.Equal(t, "Maria Souza", az[len(az)-1].Cliente)

	za := OrdenarPorCliente(lista, false)
	assert.Equal(t, "Maria Souza", za[0].Cliente)
	assert.Equal(t, "Ana Lima", za[len(za)-1].Cliente)

	// a entrada não é alterada
	assert.Equal(t, "1", lista[0].ID)
}

func TestParseFiltro(t *testing.T) {
	f, err := ParseFiltro(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, AbaTodas, f.Aba)
	assert.Equal(t, PeriodoTodos, f.Periodo)

	f, err = ParseFiltro(url.Values{"aba": {"Parcial"}, "texto": {"ana"}, "periodo": {"ano"}})
	require.NoError(t, err)
	assert.Equal(t, "parcial", f.Aba)
	assert.Equal(t, "ana", f.Texto)
	assert.Equal(t, PeriodoAno, f.Periodo)

	f, err = ParseFiltro(url.Values{"periodo": {"personalizado"}, "inicio": {"2024-01-01"}, "fim": {"2024-03-31"}})
	require.NoError(t, err)
	require.NotNil(t, f.Inicio)
	assert.Equal(t, "2024-03-31", f.Fim.Format(time.DateOnly))

	_, err = ParseFiltro(url.Values{"aba": {"cancelada"}})
	assert.ErrorIs(t, err, ErrValidacao)

	_, err = ParseFiltro(url.Values{"periodo": {"semana"}})
	assert.ErrorIs(t, err, ErrValidacao)

	_, err = ParseFiltro(url.Values{"periodo": {"personalizado"}, "inicio": {"2024-01-01"}})
	assert.ErrorIs(t, err, ErrValidacao)

	_, err = ParseFiltro(url.Values{"periodo": {"personalizado"}, "inicio": {"2024-04-01"}, "fim": {"2024-03-01"}})
	assert.ErrorIs(t, err, ErrValidacao)
}

func TestFiltrarComissoes_RelogioForaDeUTC(t *testing.T) {
	brasilia := time.FixedZone("BRT", -3*60*60)
	toquio := time.FixedZone("JST", 9*60*60)

	primeiroMarco, err := ParseData("2024-03-01")
	require.NoError(t, err)
	primeiroAbril, err := ParseData("2024-04-01")
	require.NoError(t, err)
	lista := []Comissao{
		{ID: "1mar", DataVenda: primeiroMarco},
		{ID: "1abr", DataVenda: primeiroAbril},
	}

	tests := []struct {
		name  string
		agora time.Time
		want  []string
	}{
		{"meio do mês a oeste de UTC", time.Date(2024, 3, 15, 10, 0, 0, 0, brasilia), []string{"1mar"}},
		{"última noite do mês a oeste de UTC", time.Date(2024, 3, 31, 22, 0, 0, 0, brasilia), []string{"1mar"}},
		{"primeira manhã do mês a leste de UTC", time.Date(2024, 4, 1, 8, 0, 0, 0, toquio), []string{"1abr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FiltrarComissoes(lista, Filtro{Periodo: PeriodoMes}, tt.agora)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestIntervalo_UsaDiaCivilDoRelogio(t *testing.T) {
	agora := time.Date(2024, 3, 31, 22, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	inicio, fim, ok := Filtro{Periodo: PeriodoTrimestre}.Intervalo(agora)
	require.True(t, ok)
	assert.Equal(t, data(2024, 1, 1), inicio)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), fim)

	assert.Equal(t, data(2024, 3, 31), DiaCivil(agora))
}
