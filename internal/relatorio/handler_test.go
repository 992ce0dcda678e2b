package relatorio_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/KromaEnergia/crm-comissoes/internal/relatorio"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type comissoesFixas struct {
	lista []comissao.Comissao
	err   error
}

func (c comissoesFixas) ListByUsuario(context.Context, string) ([]comissao.Comissao, error) {
	return c.lista, c.err
}

type parcelasFixas struct {
	lista    []conciliacao.ParcelaPendente
	chamadas int
}

func (p *parcelasFixas) ParcelasPendentes(context.Context, string) ([]conciliacao.ParcelaPendente, error) {
	p.chamadas++
	return p.lista, nil
}

func novoRouter(com comissoesFixas, par *parcelasFixas) *mux.Router {
	h := relatorio.NewHandler(com, par, nil)
	h.Agora = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	r := mux.NewRouter()
	h.Registrar(r)
	return r
}

func exportar(r *mux.Router, usuarioID, corpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/relatorios/exportar", strings.NewReader(corpo))
	if usuarioID != "" {
		req = req.WithContext(auth.ComUsuario(req.Context(), usuarioID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func comissoesDeMarco() []comissao.Comissao {
	return []comissao.Comissao{
		{ID: "1", Cliente: "Carla", Imovel: "Casa", ValorComissaoCorretor: decimal.NewFromInt(1000),
			DataVenda: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Status: comissao.StatusPendente},
		{ID: "2", Cliente: "Ana", Imovel: "Apto", ValorComissaoCorretor: decimal.NewFromInt(2000),
			DataVenda: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Status: comissao.StatusRecebido},
		{ID: "3", Cliente: "Bruno", Imovel: "Sala", ValorComissaoCorretor: decimal.NewFromInt(500),
			DataVenda: time.Date(2023, 11, 8, 0, 0, 0, 0, time.UTC), Status: comissao.StatusPendente},
	}
}

func TestHandler_ExportarCSV(t *testing.T) {
	par := &parcelasFixas{}
	r := novoRouter(comissoesFixas{lista: comissoesDeMarco()}, par)

	rec := exportar(r, "u1", `{"formato":"csv","ordem":"az","filtro":{"periodo":"mes"},"campos":{"cliente":true,"status":true,"parcelasPendentes":true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="comissoes_20240315_090000.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, 0, par.chamadas, "csv não exporta parcelas")

	linhas, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Cliente", "Status"},
		{"Ana", "Recebido"},
		{"Carla", "Pendente"},
	}, linhas)
}

func TestHandler_ExportarPDFBuscaParcelas(t *testing.T) {
	par := &parcelasFixas{lista: []conciliacao.ParcelaPendente{{
		ComissaoID: "3", Cliente: "Bruno", ValorTotal: decimal.NewFromInt(500), ValorPendente: decimal.NewFromInt(500),
		DataVenda: time.Date(2023, 11, 8, 0, 0, 0, 0, time.UTC), ProximoVencimento: time.Date(2023, 12, 8, 0, 0, 0, 0, time.UTC),
		DiasAtraso: 98,
	}}}
	r := novoRouter(comissoesFixas{lista: comissoesDeMarco()}, par)

	rec := exportar(r, "u1", `{"formato":"pdf","tema":"azul","titulo":"Março"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, par.chamadas)
}

func TestHandler_ExportarErros(t *testing.T) {
	tests := []struct {
		name    string
		fonte   comissoesFixas
		usuario string
		corpo   string
		want    int
	}{
		{"sem usuário", comissoesFixas{lista: comissoesDeMarco()}, "", `{"formato":"csv"}`, http.StatusUnauthorized},
		{"json inválido", comissoesFixas{lista: comissoesDeMarco()}, "u1", `{`, http.StatusBadRequest},
		{"formato desconhecido", comissoesFixas{lista: comissoesDeMarco()}, "u1", `{"formato":"doc"}`, http.StatusBadRequest},
		{"período inválido", comissoesFixas{lista: comissoesDeMarco()}, "u1", `{"formato":"csv","filtro":{"periodo":"semana"}}`, http.StatusBadRequest},
		{"sem colunas", comissoesFixas{lista: comissoesDeMarco()}, "u1", `{"formato":"csv","campos":{"graficos":true}}`, http.StatusBadRequest},
		{"filtro vazio", comissoesFixas{lista: comissoesDeMarco()}, "u1", `{"formato":"xlsx","filtro":{"texto":"ninguém"}}`, http.StatusUnprocessableEntity},
		{"nenhuma comissão", comissoesFixas{}, "u1", `{"formato":"pdf"}`, http.StatusUnprocessableEntity},
		{"falha na fonte", comissoesFixas{err: errors.New("db fora")}, "u1", `{"formato":"csv"}`, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := exportar(novoRouter(tt.fonte, &parcelasFixas{}), tt.usuario, tt.corpo)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
