package venda_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/cliente"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/KromaEnergia/crm-comissoes/internal/venda"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type contador struct{ n int }

func (c *contador) Invalidar(context.Context, string) error {
	c.n++
	return nil
}

func montar(t *testing.T) (*gorm.DB, func(usuarioID, metodo, url, corpo string) *httptest.ResponseRecorder, *contador) {
	t.Helper()
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, cliente.Migrate(database))
	require.NoError(t, comissao.Migrate(database))
	require.NoError(t, venda.Migrate(database))

	cache := &contador{}
	r := mux.NewRouter()
	venda.NewHandler(database, cache, nil).Registrar(r)
	cliente.NewHandler(database, nil).Registrar(r)

	return database, func(usuarioID, metodo, url, corpo string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(metodo, url, strings.NewReader(corpo))
		req = req.WithContext(auth.ComUsuario(req.Context(), usuarioID))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}, cache
}

func TestHandler_VendaComComissao(t *testing.T) {
	database, chamar, cache := montar(t)

	rec := chamar("u1", http.MethodPost, "/clientes", `{"nome":"Maria Souza"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cli cliente.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cli))

	corpo := `{"clienteId":"` + cli.ID + `","imovel":"Apto 12","valor":"700000","dataVenda":"2024-03-05",
		"comissao":{"valorComissaoImobiliaria":"42000","valorComissaoCorretor":"3500"}}`
	rec = chamar("u1", http.MethodPost, "/vendas", corpo)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out venda.VendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotNil(t, out.Comissao)
	assert.Equal(t, "Maria Souza", out.Venda.ClienteNome)
	assert.Equal(t, "Maria Souza", out.Comissao.Cliente)
	require.NotNil(t, out.Comissao.VendaID)
	assert.Equal(t, out.Venda.ID, *out.Comissao.VendaID)
	assert.Equal(t, comissao.StatusPendente, out.Comissao.Status)
	assert.Equal(t, 1, cache.n)

	assert.Equal(t, http.StatusNoContent, chamar("u1", http.MethodDelete, "/vendas/"+out.Venda.ID, "").Code)
	c, err := comissao.NewRepository(database).FindByID(context.Background(), "u1", out.Comissao.ID, false)
	require.NoError(t, err)
	assert.Nil(t, c.VendaID)
}

func TestHandler_VendaInvalida(t *testing.T) {
	database, chamar, _ := montar(t)

	assert.Equal(t, http.StatusBadRequest, chamar("u1", http.MethodPost, "/vendas", `{"imovel":"","dataVenda":"2024-01-01"}`).Code)
	assert.Equal(t, http.StatusBadRequest, chamar("u1", http.MethodPost, "/vendas", `{"imovel":"Casa","dataVenda":"ontem"}`).Code)
	assert.Equal(t, http.StatusBadRequest, chamar("u1", http.MethodPost, "/vendas",
		`{"clienteId":"nao-existe","imovel":"Casa","dataVenda":"2024-01-01"}`).Code)

	// comissão sem cliente é rejeitada e a venda não fica gravada
	rec := chamar("u1", http.MethodPost, "/vendas",
		`{"imovel":"Casa","dataVenda":"2024-01-01","comissao":{"valorComissaoCorretor":"10"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var n int64
	require.NoError(t, database.Model(&venda.Venda{}).Count(&n).Error)
	assert.Zero(t, n)
}
