package comissao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComissaoDTO_ParaModelo(t *testing.T) {
	dto := ComissaoDTO{
		Cliente:               "  Silva, João ",
		Imovel:                "Apto 302",
		ValorVenda:            decimal.NewFromInt(500000),
		ValorComissaoCorretor: decimal.RequireFromString("3500.00"),
		DataVenda:             "2024-02-10",
	}

	c, err := dto.ParaModelo("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UsuarioID)
	assert.Equal(t, "Silva, João", c.Cliente)
	assert.Equal(t, StatusPendente, c.Status)
	assert.Nil(t, c.DataPagamento)
	assert.Equal(t, "2024-02-10", c.DataVenda.Format(time.DateOnly))
	// sem data de contrato, assume a data da venda
	assert.Equal(t, c.DataVenda, c.DataContrato)
}

func TestComissaoDTO_Validacao(t *testing.T) {
	base := ComissaoDTO{Cliente: "Ana", DataVenda: "2024-01-01"}

	tests := []struct {
		name string
		mut  func(d *ComissaoDTO)
	}{
		{name: "cliente vazio", mut: func(d *ComissaoDTO) { d.Cliente = " " }},
		{name: "sem data de venda", mut: func(d *ComissaoDTO) { d.DataVenda = "" }},
		{name: "data invalida", mut: func(d *ComissaoDTO) { d.DataVenda = "10/02/2024" }},
		{name: "valor negativo", mut: func(d *ComissaoDTO) { d.ValorComissaoCorretor = decimal.NewFromInt(-1) }},
		{name: "status de valor desconhecido", mut: func(d *ComissaoDTO) { d.StatusValor = "qualquer" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mut(&d)
			_, err := d.ParaModelo("u1")
			assert.ErrorIs(t, err, ErrValidacao)
		})
	}
}

func TestParseData(t *testing.T) {
	d, err := ParseData("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseData("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseData("ontem")
	assert.ErrorIs(t, err, ErrValidacao)
}
