package meta_test

import (
	"context"
	"testing"

	"github.com/KromaEnergia/crm-comissoes/internal/meta"
	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoRepo(t *testing.T) *meta.Repository {
	t.Helper()
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, meta.Migrate(database))
	return meta.NewRepository(database)
}

func TestRepository_SalvarFazUpsert(t *testing.T) {
	ctx := context.Background()
	repo := novoRepo(t)

	primeira, err := repo.Salvar(ctx, &meta.Meta{UsuarioID: "u1", Mes: 3, Ano: 2024, MetaComissao: decimal.NewFromInt(10000)})
	require.NoError(t, err)

	segunda, err := repo.Salvar(ctx, &meta.Meta{UsuarioID: "u1", Mes: 3, Ano: 2024, MetaComissao: decimal.NewFromInt(15000), MetaVendas: decimal.NewFromInt(900000)})
	require.NoError(t, err)

	assert.Equal(t, primeira.ID, segunda.ID)
	assert.True(t, segunda.MetaComissao.Equal(decimal.NewFromInt(15000)))
	assert.True(t, segunda.MetaVendas.Equal(decimal.NewFromInt(900000)))

	_, err = repo.Salvar(ctx, &meta.Meta{UsuarioID: "u1", Mes: meta.MesAnual, Ano: 2024, MetaComissao: decimal.NewFromInt(120000)})
	require.NoError(t, err)

	lista, err := repo.ListarAno(ctx, "u1", 2024)
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.True(t, lista[0].Anual())
}

func TestRepository_Buscar(t *testing.T) {
	ctx := context.Background()
	repo := novoRepo(t)

	_, err := repo.Buscar(ctx, "u1", 1, 2024)
	assert.ErrorIs(t, err, meta.ErrMetaNaoEncontrada)

	_, err = repo.Salvar(ctx, &meta.Meta{UsuarioID: "u2", Mes: 1, Ano: 2024, MetaComissao: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = repo.Buscar(ctx, "u1", 1, 2024)
	assert.ErrorIs(t, err, meta.ErrMetaNaoEncontrada)
}

func TestValidar(t *testing.T) {
	tests := []struct {
		name string
		m    meta.Meta
		ok   bool
	}{
		{name: "mensal", m: meta.Meta{Mes: 12, Ano: 2024}, ok: true},
		{name: "anual", m: meta.Meta{Mes: 0, Ano: 2024}, ok: true},
		{name: "mes 13", m: meta.Meta{Mes: 13, Ano: 2024}},
		{name: "ano absurdo", m: meta.Meta{Mes: 1, Ano: 1900}},
		{name: "valor negativo", m: meta.Meta{Mes: 1, Ano: 2024, MetaVendas: decimal.NewFromInt(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := meta.Validar(&tt.m)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, meta.ErrMetaInvalida)
			}
		})
	}
}
