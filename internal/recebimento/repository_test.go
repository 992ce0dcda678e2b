package recebimento_test

import (
	"context"
	"testing"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoRepo(t *testing.T) *recebimento.Repository {
	t.Helper()
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, recebimento.Migrate(database))
	return recebimento.NewRepository(database)
}

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_CreateEList(t *testing.T) {
	ctx := context.Background()
	repo := novoRepo(t)

	recs := []*recebimento.Recebimento{
		{ComissaoID: "c1", UsuarioID: "u1", Valor: decimal.NewFromInt(500), Data: dia(2024, 3, 10)},
		{ComissaoID: "c1", UsuarioID: "u1", Valor: decimal.NewFromInt(1000), Data: dia(2024, 3, 1)},
		{ComissaoID: "c2", UsuarioID: "u1", Valor: decimal.NewFromInt(200), Data: dia(2024, 4, 1)},
		{ComissaoID: "c1", UsuarioID: "outro", Valor: decimal.NewFromInt(999), Data: dia(2024, 4, 1)},
	}
	for _, r := range recs {
		require.NoError(t, repo.Create(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	lista, err := repo.ListByComissao(ctx, "u1", "c1")
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "2024-03-01", lista[0].Data.Format("2006-01-02"))
	assert.True(t, recebimento.Somar(lista).Equal(decimal.NewFromInt(1500)))

	agrupado, err := repo.ListByComissoes(ctx, "u1", []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Len(t, agrupado["c1"], 2)
	assert.Len(t, agrupado["c2"], 1)

	vazio, err := repo.ListByComissoes(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, vazio)
}

func TestRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := novoRepo(t)

	rec := &recebimento.Recebimento{ComissaoID: "c1", UsuarioID: "u1", Valor: decimal.NewFromInt(10), Data: dia(2024, 1, 1)}
	require.NoError(t, repo.Create(ctx, rec))

	err := repo.DeleteByID(ctx, "outro", "c1", rec.ID)
	assert.ErrorIs(t, err, recebimento.ErrRecebimentoNaoEncontrado)

	require.NoError(t, repo.DeleteByID(ctx, "u1", "c1", rec.ID))

	err = repo.DeleteByID(ctx, "u1", "c1", rec.ID)
	assert.ErrorIs(t, err, recebimento.ErrRecebimentoNaoEncontrado)
}

func TestSomarVazio(t *testing.T) {
	assert.True(t, recebimento.Somar(nil).IsZero())
}
