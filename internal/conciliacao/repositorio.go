package conciliacao

import (
	"context"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"gorm.io/gorm"
)

// Repositorio é a porta de persistência usada pelo serviço de conciliação.
// O serviço depende desta interface, não do gorm.
//
//go:generate mockgen -destination=mocks/mock_repositorio.go -package=mock_conciliacao -source=repositorio.go Repositorio
type Repositorio interface {
	BuscarComissao(ctx context.Context, usuarioID, id string, travar bool) (*comissao.Comissao, error)
	ListarComissoesPorStatus(ctx context.Context, usuarioID string, status []comissao.Status) ([]comissao.Comissao, error)
	ListarRecebimentos(ctx context.Context, usuarioID, comissaoID string) ([]recebimento.Recebimento, error)
	ListarRecebimentosPorComissoes(ctx context.Context, usuarioID string, comissaoIDs []string) (map[string][]recebimento.Recebimento, error)
	CriarRecebimento(ctx context.Context, rec *recebimento.Recebimento) error
	ExcluirRecebimento(ctx context.Context, usuarioID, comissaoID, id string) error
	AtualizarStatus(ctx context.Context, usuarioID, id string, status comissao.Status, dataPagamento *time.Time) error
	// Transacao executa fn com um repositório ligado a uma única transação.
	Transacao(ctx context.Context, fn func(Repositorio) error) error
}

// RepositorioGorm implementa Repositorio sobre os repositórios de comissão e recebimento.
type RepositorioGorm struct {
	db           *gorm.DB
	comissoes    *comissao.Repository
	recebimentos *recebimento.Repository
}

func NovoRepositorioGorm(db *gorm.DB) *RepositorioGorm {
	return &RepositorioGorm{
		db:           db,
		comissoes:    comissao.NewRepository(db),
		recebimentos: recebimento.NewRepository(db),
	}
}

func (r *RepositorioGorm) BuscarComissao(ctx context.Context, usuarioID, id string, travar bool) (*comissao.Comissao, error) {
	return r.comissoes.FindByID(ctx, usuarioID, id, travar)
}

func (r *RepositorioGorm) ListarComissoesPorStatus(ctx context.Context, usuarioID string, status []comissao.Status) ([]comissao.Comissao, error) {
	return r.comissoes.ListByStatus(ctx, usuarioID, status)
}

func (r *RepositorioGorm) ListarRecebimentos(ctx context.Context, usuarioID, comissaoID string) ([]recebimento.Recebimento, error) {
	return r.recebimentos.ListByComissao(ctx, usuarioID, comissaoID)
}

func (r *RepositorioGorm) ListarRecebimentosPorComissoes(ctx context.Context, usuarioID string, comissaoIDs []string) (map[string][]recebimento.Recebimento, error) {
	return r.recebimentos.ListByComissoes(ctx, usuarioID, comissaoIDs)
}

func (r *RepositorioGorm) CriarRecebimento(ctx context.Context, rec *recebimento.Recebimento) error {
	return r.recebimentos.Create(ctx, rec)
}

func (r *RepositorioGorm) ExcluirRecebimento(ctx context.Context, usuarioID, comissaoID, id string) error {
	return r.recebimentos.DeleteByID(ctx, usuarioID, comissaoID, id)
}

func (r *RepositorioGorm) AtualizarStatus(ctx context.Context, usuarioID, id string, status comissao.Status, dataPagamento *time.Time) error {
	return r.comissoes.UpdateStatus(ctx, usuarioID, id, status, dataPagamento)
}

func (r *RepositorioGorm) Transacao(ctx context.Context, fn func(Repositorio) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.comTx(tx))
	})
}

// comTx liga os repositórios de comissão e recebimento à transação tx.
func (r *RepositorioGorm) comTx(tx *gorm.DB) *RepositorioGorm {
	return &RepositorioGorm{
		db:           tx,
		comissoes:    r.comissoes.WithDB(tx),
		recebimentos: r.recebimentos.WithDB(tx),
	}
}
