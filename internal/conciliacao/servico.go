package conciliacao

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrValorInvalido = errors.New("valor do recebimento deve ser maior que zero")

// Servico concentra as regras de recebimento e quitação de comissões.
type Servico struct {
	repo  Repositorio
	agora func() time.Time
	log   *zap.Logger
}

type Opcao func(*Servico)

// ComRelogio troca a fonte de "agora" (usado nos testes).
func ComRelogio(f func() time.Time) Opcao {
	return func(s *Servico) { s.agora = f }
}

func ComLogger(l *zap.Logger) Opcao {
	return func(s *Servico) {
		if l != nil {
			s.log = l
		}
	}
}

func NovoServico(repo Repositorio, opts ...Opcao) *Servico {
	s := &Servico{repo: repo, agora: time.Now, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// StatusDerivado devolve o status que a soma paga implica. Uma comissão recebida
// continua recebida.
func StatusDerivado(c *comissao.Comissao, pago decimal.Decimal) comissao.Status {
	switch {
	case c.Status == comissao.StatusRecebido:
		return comissao.StatusRecebido
	case !pago.IsPositive():
		return c.Status
	case pago.GreaterThanOrEqual(c.ValorComissaoCorretor):
		return comissao.StatusRecebido
	default:
		return comissao.StatusParcial
	}
}

// AdicionarRecebimento grava um recebimento sem alterar o status da comissão.
func (s *Servico) AdicionarRecebimento(ctx context.Context, usuarioID, comissaoID string, valor decimal.Decimal, data time.Time, observacao string) (*recebimento.Recebimento, error) {
	return s.adicionar(ctx, s.repo, usuarioID, comissaoID, valor, data, observacao)
}

func (s *Servico) adicionar(ctx context.Context, repo Repositorio, usuarioID, comissaoID string, valor decimal.Decimal, data time.Time, observacao string) (*recebimento.Recebimento, error) {
	if !valor.IsPositive() {
		return nil, ErrValorInvalido
	}
	if _, err := repo.BuscarComissao(ctx, usuarioID, comissaoID, false); err != nil {
		return nil, err
	}
	if data.IsZero() {
		data = comissao.DiaCivil(s.agora())
	}
	rec := &recebimento.Recebimento{
		ComissaoID: comissaoID,
		UsuarioID:  usuarioID,
		Valor:      valor.Round(2),
		Data:       data,
		Observacao: observacao,
	}
	if err := repo.CriarRecebimento(ctx, rec); err != nil {
		return nil, fmt.Errorf("criar recebimento: %w", err)
	}
	return rec, nil
}

// SincronizarStatus recalcula o status a partir da soma dos recebimentos.
func (s *Servico) SincronizarStatus(ctx context.Context, usuarioID, comissaoID string) (*comissao.Comissao, error) {
	var out *comissao.Comissao
	err := s.repo.Transacao(ctx, func(tx Repositorio) error {
		c, err := s.sincronizar(ctx, tx, usuarioID, comissaoID)
		out = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Servico) sincronizar(ctx context.Context, repo Repositorio, usuarioID, comissaoID string) (*comissao.Comissao, error) {
	c, err := repo.BuscarComissao(ctx, usuarioID, comissaoID, true)
	if err != nil {
		return nil, err
	}
	recs, err := repo.ListarRecebimentos(ctx, usuarioID, comissaoID)
	if err != nil {
		return nil, fmt.Errorf("listar recebimentos: %w", err)
	}
	novo := StatusDerivado(c, recebimento.Somar(recs))
	if novo == c.Status {
		return c, nil
	}

	dataPagamento := c.DataPagamento
	if novo == comissao.StatusRecebido && dataPagamento == nil {
		agora := s.agora()
		dataPagamento = &agora
	}
	if err := repo.AtualizarStatus(ctx, usuarioID, comissaoID, novo, dataPagamento); err != nil {
		return nil, fmt.Errorf("atualizar status: %w", err)
	}
	s.log.Info("status da comissão atualizado",
		zap.String("comissao", comissaoID),
		zap.String("de", string(c.Status)),
		zap.String("para", string(novo)))
	c.Status, c.DataPagamento = novo, dataPagamento
	return c, nil
}

// RegistrarRecebimento adiciona o recebimento e sincroniza o status na mesma transação.
func (s *Servico) RegistrarRecebimento(ctx context.Context, usuarioID, comissaoID string, valor decimal.Decimal, data time.Time, observacao string) (*recebimento.Recebimento, *comissao.Comissao, error) {
	var (
		rec *recebimento.Recebimento
		c   *comissao.Comissao
	)
	err := s.repo.Transacao(ctx, func(tx Repositorio) error {
		var err error
		if rec, err = s.adicionar(ctx, tx, usuarioID, comissaoID, valor, data, observacao); err != nil {
			return err
		}
		c, err = s.sincronizar(ctx, tx, usuarioID, comissaoID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return rec, c, nil
}

// MarcarComoPago quita a comissão: se houver saldo, cria um recebimento com o
// valor exato que falta, datado de hoje, e marca como recebida. Roda numa única
// transação com a linha da comissão travada; chamadas repetidas não criam
// recebimentos extras nem mudam a data de pagamento original.
func (s *Servico) MarcarComoPago(ctx context.Context, usuarioID, comissaoID string) (*comissao.Comissao, error) {
	var out *comissao.Comissao
	err := s.repo.Transacao(ctx, func(tx Repositorio) error {
		c, err := tx.BuscarComissao(ctx, usuarioID, comissaoID, true)
		if err != nil {
			return err
		}
		recs, err := tx.ListarRecebimentos(ctx, usuarioID, comissaoID)
		if err != nil {
			return fmt.Errorf("listar recebimentos: %w", err)
		}

		agora := s.agora()
		pendente := c.ValorComissaoCorretor.Sub(recebimento.Somar(recs))
		if pendente.IsPositive() {
			rec := &recebimento.Recebimento{
				ComissaoID: comissaoID,
				UsuarioID:  usuarioID,
				Valor:      pendente,
				Data:       comissao.DiaCivil(agora),
				Observacao: recebimento.ObservacaoQuitacao,
			}
			if err := tx.CriarRecebimento(ctx, rec); err != nil {
				return fmt.Errorf("criar recebimento de quitação: %w", err)
			}
			s.log.Info("quitação automática",
				zap.String("comissao", comissaoID),
				zap.String("valor", pendente.StringFixed(2)))
		}

		if c.Status == comissao.StatusRecebido && c.DataPagamento != nil {
			out = c
			return nil
		}
		if err := tx.AtualizarStatus(ctx, usuarioID, comissaoID, comissao.StatusRecebido, &agora); err != nil {
			return fmt.Errorf("atualizar status: %w", err)
		}
		c.Status, c.DataPagamento = comissao.StatusRecebido, &agora
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExcluirRecebimento apaga um recebimento. O status da comissão não é revertido.
func (s *Servico) ExcluirRecebimento(ctx context.Context, usuarioID, comissaoID, recebimentoID string) error {
	return s.repo.Transacao(ctx, func(tx Repositorio) error {
		c, err := tx.BuscarComissao(ctx, usuarioID, comissaoID, true)
		if err != nil {
			return err
		}
		if err := tx.ExcluirRecebimento(ctx, usuarioID, comissaoID, recebimentoID); err != nil {
			return err
		}
		if c.Status != comissao.StatusRecebido {
			return nil
		}
		recs, err := tx.ListarRecebimentos(ctx, usuarioID, comissaoID)
		if err != nil {
			return fmt.Errorf("listar recebimentos: %w", err)
		}
		if pago := recebimento.Somar(recs); pago.LessThan(c.ValorComissaoCorretor) {
			s.log.Warn("comissão recebida ficou com saldo em aberto",
				zap.String("comissao", comissaoID),
				zap.String("pago", pago.StringFixed(2)),
				zap.String("total", c.ValorComissaoCorretor.StringFixed(2)))
		}
		return nil
	})
}

func (s *Servico) ListarRecebimentos(ctx context.Context, usuarioID, comissaoID string) ([]recebimento.Recebimento, error) {
	if _, err := s.repo.BuscarComissao(ctx, usuarioID, comissaoID, false); err != nil {
		return nil, err
	}
	return s.repo.ListarRecebimentos(ctx, usuarioID, comissaoID)
}

// ParcelasPendentes projeta as comissões pendentes/parciais com saldo em aberto,
// da venda mais recente para a mais antiga.
func (s *Servico) ParcelasPendentes(ctx context.Context, usuarioID string) ([]ParcelaPendente, error) {
	abertas, err := s.repo.ListarComissoesPorStatus(ctx, usuarioID,
		[]comissao.Status{comissao.StatusPendente, comissao.StatusParcial})
	if err != nil {
		return nil, fmt.Errorf("listar comissões em aberto: %w", err)
	}
	out := make([]ParcelaPendente, 0, len(abertas))
	if len(abertas) == 0 {
		return out, nil
	}

	ids := make([]string, len(abertas))
	for i, c := range abertas {
		ids[i] = c.ID
	}
	porComissao, err := s.repo.ListarRecebimentosPorComissoes(ctx, usuarioID, ids)
	if err != nil {
		return nil, fmt.Errorf("listar recebimentos: %w", err)
	}

	agora := s.agora()
	for _, c := range abertas {
		p := ProjetarParcela(c, porComissao[c.ID], agora)
		if p.ValorPendente.IsPositive() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b ParcelaPendente) int {
		return b.DataVenda.Compare(a.DataVenda)
	})
	return out, nil
}
