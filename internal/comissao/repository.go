// internal/comissao/repository.go
package comissao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrComissaoNaoEncontrada = errors.New("comissão não encontrada")

// Repository encapsula operações de banco para Comissao.
// Toda consulta é restrita ao corretor dono do registro.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, c *Comissao) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func traduzir(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrComissaoNaoEncontrada
	}
	return err
}

// FindByID retorna a comissão do corretor; travar=true usa SELECT ... FOR UPDATE.
func (r *Repository) FindByID(ctx context.Context, usuarioID, id string, travar bool) (*Comissao, error) {
	q := r.DB.WithContext(ctx)
	if travar {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var c Comissao
	if err := q.Where("usuario_id = ?", usuarioID).First(&c, "id = ?", id).Error; err != nil {
		return nil, traduzir(err)
	}
	return &c, nil
}

// FindComRecebimentos carrega a comissão com seus recebimentos.
func (r *Repository) FindComRecebimentos(ctx context.Context, usuarioID, id string) (*Comissao, error) {
	var c Comissao
	err := r.DB.WithContext(ctx).
		Preload("Recebimentos", func(db *gorm.DB) *gorm.DB { return db.Order("data ASC") }).
		Where("usuario_id = ?", usuarioID).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, traduzir(err)
	}
	return &c, nil
}

// ListByUsuario lista as comissões do corretor, mais recentes primeiro.
func (r *Repository) ListByUsuario(ctx context.Context, usuarioID string) ([]Comissao, error) {
	var list []Comissao
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("data_venda DESC").
		Find(&list).Error
	return list, err
}

// ListByStatus lista as comissões do corretor em qualquer um dos status informados.
func (r *Repository) ListByStatus(ctx context.Context, usuarioID string, status []Status) ([]Comissao, error) {
	var list []Comissao
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND status IN ?", usuarioID, status).
		Order("data_venda DESC").
		Find(&list).Error
	return list, err
}

// Update salva os campos editáveis; status e data de pagamento só mudam via UpdateStatus.
func (r *Repository) Update(ctx context.Context, c *Comissao) error {
	res := r.DB.WithContext(ctx).
		Model(&Comissao{}).
		Where("id = ? AND usuario_id = ?", c.ID, c.UsuarioID).
		Select("venda_id", "cliente", "imovel", "valor_venda", "valor_comissao_imobiliaria",
			"valor_comissao_corretor", "data_contrato", "data_venda", "valor_venda_original",
			"valor_venda_atual", "diferenca_valor", "status_valor", "justificativa", "updated_at").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrComissaoNaoEncontrada
	}
	return nil
}

// UpdateStatus atualiza status e data_pagamento.
func (r *Repository) UpdateStatus(ctx context.Context, usuarioID, id string, status Status, dataPagamento *time.Time) error {
	res := r.DB.WithContext(ctx).
		Model(&Comissao{}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Updates(map[string]interface{}{
			"status":         status,
			"data_pagamento": dataPagamento,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrComissaoNaoEncontrada
	}
	return nil
}

// Delete remove a comissão e, na mesma transação, os seus recebimentos.
func (r *Repository) Delete(ctx context.Context, usuarioID, id string) error {
	recebimentos := recebimento.NewRepository(r.DB)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := recebimentos.WithDB(tx).DeleteByComissao(ctx, usuarioID, id); err != nil {
			return fmt.Errorf("apagar recebimentos: %w", err)
		}
		res := tx.Where("usuario_id = ?", usuarioID).Delete(&Comissao{ID: id})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrComissaoNaoEncontrada
		}
		return nil
	})
}
