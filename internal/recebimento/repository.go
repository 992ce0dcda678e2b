// internal/recebimento/repository.go
package recebimento

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrRecebimentoNaoEncontrado = errors.New("recebimento não encontrado")

// Repository encapsula o acesso a dados de recebimentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
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

func (r *Repository) Create(ctx context.Context, rec *Recebimento) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

// ListByComissao busca os recebimentos de uma comissão do corretor, do mais antigo ao mais novo.
func (r *Repository) ListByComissao(ctx context.Context, usuarioID, comissaoID string) ([]Recebimento, error) {
	var recs []Recebimento
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND comissao_id = ?", usuarioID, comissaoID).
		Order("data ASC").
		Find(&recs).Error
	return recs, err
}

// ListByComissoes agrupa por comissão os recebimentos de várias comissões de uma vez.
func (r *Repository) ListByComissoes(ctx context.Context, usuarioID string, comissaoIDs []string) (map[string][]Recebimento, error) {
	out := make(map[string][]Recebimento, len(comissaoIDs))
	if len(comissaoIDs) == 0 {
		return out, nil
	}
	var recs []Recebimento
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND comissao_id IN ?", usuarioID, comissaoIDs).
		Order("data ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		out[rec.ComissaoID] = append(out[rec.ComissaoID], rec)
	}
	return out, nil
}

// DeleteByID apaga um recebimento; retorna ErrRecebimentoNaoEncontrado se nada foi apagado.
func (r *Repository) DeleteByID(ctx context.Context, usuarioID, comissaoID, id string) error {
	res := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND comissao_id = ?", usuarioID, comissaoID).
		Delete(&Recebimento{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecebimentoNaoEncontrado
	}
	return nil
}

// DeleteByComissao apaga todos os recebimentos de uma comissão.
func (r *Repository) DeleteByComissao(ctx context.Context, usuarioID, comissaoID string) error {
	return r.DB.WithContext(ctx).
		Where("usuario_id = ? AND comissao_id = ?", usuarioID, comissaoID).
		Delete(&Recebimento{}).Error
}
