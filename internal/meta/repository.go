// internal/meta/repository.go
package meta

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMetaNaoEncontrada = errors.New("meta não encontrada")
	ErrMetaInvalida      = errors.New("meta inválida")
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func Validar(m *Meta) error {
	if m.Mes < MesAnual || m.Mes > 12 {
		return fmt.Errorf("%w: mês deve estar entre 0 (anual) e 12", ErrMetaInvalida)
	}
	if m.Ano < 2000 || m.Ano > 2100 {
		return fmt.Errorf("%w: ano fora do intervalo", ErrMetaInvalida)
	}
	if m.MetaVendas.IsNegative() || m.MetaComissao.IsNegative() {
		return fmt.Errorf("%w: valores não podem ser negativos", ErrMetaInvalida)
	}
	return nil
}

// Salvar grava a meta fazendo upsert por (usuario, mes, ano) e devolve o registro persistido.
func (r *Repository) Salvar(ctx context.Context, m *Meta) (*Meta, error) {
	if err := Validar(m); err != nil {
		return nil, err
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "mes"}, {Name: "ano"}},
		DoUpdates: clause.AssignmentColumns([]string{"meta_vendas", "meta_comissao", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.Buscar(ctx, m.UsuarioID, m.Mes, m.Ano)
}

func (r *Repository) Buscar(ctx context.Context, usuarioID string, mes, ano int) (*Meta, error) {
	var m Meta
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND mes = ? AND ano = ?", usuarioID, mes, ano).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMetaNaoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListarAno devolve as metas mensais e a anual de um ano, ordenadas por mês.
func (r *Repository) ListarAno(ctx context.Context, usuarioID string, ano int) ([]Meta, error) {
	var list []Meta
	err := r.DB.WithContext(ctx).
		Where("usuario_id = ? AND ano = ?", usuarioID, ano).
		Order("mes ASC").
		Find(&list).Error
	return list, err
}
