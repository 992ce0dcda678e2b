// internal/venda/repository.go
package venda

import (
	"errors"

	"gorm.io/gorm"
)

var ErrVendaNaoEncontrada = errors.New("venda não encontrada")

type Repository interface {
	Criar(db *gorm.DB, v *Venda) error
	ListarPorUsuario(db *gorm.DB, usuarioID string) ([]Venda, error)
	BuscarPorID(db *gorm.DB, usuarioID, id string) (*Venda, error)
	Atualizar(db *gorm.DB, v *Venda) error
	Deletar(db *gorm.DB, usuarioID, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, v *Venda) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID string) ([]Venda, error) {
	vendas := []Venda{}
	err := db.Where("usuario_id = ?", usuarioID).Order("data_venda DESC").Find(&vendas).Error
	return vendas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, usuarioID, id string) (*Venda, error) {
	var v Venda
	err := db.Where("usuario_id = ? AND id = ?", usuarioID, id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVendaNaoEncontrada
	}
	return &v, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, v *Venda) error {
	return db.Save(v).Error
}

// Deletar remove a venda. Comissões ligadas a ela ficam, sem a referência.
func (r *repositoryImpl) Deletar(db *gorm.DB, usuarioID, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("comissoes").
			Where("usuario_id = ? AND venda_id = ?", usuarioID, id).
			Update("venda_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("usuario_id = ?", usuarioID).Delete(&Venda{ID: id})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVendaNaoEncontrada
		}
		return nil
	})
}
