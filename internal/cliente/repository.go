// internal/cliente/repository.go
package cliente

import (
	"errors"

	"gorm.io/gorm"
)

var ErrClienteNaoEncontrado = errors.New("cliente não encontrado")

type Repository interface {
	Save(db *gorm.DB, c *Cliente) error
	ListByUsuario(db *gorm.DB, usuarioID string) ([]Cliente, error)
	FindByID(db *gorm.DB, usuarioID, id string) (*Cliente, error)
	Update(db *gorm.DB, c *Cliente) error
	Delete(db *gorm.DB, usuarioID, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListByUsuario(db *gorm.DB, usuarioID string) ([]Cliente, error) {
	list := []Cliente{}
	err := db.Where("usuario_id = ?", usuarioID).Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, usuarioID, id string) (*Cliente, error) {
	var c Cliente
	err := db.Where("usuario_id = ? AND id = ?", usuarioID, id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClienteNaoEncontrado
	}
	return &c, err
}

func (r *repositoryImpl) Update(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, usuarioID, id string) error {
	res := db.Where("usuario_id = ?", usuarioID).Delete(&Cliente{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClienteNaoEncontrado
	}
	return nil
}
