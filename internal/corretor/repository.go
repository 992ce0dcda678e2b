package corretor

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCorretorNaoEncontrado = errors.New("corretor não encontrado")
	ErrEmailEmUso            = errors.New("e-mail já cadastrado")
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Corretor, error)
	BuscarPorID(db *gorm.DB, id string) (*Corretor, error)
	Salvar(db *gorm.DB, c *Corretor) error
	Atualizar(db *gorm.DB, id string, req *AtualizarRequest) (*Corretor, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func buscar(db *gorm.DB, query string, arg any) (*Corretor, error) {
	var c Corretor
	err := db.Where(query, arg).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCorretorNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Corretor, error) {
	return buscar(db, "email = ?", normalizarEmail(email))
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Corretor, error) {
	return buscar(db, "id = ?", id)
}

// Salvar cria o corretor; devolve ErrEmailEmUso se o e-mail já existir.
func (r *repositoryImpl) Salvar(db *gorm.DB, c *Corretor) error {
	c.Email = normalizarEmail(c.Email)
	var n int64
	if err := db.Model(&Corretor{}).Where("email = ?", c.Email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailEmUso
	}
	return db.Create(c).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id string, req *AtualizarRequest) (*Corretor, error) {
	c, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		c.Sobrenome = *req.Sobrenome
	}
	if req.CRECI != nil {
		c.CRECI = *req.CRECI
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if err := db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}
