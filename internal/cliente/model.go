// internal/cliente/model.go
package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente é o comprador atendido pelo corretor.
type Cliente struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UsuarioID string    `gorm:"size:36;not null;index" json:"usuarioId"`
	Nome      string    `gorm:"size:255;not null" json:"nome"`
	Documento string    `gorm:"size:20" json:"documento"`
	Email     string    `gorm:"size:100" json:"email"`
	Telefone  string    `gorm:"size:20" json:"telefone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
