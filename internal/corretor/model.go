package corretor

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Corretor é o usuário do CRM; todo dado de negócio pertence a um corretor.
type Corretor struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Sobrenome string    `gorm:"size:100" json:"sobrenome"`
	CRECI     string    `gorm:"size:20" json:"creci"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone  string    `gorm:"size:20" json:"telefone"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Corretor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Corretor{})
}
