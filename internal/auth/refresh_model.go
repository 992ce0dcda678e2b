package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken guarda apenas o hash do valor entregue no cookie.
// Tokens renovados a partir do mesmo login compartilham a Familia.
type RefreshToken struct {
	ID         string     `gorm:"primaryKey;size:36"`
	UsuarioID  string     `gorm:"size:36;not null;index"`
	Familia    string     `gorm:"size:36;not null;index"`
	Hash       string     `gorm:"size:64;not null;uniqueIndex"`
	ExpiraEm   time.Time  `gorm:"not null;index"`
	RevogadoEm *time.Time `gorm:"index"`
	CreatedAt  time.Time
}

func (t *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t *RefreshToken) valido(agora time.Time) bool {
	return t.RevogadoEm == nil && agora.Before(t.ExpiraEm)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RefreshToken{})
}
