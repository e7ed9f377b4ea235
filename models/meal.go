package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a single logged meal. Diet marks it as adherent to the
// owner's diet; Date is the client-supplied time the meal was eaten.
type Meal struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Diet        bool       `json:"diet" gorm:"not null"`
	Date        time.Time  `json:"date" gorm:"not null"`
	UserID      string     `json:"user_id" gorm:"type:uuid;index;not null"` // FK → users.id
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
