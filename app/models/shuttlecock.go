package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shuttlecock struct {
	ID          string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID   string   `gorm:"size:36;not null;uniqueIndex"`
	Product     *Product `gorm:"foreignKey:ProductID"`
	ShuttleType string   `gorm:"size:50;index"`
	Speed       int      `gorm:"index"`
	NoPerTube   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Shuttlecock) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
