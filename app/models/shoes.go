package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shoes struct {
	ID             string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID      string   `gorm:"size:36;not null;uniqueIndex"`
	Product        *Product `gorm:"foreignKey:ProductID"`
	Color          string   `gorm:"size:50"`
	Size           string   `gorm:"size:10;index"`
	Technology     string   `gorm:"size:255"`
	AvailableSizes []ShoeSize `gorm:"foreignKey:ShoesID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ShoeSize is one selectable size of a shoe. Kept as a child table so
// membership filters run inside the storage query instead of in memory.
type ShoeSize struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ShoesID string `gorm:"size:36;not null;index:idx_shoe_size"`
	Size    string `gorm:"size:10;not null;index:idx_shoe_size"`
}

func (s *Shoes) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (s *ShoeSize) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
