package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItem struct {
	ID        string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Cart      *ShoppingCart `gorm:"foreignKey:CartID"`
	CartID    string        `gorm:"size:36;not null;uniqueIndex:idx_cart_product"`
	Product   *Product      `gorm:"foreignKey:ProductID"`
	ProductID string        `gorm:"size:36;not null;uniqueIndex:idx_cart_product"`
	Quantity  int           `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
