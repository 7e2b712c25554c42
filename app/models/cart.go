package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingCart struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CustomerID string `gorm:"size:36;not null;uniqueIndex"`
	Customer   *User  `gorm:"foreignKey:CustomerID"`
	CartItems  []CartItem `gorm:"foreignKey:CartID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *ShoppingCart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
