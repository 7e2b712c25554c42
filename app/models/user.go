package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username    string `gorm:"size:100;not null"`
	Mail        string `gorm:"size:100;not null;uniqueIndex"`
	PhoneNumber string `gorm:"size:20"`
	Password    string `gorm:"size:255;not null"`
	Role        string `gorm:"size:20;default:'CUSTOMER';not null"`
	Address     string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
