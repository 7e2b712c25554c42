package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductName       string `gorm:"size:255;not null"`
	ImageURL          string `gorm:"size:512"`
	Price             int64  `gorm:"not null"` // stored in VND, smallest unit
	Brand             string `gorm:"size:50;index;not null"`
	Status            string `gorm:"size:50"`
	Sales             int    `gorm:"default:0"`
	Stock             int    `gorm:"not null;default:0"`
	AvailableLocation string `gorm:"size:255"`
	Description       string `gorm:"type:text"`
	DetailType        string `gorm:"size:20;index"`
	Racket            *Racket
	Shoes             *Shoes
	Shuttlecock       *Shuttlecock
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const (
	DetailRacket      = "racket"
	DetailShoes       = "shoes"
	DetailShuttlecock = "shuttlecock"
	DetailUnknown     = "unknown"
)

const (
	BrandYonex    = "YONEX"
	BrandLining   = "LINING"
	BrandVictor   = "VICTOR"
	BrandMizuno   = "MIZUNO"
	BrandKawasaki = "KAWASAKI"
	BrandFlypower = "FLYPOWER"
)

var brands = map[string]bool{
	BrandYonex:    true,
	BrandLining:   true,
	BrandVictor:   true,
	BrandMizuno:   true,
	BrandKawasaki: true,
	BrandFlypower: true,
}

func ValidBrand(b string) bool {
	return brands[strings.ToUpper(b)]
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
