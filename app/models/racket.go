package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Racket struct {
	ID           string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID    string   `gorm:"size:36;not null;uniqueIndex"`
	Product      *Product `gorm:"foreignKey:ProductID"`
	Balance      string   `gorm:"size:30;index"`
	Stiffness    string   `gorm:"size:30;index"`
	Weight       string   `gorm:"size:30"`
	Length       string   `gorm:"size:30"`
	PlayerLevel  string   `gorm:"size:50"`
	PlayingStyle string   `gorm:"size:50"`
	Line         string   `gorm:"size:100"`
	Technology   string   `gorm:"size:255"`
	MaxTension   string   `gorm:"size:30"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	BalanceHeadHeavy = "HEAD_HEAVY"
	BalanceEven      = "EVEN"
	BalanceHeadLight = "HEAD_LIGHT"
)

const (
	StiffnessFlexible   = "FLEXIBLE"
	StiffnessMedium     = "MEDIUM"
	StiffnessStiff      = "STIFF"
	StiffnessExtraStiff = "EXTRA_STIFF"
)

var balances = map[string]bool{
	BalanceHeadHeavy: true,
	BalanceEven:      true,
	BalanceHeadLight: true,
}

var stiffnesses = map[string]bool{
	StiffnessFlexible:   true,
	StiffnessMedium:     true,
	StiffnessStiff:      true,
	StiffnessExtraStiff: true,
}

func ValidBalance(b string) bool {
	return balances[strings.ToUpper(b)]
}

func ValidStiffness(s string) bool {
	return stiffnesses[strings.ToUpper(s)]
}

func (r *Racket) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
