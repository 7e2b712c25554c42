package migrations

import (
	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Product{}, &models.Racket{}, &models.Shoes{}, &models.ShoeSize{}, &models.Shuttlecock{}, &models.ShoppingCart{}, &models.CartItem{})
}
