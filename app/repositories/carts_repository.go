package repositories

import (
	"context"
	"errors"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetByCustomerID(ctx context.Context, customerID string) (*models.ShoppingCart, error)
	GetWithItems(ctx context.Context, customerID string) (*models.ShoppingCart, error)
	Create(ctx context.Context, cart *models.ShoppingCart) error
	GetItem(ctx context.Context, cartID, productID string) (*models.CartItem, error)
	UpsertItem(ctx context.Context, cartID, productID string, qty int) (*models.CartItem, bool, error)
	SetItemQuantity(ctx context.Context, itemID string, qty int) error
	DeleteItem(ctx context.Context, itemID string) error
	ClearItems(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetByCustomerID(ctx context.Context, customerID string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetWithItems(ctx context.Context, customerID string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.db.WithContext(ctx).
		Preload("CartItems").
		Preload("CartItems.Product").
		Where("customer_id = ?", customerID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(ctx context.Context, cart *models.ShoppingCart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetItem(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpsertItem inserts a new line item or increments the quantity of an
// existing one, inside a single transaction. The (cart_id, product_id)
// unique index turns a concurrent double-insert into an error instead of a
// duplicate row.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID string, qty int) (*models.CartItem, bool, error) {
	var item models.CartItem
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}
			created = true
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&item).Update("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
			return err
		}
		return tx.First(&item, "id = ?", item.ID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &item, created, nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, itemID string, qty int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&models.CartItem{}).Error
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
