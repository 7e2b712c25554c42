package services

import (
	"context"
	"fmt"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
)

// CartService owns the per-customer cart state machine: the cart is created
// lazily on the first add and survives a clear; every operation on a missing
// customer, product, cart or line item reports not-found instead of
// silently doing nothing.
type CartService struct {
	cartRepo    repositories.CartRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, userRepo repositories.UserRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// GetCart returns nil, nil when the customer has no cart yet. That is a
// success for the caller, distinct from any error.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*models.ShoppingCart, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, customerID, productID string, qty int) (*models.CartItem, bool, error) {
	customer, err := s.userRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, false, helpers.NewNotFound("Customer not found")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, false, helpers.NewNotFound("Product not found")
	}

	cart, err := s.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		cart = &models.ShoppingCart{CustomerID: customerID}
		if err := s.cartRepo.Create(ctx, cart); err != nil {
			return nil, false, fmt.Errorf("failed to create cart: %w", err)
		}
	}

	item, created, err := s.cartRepo.UpsertItem(ctx, cart.ID, productID, qty)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return item, created, nil
}

func (s *CartService) SetQuantity(ctx context.Context, customerID, productID string, qty int) (*models.CartItem, error) {
	cart, err := s.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		return nil, helpers.NewNotFound("Shopping cart not found")
	}

	item, err := s.cartRepo.GetItem(ctx, cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart item: %w", err)
	}
	if item == nil {
		return nil, helpers.NewNotFound("Product not found in cart")
	}

	if err := s.cartRepo.SetItemQuantity(ctx, item.ID, qty); err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}
	item.Quantity = qty
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, productID string) error {
	cart, err := s.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		return helpers.NewNotFound("Shopping cart not found")
	}

	item, err := s.cartRepo.GetItem(ctx, cart.ID, productID)
	if err != nil {
		return fmt.Errorf("failed to fetch cart item: %w", err)
	}
	if item == nil {
		return helpers.NewNotFound("Product not found in cart")
	}

	return s.cartRepo.DeleteItem(ctx, item.ID)
}

// Clear deletes all line items but keeps the cart row, so a later fetch
// returns an empty cart rather than null.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	cart, err := s.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		return helpers.NewNotFound("Shopping cart not found")
	}

	return s.cartRepo.ClearItems(ctx, cart.ID)
}
