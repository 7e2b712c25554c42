package repositories

import (
	"context"
	"testing"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCartFixtures(t *testing.T, db *gorm.DB) (customer models.User, product models.Product) {
	t.Helper()

	customer = models.User{Username: "demo", Mail: "demo@test.local", Password: "x"}
	require.NoError(t, db.Create(&customer).Error)

	product = models.Product{ProductName: "Astrox 99", Price: 4_800_000, Brand: models.BrandYonex, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	return customer, product
}

func TestUpsertItemIncrementsInsteadOfDuplicating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	customer, product := seedCartFixtures(t, db)

	cart := models.ShoppingCart{CustomerID: customer.ID}
	require.NoError(t, repo.Create(context.Background(), &cart))

	item, created, err := repo.UpsertItem(context.Background(), cart.ID, product.ID, 2)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, 2, item.Quantity)

	item, created, err = repo.UpsertItem(context.Background(), cart.ID, product.ID, 3)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDuplicateInsertFailsLoudly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	customer, product := seedCartFixtures(t, db)

	cart := models.ShoppingCart{CustomerID: customer.ID}
	require.NoError(t, repo.Create(context.Background(), &cart))

	first := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&first).Error)

	// the unique (cart_id, product_id) index rejects a raced second insert
	second := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.Error(t, db.Create(&second).Error)
}

func TestClearItemsKeepsCartRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	customer, product := seedCartFixtures(t, db)

	cart := models.ShoppingCart{CustomerID: customer.ID}
	require.NoError(t, repo.Create(context.Background(), &cart))
	_, _, err := repo.UpsertItem(context.Background(), cart.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, repo.ClearItems(context.Background(), cart.ID))

	stored, err := repo.GetWithItems(context.Background(), customer.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Empty(t, stored.CartItems)
}

func TestGetByCustomerIDMissingIsNotAnError(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))

	cart, err := repo.GetByCustomerID(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, cart)
}
