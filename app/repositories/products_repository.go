package repositories

import (
	"context"
	"strings"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Search(ctx context.Context, keyword string, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Search(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	q := p.db.WithContext(ctx).Model(&models.Product{})

	if keyword != "" {
		searchKeyword := "%" + strings.ToLower(keyword) + "%"
		q = q.Where("LOWER(product_name) LIKE ?", searchKeyword)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
