package repositories

import (
	"context"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

type ShoeFilter struct {
	Brands         []string
	Sizes          []string
	AvailableSizes []string
	PageSort
}

type ShoeRepositoryImpl interface {
	List(ctx context.Context, filter ShoeFilter) ([]models.Shoes, int64, error)
	GetByID(ctx context.Context, id string) (*models.Shoes, error)
	Create(ctx context.Context, product *models.Product) error
	CreateBulk(ctx context.Context, products []models.Product) error
}

type shoeRepository struct {
	db *gorm.DB
}

func NewShoeRepository(db *gorm.DB) ShoeRepositoryImpl {
	return &shoeRepository{db}
}

func (r *shoeRepository) filtered(ctx context.Context, f ShoeFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Shoes{}).
		Joins("JOIN products ON products.id = shoes.product_id")
	q = filterBrands(q, f.Brands)
	if len(f.Sizes) > 0 {
		q = q.Where("shoes.size IN ?", f.Sizes)
	}
	// size-list membership runs in the storage query, same as every other
	// predicate, so count and page always agree
	if len(f.AvailableSizes) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM shoe_sizes WHERE shoe_sizes.shoes_id = shoes.id AND shoe_sizes.size IN ?)", f.AvailableSizes)
	}
	return q
}

func (r *shoeRepository) List(ctx context.Context, f ShoeFilter) ([]models.Shoes, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shoes []models.Shoes
	err := f.PageSort.apply(r.filtered(ctx, f)).
		Preload("Product").
		Preload("AvailableSizes").
		Find(&shoes).Error
	if err != nil {
		return nil, 0, err
	}
	return shoes, total, nil
}

func (r *shoeRepository) GetByID(ctx context.Context, id string) (*models.Shoes, error) {
	var shoe models.Shoes
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("AvailableSizes").
		Where("id = ?", id).
		First(&shoe).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &shoe, nil
}

func (r *shoeRepository) Create(ctx context.Context, product *models.Product) error {
	product.DetailType = models.DetailShoes
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *shoeRepository) CreateBulk(ctx context.Context, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			products[i].DetailType = models.DetailShoes
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
