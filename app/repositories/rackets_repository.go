package repositories

import (
	"context"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

type RacketFilter struct {
	Brands      []string
	Weights     []string
	Balances    []string
	Stiffnesses []string
	PageSort
}

type RacketRepositoryImpl interface {
	List(ctx context.Context, filter RacketFilter) ([]models.Racket, int64, error)
	GetByID(ctx context.Context, id string) (*models.Racket, error)
	Create(ctx context.Context, product *models.Product) error
	CreateBulk(ctx context.Context, products []models.Product) error
}

type racketRepository struct {
	db *gorm.DB
}

func NewRacketRepository(db *gorm.DB) RacketRepositoryImpl {
	return &racketRepository{db}
}

func (r *racketRepository) filtered(ctx context.Context, f RacketFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Racket{}).
		Joins("JOIN products ON products.id = rackets.product_id")
	q = filterBrands(q, f.Brands)
	q = filterContains(q, "rackets.weight", f.Weights)
	if len(f.Balances) > 0 {
		q = q.Where("rackets.balance IN ?", f.Balances)
	}
	if len(f.Stiffnesses) > 0 {
		q = q.Where("rackets.stiffness IN ?", f.Stiffnesses)
	}
	return q
}

func (r *racketRepository) List(ctx context.Context, f RacketFilter) ([]models.Racket, int64, error) {
	// the count reflects the filter, never the page
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rackets []models.Racket
	err := f.PageSort.apply(r.filtered(ctx, f)).
		Preload("Product").
		Find(&rackets).Error
	if err != nil {
		return nil, 0, err
	}
	return rackets, total, nil
}

func (r *racketRepository) GetByID(ctx context.Context, id string) (*models.Racket, error) {
	var racket models.Racket
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&racket).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &racket, nil
}

func (r *racketRepository) Create(ctx context.Context, product *models.Product) error {
	product.DetailType = models.DetailRacket
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *racketRepository) CreateBulk(ctx context.Context, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			products[i].DetailType = models.DetailRacket
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
