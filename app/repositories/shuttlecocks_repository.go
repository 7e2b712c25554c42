package repositories

import (
	"context"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"gorm.io/gorm"
)

type ShuttlecockFilter struct {
	Brands       []string
	ShuttleTypes []string
	Speeds       []int
	PageSort
}

type ShuttlecockRepositoryImpl interface {
	List(ctx context.Context, filter ShuttlecockFilter) ([]models.Shuttlecock, int64, error)
	GetByID(ctx context.Context, id string) (*models.Shuttlecock, error)
	Create(ctx context.Context, product *models.Product) error
	CreateBulk(ctx context.Context, products []models.Product) error
}

type shuttlecockRepository struct {
	db *gorm.DB
}

func NewShuttlecockRepository(db *gorm.DB) ShuttlecockRepositoryImpl {
	return &shuttlecockRepository{db}
}

func (r *shuttlecockRepository) filtered(ctx context.Context, f ShuttlecockFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Shuttlecock{}).
		Joins("JOIN products ON products.id = shuttlecocks.product_id")
	q = filterBrands(q, f.Brands)
	q = filterContains(q, "shuttlecocks.shuttle_type", f.ShuttleTypes)
	if len(f.Speeds) > 0 {
		q = q.Where("shuttlecocks.speed IN ?", f.Speeds)
	}
	return q
}

func (r *shuttlecockRepository) List(ctx context.Context, f ShuttlecockFilter) ([]models.Shuttlecock, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shuttlecocks []models.Shuttlecock
	err := f.PageSort.apply(r.filtered(ctx, f)).
		Preload("Product").
		Find(&shuttlecocks).Error
	if err != nil {
		return nil, 0, err
	}
	return shuttlecocks, total, nil
}

func (r *shuttlecockRepository) GetByID(ctx context.Context, id string) (*models.Shuttlecock, error) {
	var shuttlecock models.Shuttlecock
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&shuttlecock).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &shuttlecock, nil
}

func (r *shuttlecockRepository) Create(ctx context.Context, product *models.Product) error {
	product.DetailType = models.DetailShuttlecock
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *shuttlecockRepository) CreateBulk(ctx context.Context, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			products[i].DetailType = models.DetailShuttlecock
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
