package barcode

import (
	"context"

	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/pkg/db/models"
)

// Repository reads the barcode master list. Mappings are maintained out of
// band by the purchasing team, so there is no write surface here.
type Repository interface {
	FindByCode(ctx context.Context, code string) (*models.BarcodeMapping, error)
	ListAll(ctx context.Context) ([]models.BarcodeMapping, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a barcode repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCode(ctx context.Context, code string) (*models.BarcodeMapping, error) {
	var mapping models.BarcodeMapping
	if err := r.db.WithContext(ctx).
		First(&mapping, "barcode = ?", code).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.BarcodeMapping, error) {
	var mappings []models.BarcodeMapping
	if err := r.db.WithContext(ctx).
		Order("item_name ASC, barcode ASC").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}
