package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/locofly/inventory-backend/pkg/db/models"
)

// Repository manages persistence for inventory records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListLocations(ctx context.Context) ([]int64, error)
	CreateLocation(ctx context.Context, locationID int64) (bool, error)
	LocationExists(ctx context.Context, locationID int64) (bool, error)
	Get(ctx context.Context, locationID int64, itemName string) (*models.InventoryRecord, error)
	GetForUpdate(ctx context.Context, locationID int64, itemName string) (*models.InventoryRecord, error)
	ListItems(ctx context.Context, locationID int64) ([]models.InventoryRecord, error)
	Upsert(ctx context.Context, record *models.InventoryRecord) error
	Delete(ctx context.Context, locationID int64, itemName string) error
	FindLocationsForItem(ctx context.Context, itemName string) ([]models.InventoryRecord, error)
	ShortageReport(ctx context.Context, threshold int) ([]models.InventoryRecord, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListLocations(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Distinct().
		Order("location_id ASC").
		Pluck("location_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateLocation inserts the placeholder row that marks the location as
// existing. A location that already has any record, placeholder or stocked,
// is left untouched. Returns false when the location was already present.
func (r *repository) CreateLocation(ctx context.Context, locationID int64) (bool, error) {
	exists, err := r.LocationExists(ctx, locationID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	record := models.InventoryRecord{
		LocationID: locationID,
		ItemName:   "",
		Quantity:   0,
		UpdatedAt:  time.Now().UTC(),
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) LocationExists(ctx context.Context, locationID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where("location_id = ?", locationID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Get(ctx context.Context, locationID int64, itemName string) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	if err := r.db.WithContext(ctx).
		First(&record, "location_id = ? AND item_name = ?", locationID, itemName).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetForUpdate locks the row for the remainder of the transaction. The lock
// clause only applies on Postgres; SQLite serializes writers on its own.
func (r *repository) GetForUpdate(ctx context.Context, locationID int64, itemName string) (*models.InventoryRecord, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var record models.InventoryRecord
	if err := tx.First(&record, "location_id = ? AND item_name = ?", locationID, itemName).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) ListItems(ctx context.Context, locationID int64) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND item_name <> ''", locationID).
		Order("item_name ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert writes the record, updating quantity and timestamp on conflict. The
// barcode column is only rewritten when the incoming record carries one, so a
// nil barcode never erases a stored value.
func (r *repository) Upsert(ctx context.Context, record *models.InventoryRecord) error {
	record.UpdatedAt = time.Now().UTC()
	assignments := map[string]any{
		"quantity":   record.Quantity,
		"updated_at": record.UpdatedAt,
	}
	if record.Barcode != nil {
		assignments["barcode"] = *record.Barcode
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}, {Name: "item_name"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(record).Error
}

func (r *repository) Delete(ctx context.Context, locationID int64, itemName string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ? AND item_name = ?", locationID, itemName).
		Delete(&models.InventoryRecord{}).Error
}

func (r *repository) FindLocationsForItem(ctx context.Context, itemName string) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("item_name = ?", itemName).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) ShortageReport(ctx context.Context, threshold int) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("item_name <> '' AND quantity <= ?", threshold).
		Order("quantity ASC, updated_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
