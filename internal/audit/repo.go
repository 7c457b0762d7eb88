package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/pkg/db/models"
	"github.com/locofly/inventory-backend/pkg/pagination"
)

// Repository manages persistence for audit entries. Entries are append-only;
// there is no update or delete surface.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context, filter ListFilter) ([]models.AuditEntry, error)
}

// ListFilter narrows audit queries. Zero values mean "no filter".
type ListFilter struct {
	LocationID int64
	ItemName   string
	Since      time.Time
	Until      time.Time
	Cursor     *pagination.Cursor
	Limit      int
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an audit repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.AuditEntry, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditEntry{})
	if filter.LocationID > 0 {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.ItemName != "" {
		query = query.Where("item_name = ?", filter.ItemName)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		query = query.Where("created_at <= ?", filter.Until)
	}
	if filter.Cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			filter.Cursor.CreatedAt, filter.Cursor.CreatedAt, filter.Cursor.ID,
		)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entries []models.AuditEntry
	if err := query.
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
