package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/locofly/inventory-backend/pkg/enums"
)

// AuditEntry records one immutable quantity change. PreviousQuantity is nil
// when the item did not exist at the location before the mutation. Delta holds
// the requested change, which can differ from NewQuantity-PreviousQuantity when
// an adjustment was clamped at zero.
type AuditEntry struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LocationID       int64             `gorm:"column:location_id;not null"`
	ItemName         string            `gorm:"column:item_name;not null"`
	PreviousQuantity *int              `gorm:"column:previous_quantity"`
	NewQuantity      int               `gorm:"column:new_quantity;not null"`
	Delta            int               `gorm:"column:delta;not null"`
	Action           enums.AuditAction `gorm:"column:action;type:audit_action_enum;not null"`
	Note             *string           `gorm:"column:note"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name used by the original schema.
func (AuditEntry) TableName() string { return "audit_entries" }
