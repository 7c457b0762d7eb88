package models

import "time"

// InventoryRecord tracks the quantity of one item inside one warehouse location.
// A row with an empty ItemName is a placeholder that marks the location as
// existing before any stock is shelved there.
type InventoryRecord struct {
	LocationID int64     `gorm:"column:location_id;primaryKey;autoIncrement:false"`
	ItemName   string    `gorm:"column:item_name;primaryKey"`
	Quantity   int       `gorm:"column:quantity;not null;default:0"`
	Barcode    *string   `gorm:"column:barcode"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name used by the original schema.
func (InventoryRecord) TableName() string { return "inventory_records" }

// IsPlaceholder reports whether the row only marks location existence.
func (r InventoryRecord) IsPlaceholder() bool { return r.ItemName == "" }
