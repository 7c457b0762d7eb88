package models

// BarcodeMapping maps a scanned barcode to a stocked item name. The table is
// maintained by an external catalog process and is read-only to this service.
type BarcodeMapping struct {
	Barcode  string `gorm:"column:barcode;primaryKey"`
	ItemName string `gorm:"column:item_name;not null"`
}

// TableName pins the table name used by the original schema.
func (BarcodeMapping) TableName() string { return "barcode_mappings" }
