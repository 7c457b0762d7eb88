package inventory

import (
	"time"

	"github.com/locofly/inventory-backend/pkg/db/models"
	"github.com/locofly/inventory-backend/pkg/enums"
)

// ItemDTO is the read shape for one item held at a location.
type ItemDTO struct {
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Barcode   *string   `json:"barcode,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationStockDTO is the read shape for one location holding an item.
type LocationStockDTO struct {
	LocationID int64     `json:"location_id"`
	Quantity   int       `json:"quantity"`
	Barcode    *string   `json:"barcode,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ShortageRowDTO is one row of the shortage report.
type ShortageRowDTO struct {
	LocationID int64     `json:"location_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MutationResult describes the outcome of a write. Applied is false when a
// delete targeted a record that did not exist. Clamped is true when an
// adjustment would have gone below zero and was floored instead.
type MutationResult struct {
	LocationID       int64             `json:"location_id"`
	ItemName         string            `json:"item_name"`
	PreviousQuantity *int              `json:"previous_quantity"`
	NewQuantity      int               `json:"new_quantity"`
	Delta            int               `json:"delta"`
	Action           enums.AuditAction `json:"action"`
	Clamped          bool              `json:"clamped"`
	Applied          bool              `json:"applied"`
}

func itemDTO(record models.InventoryRecord) ItemDTO {
	return ItemDTO{
		ItemName:  record.ItemName,
		Quantity:  record.Quantity,
		Barcode:   record.Barcode,
		UpdatedAt: record.UpdatedAt,
	}
}

func locationStockDTO(record models.InventoryRecord) LocationStockDTO {
	return LocationStockDTO{
		LocationID: record.LocationID,
		Quantity:   record.Quantity,
		Barcode:    record.Barcode,
		UpdatedAt:  record.UpdatedAt,
	}
}

func shortageRowDTO(record models.InventoryRecord) ShortageRowDTO {
	return ShortageRowDTO{
		LocationID: record.LocationID,
		ItemName:   record.ItemName,
		Quantity:   record.Quantity,
		UpdatedAt:  record.UpdatedAt,
	}
}
