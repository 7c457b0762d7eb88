package barcode

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/internal/inventory"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
)

// Service resolves barcodes for the picker flow and serves the master list.
type Service interface {
	Resolve(ctx context.Context, raw string) (*ResolutionDTO, error)
	ListMappings(ctx context.Context) ([]MappingDTO, error)
}

// MappingDTO is the read shape for one barcode mapping.
type MappingDTO struct {
	Barcode  string `json:"barcode"`
	ItemName string `json:"item_name"`
}

// ResolutionDTO is the picker response: the resolved item plus every location
// that holds it, most recently touched first.
type ResolutionDTO struct {
	Barcode   string                       `json:"barcode"`
	ItemName  string                       `json:"item_name"`
	Locations []inventory.LocationStockDTO `json:"locations"`
}

type itemLocator interface {
	FindLocationsForItem(ctx context.Context, itemName string) ([]inventory.LocationStockDTO, error)
}

type service struct {
	repo    Repository
	decoder Decoder
	locator itemLocator
}

// NewService wires a barcode service. The decoder defaults to ManualEntry
// when nil.
func NewService(repo Repository, decoder Decoder, locator itemLocator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("barcode repository required")
	}
	if locator == nil {
		return nil, fmt.Errorf("item locator required")
	}
	if decoder == nil {
		decoder = ManualEntry{}
	}
	return &service{repo: repo, decoder: decoder, locator: locator}, nil
}

func (s *service) Resolve(ctx context.Context, raw string) (*ResolutionDTO, error) {
	code, err := s.decoder.Decode(ctx, raw)
	if err != nil {
		return nil, err
	}

	mapping, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("barcode %q is not mapped to any item", code))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "barcode store unavailable")
	}

	locations, err := s.locator.FindLocationsForItem(ctx, mapping.ItemName)
	if err != nil {
		return nil, err
	}

	return &ResolutionDTO{
		Barcode:   mapping.Barcode,
		ItemName:  mapping.ItemName,
		Locations: locations,
	}, nil
}

func (s *service) ListMappings(ctx context.Context) ([]MappingDTO, error) {
	mappings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "barcode store unavailable")
	}
	out := make([]MappingDTO, 0, len(mappings))
	for _, mapping := range mappings {
		out = append(out, MappingDTO{Barcode: mapping.Barcode, ItemName: mapping.ItemName})
	}
	return out, nil
}
