package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/internal/audit"
	"github.com/locofly/inventory-backend/pkg/db/models"
	"github.com/locofly/inventory-backend/pkg/enums"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/metrics"
)

// Service exposes warehouse stock operations. Every write runs inside a single
// transaction together with its audit entry, so stock and history can never
// drift apart.
type Service interface {
	CreateLocation(ctx context.Context, locationID int64) (bool, error)
	ListLocations(ctx context.Context) ([]int64, error)
	ListItems(ctx context.Context, locationID int64) ([]ItemDTO, error)
	SetQuantity(ctx context.Context, input SetQuantityInput) (*MutationResult, error)
	AdjustQuantity(ctx context.Context, input AdjustQuantityInput) (*MutationResult, error)
	DeleteItem(ctx context.Context, input DeleteItemInput) (*MutationResult, error)
	FindLocationsForItem(ctx context.Context, itemName string) ([]LocationStockDTO, error)
	ShortageReport(ctx context.Context, threshold *int) ([]ShortageRowDTO, error)
}

// SetQuantityInput holds the validated payload for an absolute quantity write.
type SetQuantityInput struct {
	LocationID int64
	ItemName   string
	Quantity   int
	Barcode    *string
	Note       *string
}

// AdjustQuantityInput holds the validated payload for a relative change.
type AdjustQuantityInput struct {
	LocationID int64
	ItemName   string
	Delta      int
	Note       *string
}

// DeleteItemInput identifies the record to remove.
type DeleteItemInput struct {
	LocationID int64
	ItemName   string
	Note       *string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo              Repository
	auditRepo         audit.Repository
	tx                txRunner
	mutationMetrics   *metrics.MutationMetrics
	shortageThreshold int
}

// NewService wires the inventory service. mutationMetrics may be nil.
func NewService(repo Repository, auditRepo audit.Repository, tx txRunner, mutationMetrics *metrics.MutationMetrics, shortageThreshold int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if auditRepo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if shortageThreshold < 0 {
		shortageThreshold = 0
	}
	return &service{
		repo:              repo,
		auditRepo:         auditRepo,
		tx:                tx,
		mutationMetrics:   mutationMetrics,
		shortageThreshold: shortageThreshold,
	}, nil
}

// CreateLocation registers an empty location. Calling it again for an existing
// location is a no-op; no audit entry is written either way.
func (s *service) CreateLocation(ctx context.Context, locationID int64) (bool, error) {
	if locationID <= 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}
	created, err := s.repo.CreateLocation(ctx, locationID)
	if err != nil {
		return false, storeError(err)
	}
	return created, nil
}

func (s *service) ListLocations(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return ids, nil
}

func (s *service) ListItems(ctx context.Context, locationID int64) ([]ItemDTO, error) {
	if locationID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}
	exists, err := s.repo.LocationExists(ctx, locationID)
	if err != nil {
		return nil, storeError(err)
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("location %d not found", locationID))
	}
	records, err := s.repo.ListItems(ctx, locationID)
	if err != nil {
		return nil, storeError(err)
	}
	items := make([]ItemDTO, 0, len(records))
	for _, record := range records {
		items = append(items, itemDTO(record))
	}
	return items, nil
}

// SetQuantity writes an absolute quantity. A nil barcode preserves whatever
// barcode is already stored on the record.
func (s *service) SetQuantity(ctx context.Context, input SetQuantityInput) (*MutationResult, error) {
	itemName, err := normalizeItemName(input.ItemName)
	if err != nil {
		return nil, err
	}
	if input.LocationID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	var result *MutationResult
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		existing, err := repo.GetForUpdate(ctx, input.LocationID, itemName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		action := enums.AuditActionInsert
		var previous *int
		if existing != nil {
			action = enums.AuditActionUpdate
			prev := existing.Quantity
			previous = &prev
		}

		record := &models.InventoryRecord{
			LocationID: input.LocationID,
			ItemName:   itemName,
			Quantity:   input.Quantity,
			Barcode:    input.Barcode,
		}
		if err := repo.Upsert(ctx, record); err != nil {
			return err
		}

		delta := input.Quantity
		if previous != nil {
			delta = input.Quantity - *previous
		}
		entry := &models.AuditEntry{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: previous,
			NewQuantity:      input.Quantity,
			Delta:            delta,
			Action:           action,
			Note:             input.Note,
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return err
		}

		result = &MutationResult{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: previous,
			NewQuantity:      input.Quantity,
			Delta:            delta,
			Action:           action,
			Applied:          true,
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	s.mutationMetrics.IncApplied(result.Action.String())
	return result, nil
}

// AdjustQuantity applies a relative change. A missing record is created with a
// baseline of zero before the delta is applied. The resulting quantity is
// floored at zero; the audit entry still records the requested delta.
func (s *service) AdjustQuantity(ctx context.Context, input AdjustQuantityInput) (*MutationResult, error) {
	itemName, err := normalizeItemName(input.ItemName)
	if err != nil {
		return nil, err
	}
	if input.LocationID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}
	if input.Delta == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delta must be non-zero")
	}

	var result *MutationResult
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		existing, err := repo.GetForUpdate(ctx, input.LocationID, itemName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		current := 0
		var previous *int
		var barcode *string
		if existing != nil {
			current = existing.Quantity
			prev := existing.Quantity
			previous = &prev
			barcode = existing.Barcode
		}

		next := current + input.Delta
		clamped := false
		if next < 0 {
			next = 0
			clamped = true
		}

		record := &models.InventoryRecord{
			LocationID: input.LocationID,
			ItemName:   itemName,
			Quantity:   next,
			Barcode:    barcode,
		}
		if err := repo.Upsert(ctx, record); err != nil {
			return err
		}

		entry := &models.AuditEntry{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: previous,
			NewQuantity:      next,
			Delta:            input.Delta,
			Action:           enums.AuditActionAdjust,
			Note:             input.Note,
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return err
		}

		result = &MutationResult{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: previous,
			NewQuantity:      next,
			Delta:            input.Delta,
			Action:           enums.AuditActionAdjust,
			Clamped:          clamped,
			Applied:          true,
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	s.mutationMetrics.IncApplied(enums.AuditActionAdjust.String())
	if result.Clamped {
		s.mutationMetrics.IncClamped()
	}
	return result, nil
}

// DeleteItem removes the record. Deleting an absent record is a no-op that
// writes no audit entry.
func (s *service) DeleteItem(ctx context.Context, input DeleteItemInput) (*MutationResult, error) {
	itemName, err := normalizeItemName(input.ItemName)
	if err != nil {
		return nil, err
	}
	if input.LocationID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}

	var result *MutationResult
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		existing, err := repo.GetForUpdate(ctx, input.LocationID, itemName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = &MutationResult{
				LocationID: input.LocationID,
				ItemName:   itemName,
				Action:     enums.AuditActionDelete,
				Applied:    false,
			}
			return nil
		}
		if err != nil {
			return err
		}

		if err := repo.Delete(ctx, input.LocationID, itemName); err != nil {
			return err
		}

		prev := existing.Quantity
		entry := &models.AuditEntry{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: &prev,
			NewQuantity:      0,
			Delta:            -existing.Quantity,
			Action:           enums.AuditActionDelete,
			Note:             input.Note,
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return err
		}

		result = &MutationResult{
			LocationID:       input.LocationID,
			ItemName:         itemName,
			PreviousQuantity: &prev,
			NewQuantity:      0,
			Delta:            -existing.Quantity,
			Action:           enums.AuditActionDelete,
			Applied:          true,
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	if result.Applied {
		s.mutationMetrics.IncApplied(enums.AuditActionDelete.String())
	}
	return result, nil
}

func (s *service) FindLocationsForItem(ctx context.Context, itemName string) ([]LocationStockDTO, error) {
	name, err := normalizeItemName(itemName)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.FindLocationsForItem(ctx, name)
	if err != nil {
		return nil, storeError(err)
	}
	stocks := make([]LocationStockDTO, 0, len(records))
	for _, record := range records {
		stocks = append(stocks, locationStockDTO(record))
	}
	return stocks, nil
}

// ShortageReport lists items at or below the threshold, scarcest first. A nil
// threshold falls back to the configured default.
func (s *service) ShortageReport(ctx context.Context, threshold *int) ([]ShortageRowDTO, error) {
	limit := s.shortageThreshold
	if threshold != nil {
		if *threshold < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "threshold cannot be negative")
		}
		limit = *threshold
	}
	records, err := s.repo.ShortageReport(ctx, limit)
	if err != nil {
		return nil, storeError(err)
	}
	rows := make([]ShortageRowDTO, 0, len(records))
	for _, record := range records {
		rows = append(rows, shortageRowDTO(record))
	}
	return rows, nil
}

func normalizeItemName(itemName string) (string, error) {
	name := strings.TrimSpace(itemName)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	return name, nil
}

// storeError passes coded errors through and wraps raw database failures so
// controllers surface them as dependency outages rather than internal errors.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "record not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "inventory store unavailable")
}
