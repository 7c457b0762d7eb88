package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/locofly/inventory-backend/pkg/db/models"
	"github.com/locofly/inventory-backend/pkg/enums"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/pagination"
)

// Service exposes read access to the audit trail. Writes happen through the
// repository inside inventory transactions; nothing here mutates history.
type Service interface {
	History(ctx context.Context, input HistoryInput) (*HistoryPage, error)
}

// HistoryInput narrows and pages the audit query.
type HistoryInput struct {
	LocationID int64
	ItemName   string
	Since      time.Time
	Until      time.Time
	Pagination pagination.Params
}

// EntryDTO is the read shape for one audit entry.
type EntryDTO struct {
	ID               uuid.UUID         `json:"id"`
	LocationID       int64             `json:"location_id"`
	ItemName         string            `json:"item_name"`
	PreviousQuantity *int              `json:"previous_quantity"`
	NewQuantity      int               `json:"new_quantity"`
	Delta            int               `json:"delta"`
	Action           enums.AuditAction `json:"action"`
	Note             *string           `json:"note,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// HistoryPage is one page of audit entries, newest first.
type HistoryPage struct {
	Entries    []EntryDTO `json:"entries"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type service struct {
	repo Repository
}

// NewService wires an audit service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) History(ctx context.Context, input HistoryInput) (*HistoryPage, error) {
	if input.LocationID < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id must be a positive integer")
	}
	if !input.Since.IsZero() && !input.Until.IsZero() && input.Until.Before(input.Since) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "until must not precede since")
	}

	cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(input.Pagination.Limit)
	entries, err := s.repo.List(ctx, ListFilter{
		LocationID: input.LocationID,
		ItemName:   input.ItemName,
		Since:      input.Since,
		Until:      input.Until,
		Cursor:     cursor,
		Limit:      limit + 1,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "audit store unavailable")
	}

	page := &HistoryPage{Entries: make([]EntryDTO, 0, len(entries))}
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}
	for _, entry := range entries {
		page.Entries = append(page.Entries, entryDTO(entry))
	}
	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}

func entryDTO(entry models.AuditEntry) EntryDTO {
	return EntryDTO{
		ID:               entry.ID,
		LocationID:       entry.LocationID,
		ItemName:         entry.ItemName,
		PreviousQuantity: entry.PreviousQuantity,
		NewQuantity:      entry.NewQuantity,
		Delta:            entry.Delta,
		Action:           entry.Action,
		Note:             entry.Note,
		CreatedAt:        entry.CreatedAt,
	}
}
