package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/pkg/db/models"
	"github.com/locofly/inventory-backend/pkg/enums"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/pagination"
)

type fakeRepo struct {
	entries    []models.AuditEntry
	failWith   error
	lastFilter ListFilter
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, entry *models.AuditEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]models.AuditEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastFilter = filter
	if filter.Limit > 0 && len(f.entries) > filter.Limit {
		return f.entries[:filter.Limit], nil
	}
	return f.entries, nil
}

func makeEntries(n int) []models.AuditEntry {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	entries := make([]models.AuditEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.AuditEntry{
			ID:          uuid.New(),
			LocationID:  1,
			ItemName:    "rice",
			NewQuantity: i,
			Delta:       1,
			Action:      enums.AuditActionAdjust,
			CreatedAt:   base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return entries
}

func TestHistoryReturnsPageWithNextCursor(t *testing.T) {
	repo := &fakeRepo{entries: makeEntries(5)}
	svc, err := NewService(repo)
	require.NoError(t, err)

	page, err := svc.History(context.Background(), HistoryInput{
		Pagination: pagination.Params{Limit: 3},
	})
	require.NoError(t, err)

	assert.Len(t, page.Entries, 3)
	require.NotEmpty(t, page.NextCursor)
	assert.Equal(t, 4, repo.lastFilter.Limit)

	cursor, err := pagination.ParseCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, repo.entries[2].ID, cursor.ID)
}

func TestHistoryOmitsCursorOnFinalPage(t *testing.T) {
	repo := &fakeRepo{entries: makeEntries(2)}
	svc, err := NewService(repo)
	require.NoError(t, err)

	page, err := svc.History(context.Background(), HistoryInput{
		Pagination: pagination.Params{Limit: 10},
	})
	require.NoError(t, err)

	assert.Len(t, page.Entries, 2)
	assert.Empty(t, page.NextCursor)
}

func TestHistoryRejectsBadCursor(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	_, err = svc.History(context.Background(), HistoryInput{
		Pagination: pagination.Params{Cursor: "garbage!!"},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestHistoryRejectsInvertedWindow(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = svc.History(context.Background(), HistoryInput{
		Since: now,
		Until: now.Add(-time.Hour),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestHistoryWrapsStoreFailure(t *testing.T) {
	svc, err := NewService(&fakeRepo{failWith: errors.New("connection reset")})
	require.NoError(t, err)

	_, err = svc.History(context.Background(), HistoryInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
