package barcode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/locofly/inventory-backend/pkg/db/models"
)

func setupBarcodeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	mappings := `
CREATE TABLE IF NOT EXISTS barcode_mappings (
  barcode TEXT PRIMARY KEY,
  item_name TEXT NOT NULL
);`
	require.NoError(t, db.Exec(mappings).Error)
	require.NoError(t, db.Exec("DELETE FROM barcode_mappings").Error)
	return db
}

func TestFindByCode(t *testing.T) {
	db := setupBarcodeTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.BarcodeMapping{Barcode: "850012345", ItemName: "rice"}).Error)

	mapping, err := repo.FindByCode(ctx, "850012345")
	require.NoError(t, err)
	assert.Equal(t, "rice", mapping.ItemName)

	_, err = repo.FindByCode(ctx, "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListAllOrdersByItem(t *testing.T) {
	db := setupBarcodeTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, db.Create(&models.BarcodeMapping{Barcode: "300", ItemName: "salt"}).Error)
	require.NoError(t, db.Create(&models.BarcodeMapping{Barcode: "200", ItemName: "beans"}).Error)
	require.NoError(t, db.Create(&models.BarcodeMapping{Barcode: "100", ItemName: "beans"}).Error)

	mappings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, mappings, 3)
	assert.Equal(t, "100", mappings[0].Barcode)
	assert.Equal(t, "200", mappings[1].Barcode)
	assert.Equal(t, "salt", mappings[2].ItemName)
}
