package orders

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/simplytrees/bacqyard-bridge/pkg/db/models"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_id INTEGER NOT NULL,
  status TEXT NOT NULL,
  ref_id TEXT,
  total_price INTEGER NOT NULL DEFAULT 0,
  order_details TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestRepository_CreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	refID := "bq-42"
	created, err := repo.Create(ctx, &models.OrderRecord{
		OrderID:      5551,
		Status:       "paid",
		RefID:        &refID,
		TotalPrice:   42,
		OrderDetails: json.RawMessage(`{"id":5551,"total_price":"42.99"}`),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "repository assigns an id when absent")

	found, err := repo.FindByOrderID(ctx, 5551)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "paid", found[0].Status)
	require.NotNil(t, found[0].RefID)
	assert.Equal(t, "bq-42", *found[0].RefID)
	assert.JSONEq(t, `{"id":5551,"total_price":"42.99"}`, string(found[0].OrderDetails))
}

func TestRepository_RedeliveryInsertsAnotherRow(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record := func() *models.OrderRecord {
		return &models.OrderRecord{
			OrderID:      7001,
			Status:       "paid",
			TotalPrice:   10,
			OrderDetails: json.RawMessage(`{"id":7001}`),
		}
	}

	_, err := repo.Create(ctx, record())
	require.NoError(t, err)
	_, err = repo.Create(ctx, record())
	require.NoError(t, err)

	found, err := repo.FindByOrderID(ctx, 7001)
	require.NoError(t, err)
	assert.Len(t, found, 2, "no dedup on order_id")
}
