package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simplytrees/bacqyard-bridge/pkg/db/models"
)

// Repository persists partner-tagged order records.
type Repository interface {
	Create(ctx context.Context, record *models.OrderRecord) (*models.OrderRecord, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]models.OrderRecord, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an order record repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *models.OrderRecord) (*models.OrderRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByOrderID returns every record for a Shopify order id. Redeliveries
// are not deduplicated, so more than one row per order id is possible.
func (r *repository) FindByOrderID(ctx context.Context, orderID int64) ([]models.OrderRecord, error) {
	var records []models.OrderRecord
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
