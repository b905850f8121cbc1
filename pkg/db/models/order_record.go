package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderRecord is the durable trace of a partner-tagged order. total_price is
// the Shopify decimal string truncated toward zero; order_details keeps the
// full raw webhook payload for the order.
type OrderRecord struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      int64           `gorm:"column:order_id;not null"`
	Status       string          `gorm:"column:status;not null"`
	RefID        *string         `gorm:"column:ref_id"`
	TotalPrice   int64           `gorm:"column:total_price;not null;default:0"`
	OrderDetails json.RawMessage `gorm:"column:order_details;type:jsonb;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (OrderRecord) TableName() string {
	return "orders"
}
