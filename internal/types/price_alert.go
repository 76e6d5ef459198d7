package types

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlert stores a subscription to be notified when a paddle's best active
// price drops to the target.
type PriceAlert struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PaddleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"paddle_id"`
	UserEmail   string    `gorm:"column:user_email;not null;index" json:"user_email"`
	TargetPrice float64   `gorm:"column:target_price;type:decimal(10,2);not null" json:"target_price"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (PriceAlert) TableName() string { return "price_alerts" }
