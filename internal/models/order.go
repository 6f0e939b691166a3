package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Order is the terminal record of a simulated shop checkout. Items holds a
// denormalized snapshot of the cart lines (name, quantity, unit price) as
// they were at purchase time.
type Order struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderRef      string         `gorm:"size:20;not null;uniqueIndex" json:"order_ref"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalINR      float64        `gorm:"not null" json:"total_inr"`
	PaymentMethod string         `gorm:"size:20;not null" json:"payment_method"`
	ShippingName  string         `gorm:"size:100" json:"shipping_name"`
	ShippingCity  string         `gorm:"size:100" json:"shipping_city"`
	Items         datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	CreatedAt     time.Time      `json:"created_at"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
}
