package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records a completed (simulated) subscription purchase. The
// active tier consulted by the entitlement engine lives in the key-value
// store; these rows are the purchase history.
type Subscription struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID        string    `gorm:"size:50;not null" json:"plan_id"`
	BillingCycle  string    `gorm:"size:20;not null" json:"billing_cycle"`
	AmountINR     float64   `gorm:"not null" json:"amount_inr"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	Status        string    `gorm:"not null;default:'active';size:50" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
}
