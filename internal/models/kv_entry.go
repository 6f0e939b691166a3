package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the key-value store interface with a Postgres table.
// Cart contents and active subscription tiers are persisted here.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:128" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
