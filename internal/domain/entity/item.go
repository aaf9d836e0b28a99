package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a catalog article that can be placed on invoice
// lines. References are unique so lookup-by-reference is deterministic.
// Deletes are hard deletes: a removed reference must become available
// again for creation and import.
type Item struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Reference       string          `gorm:"size:100;uniqueIndex;not null" json:"reference"`
	Description     string          `gorm:"size:255;not null" json:"description"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DefaultQuantity decimal.Decimal `gorm:"type:decimal(12,2);not null;default:1" json:"default_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
