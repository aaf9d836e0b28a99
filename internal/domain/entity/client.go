package entity

import (
	"time"

	"gorm.io/gorm"
)

// Client represents an invoiced customer of the business.
type Client struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Company      string         `gorm:"size:255;not null" json:"company"`
	Street       string         `gorm:"size:255;not null" json:"street"`
	ZipCode      string         `gorm:"size:20;not null" json:"zip_code"`
	City         string         `gorm:"size:255;not null" json:"city"`
	Country      string         `gorm:"size:100;not null;default:Switzerland" json:"country"`
	Email        string         `gorm:"size:255" json:"email"`
	Phone        string         `gorm:"size:50" json:"phone"`
	InternalCode string         `gorm:"size:100" json:"internal_code"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:ClientID" json:"-"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
