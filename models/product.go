package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Photo     string          `json:"photo"` // URL, served elsewhere
	InOrder   bool            `gorm:"not null;default:true" json:"in_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
