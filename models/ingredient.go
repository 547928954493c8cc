package models

import "time"

// Ingredient is one row of the stock ledger. Quantity is only ever mutated
// through the ledger's decrement/increment primitives and never goes negative.
type Ingredient struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"type:varchar(50);not null" json:"unit"`
	Minimum   float64   `gorm:"not null" json:"minimum"`
	Category  string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// IsLowStock reports whether the ingredient is at or below its minimum.
func (i *Ingredient) IsLowStock() bool {
	return i.Quantity <= i.Minimum
}
