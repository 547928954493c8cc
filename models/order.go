package models

import "time"

// Order is an append-only record of a fulfilled order. RecipeName, Category
// and Total are denormalized snapshots taken at creation time so the order
// history survives later edits to the recipe catalog. Date and Time are in
// the configured business timezone, not the server's local zone.
type Order struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RecipeID   string    `gorm:"type:varchar(64);not null" json:"recipe_id"`
	RecipeName string    `gorm:"type:varchar(255);not null" json:"recipe_name"`
	Category   string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Total      float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	Date       string    `gorm:"type:varchar(10);not null" json:"date"`
	Time       string    `gorm:"type:varchar(5);not null" json:"time"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
