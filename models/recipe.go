package models

import "time"

type Recipe struct {
	ID          string             `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string             `gorm:"type:varchar(255);not null" json:"name"`
	Category    string             `gorm:"type:varchar(100);not null" json:"category"`
	Price       float64            `gorm:"type:decimal(10,2);not null" json:"price"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ingredients"`
	CreatedAt   time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null" json:"updated_at"`
}

// RecipeIngredient is one requirement of a recipe: how much of an ingredient a
// single unit of the recipe consumes. Position keeps the stored requirement
// order so availability failures are reported deterministically.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	RecipeID     string  `gorm:"type:varchar(64);not null;index" json:"-"`
	IngredientID string  `gorm:"type:varchar(64);not null" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Position     int     `gorm:"not null;default:0" json:"-"`
}
