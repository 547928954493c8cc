package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
)

// AvailabilityResult reports whether the ledger can satisfy a set of recipe
// requirements. Missing carries a human-readable description of the first
// failing requirement.
type AvailabilityResult struct {
	Available bool
	Missing   string
}

// CheckAvailability verifies every requirement of a recipe against current
// stock at the given order quantity. It is read-only and short-circuits on
// the first failure, walking requirements in their stored order so the
// reported failure is deterministic.
func (l *StockLedger) CheckAvailability(requirements []models.RecipeIngredient, multiplier int) (AvailabilityResult, error) {
	for _, req := range requirements {
		ing, err := l.Find(req.IngredientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AvailabilityResult{
					Available: false,
					Missing:   fmt.Sprintf("ingredient %s not found", req.IngredientID),
				}, nil
			}
			return AvailabilityResult{}, err
		}

		required := req.Quantity * float64(multiplier)
		if ing.Quantity < required {
			return AvailabilityResult{
				Available: false,
				Missing: fmt.Sprintf("%s insufficient (available: %v, required: %v)",
					ing.Name, ing.Quantity, required),
			}, nil
		}
	}

	return AvailabilityResult{Available: true}, nil
}
