package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/utils"
)

// FulfillmentService turns a recipe id + quantity into a persisted order and
// the matching ledger deduction. The deduction and the order row are written
// in one transaction; the low-stock check runs afterwards off the request
// path and can never fail the order.
type FulfillmentService struct {
	db       *gorm.DB
	ledger   *StockLedger
	notifier *AlertNotifier
	loc      *time.Location
}

func NewFulfillmentService(db *gorm.DB, notifier *AlertNotifier, loc *time.Location) *FulfillmentService {
	return &FulfillmentService{
		db:       db,
		ledger:   NewStockLedger(db),
		notifier: notifier,
		loc:      loc,
	}
}

// PlaceOrder fulfills an order for quantity units of the given recipe.
// Failure modes: RECIPE_NOT_FOUND when the recipe id does not resolve,
// INGREDIENT_INSUFFICIENT when stock cannot cover the requirements. Either
// way the ledger is left untouched.
func (s *FulfillmentService) PlaceOrder(recipeID string, quantity int) (*models.Order, error) {
	var recipe models.Recipe
	err := s.db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&recipe, "id = ?", recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(utils.CodeRecipeNotFound, "")
		}
		return nil, err
	}

	availability, err := s.ledger.CheckAvailability(recipe.Ingredients, quantity)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, utils.BadRequest(utils.CodeIngredientInsufficient, availability.Missing)
	}

	now := time.Now().In(s.loc)
	order := models.Order{
		ID:         generateOrderID(),
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		Category:   recipe.Category,
		Quantity:   quantity,
		Total:      recipe.Price * float64(quantity),
		Date:       now.Format("2006-01-02"),
		Time:       now.Format("15:04"),
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Each decrement is conditional, so a concurrent order that won the race
	// for the same stock turns into a conflict here instead of a negative
	// quantity. Rolling back undoes any deductions already applied.
	txLedger := s.ledger.WithTx(tx)
	for _, req := range recipe.Ingredients {
		amount := req.Quantity * float64(quantity)
		if err := txLedger.Decrement(req.IngredientID, amount); err != nil {
			tx.Rollback()
			if errors.Is(err, ErrStockConflict) {
				return nil, utils.BadRequest(utils.CodeIngredientInsufficient,
					fmt.Sprintf("ingredient %s no longer has enough stock", req.IngredientID))
			}
			return nil, err
		}
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.Internal(utils.CodeOrderCreateError, "")
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.Internal(utils.CodeOrderCreateError, "")
	}

	// Fire-and-forget: the notifier worker picks this up on its own goroutine.
	if s.notifier != nil {
		s.notifier.Enqueue()
	}

	return &order, nil
}

func generateOrderID() string {
	// Time-based like the original order numbering, with a short random
	// suffix so two orders in the same millisecond stay unique.
	return fmt.Sprintf("ord-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
