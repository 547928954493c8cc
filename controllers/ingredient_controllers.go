package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/database"
	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/services"
	"github.com/kitchify/kitchify-server/utils"
)

type IngredientController struct {
	DB     *gorm.DB
	Ledger *services.StockLedger
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db, Ledger: services.NewStockLedger(db)}
}

// GetAllIngredients -> full ledger, sorted by id
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	ingredients, err := ic.Ledger.All()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ingredients)
}

// GetLowStockIngredients -> ingredients at or below their minimum
func (ic *IngredientController) GetLowStockIngredients(c *gin.Context) {
	low, err := ic.Ledger.FindLowStock()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock ingredients", low)
}

type ingredientReq struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit" binding:"required"`
	Minimum  float64 `json:"minimum" binding:"gte=0"`
	Category string  `json:"category"`
}

func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var body ingredientReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	if _, err := ic.Ledger.Find(body.ID); err == nil {
		utils.RespondError(c, utils.BadRequest(utils.CodeIngredientCreateError,
			fmt.Sprintf("ingredient with id %s already exists", body.ID)))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, err)
		return
	}

	// Business rule carried over from the inventory workflow: a new
	// ingredient must start at or above its own minimum.
	if body.Quantity < body.Minimum {
		utils.RespondError(c, utils.BadRequest(utils.CodeValidationError,
			"initial quantity must be greater than or equal to the minimum"))
		return
	}

	ingredient := models.Ingredient{
		ID:       body.ID,
		Name:     body.Name,
		Quantity: body.Quantity,
		Unit:     body.Unit,
		Minimum:  body.Minimum,
		Category: body.Category,
	}
	if err := ic.DB.Create(&ingredient).Error; err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeIngredientCreateError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", ingredient)
}

type ingredientUpdateReq struct {
	Name     string  `json:"name" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
	Minimum  float64 `json:"minimum" binding:"gte=0"`
	Category string  `json:"category"`
}

// UpdateIngredient edits descriptive fields only. Quantity is deliberately
// not updatable here; it moves through restock and order deduction.
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id := c.Param("id")

	var body ingredientUpdateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	ingredient, err := ic.Ledger.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFound(utils.CodeIngredientNotFound, ""))
			return
		}
		utils.RespondError(c, err)
		return
	}

	ingredient.Name = body.Name
	ingredient.Unit = body.Unit
	ingredient.Minimum = body.Minimum
	ingredient.Category = body.Category
	if err := ic.DB.Save(ingredient).Error; err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeIngredientUpdateError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", ingredient)
}

type restockReq struct {
	Cantidad float64 `json:"cantidad" binding:"required,gt=0"`
}

// RestockIngredient -> POST /ingredients/:id/restock
func (ic *IngredientController) RestockIngredient(c *gin.Context) {
	id := c.Param("id")

	var body restockReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	ingredient, err := ic.Ledger.Increment(id, body.Cantidad)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFound(utils.CodeIngredientNotFound, ""))
			return
		}
		utils.RespondError(c, utils.Internal(utils.CodeIngredientUpdateError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient restocked", ingredient)
}

// ResetAllIngredients restores every seeded ingredient to its initial
// quantity. Demo/testing path only.
func (ic *IngredientController) ResetAllIngredients(c *gin.Context) {
	for id, qty := range database.InitialQuantities {
		if err := ic.Ledger.ResetQuantity(id, qty); err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	ingredients, err := ic.Ledger.All()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory restocked", ingredients)
}
