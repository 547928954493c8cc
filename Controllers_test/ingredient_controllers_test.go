package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/controllers"
	"github.com/kitchify/kitchify-server/database"
	"github.com/kitchify/kitchify-server/models"
)

func setupIngredientRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	ctrl := controllers.NewIngredientController(db)
	r.GET("/ingredients", ctrl.GetAllIngredients)
	r.GET("/ingredients/low-stock", ctrl.GetLowStockIngredients)
	r.POST("/ingredients", ctrl.CreateIngredient)
	r.PUT("/ingredients/:id", ctrl.UpdateIngredient)
	r.POST("/ingredients/:id/restock", ctrl.RestockIngredient)
	r.POST("/ingredients/reset-all", ctrl.ResetAllIngredients)
	return r
}

func TestIngredientCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := setupIngredientRouter(db)

	w := doJSON(t, r, "POST", "/ingredients", map[string]interface{}{
		"id": "1", "name": "Tomato", "quantity": 40, "unit": "units", "minimum": 10, "category": "vegetables",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate id is rejected.
	w = doJSON(t, r, "POST", "/ingredients", map[string]interface{}{
		"id": "1", "name": "Tomato again", "quantity": 5, "unit": "units", "minimum": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INGREDIENT_CREATE_ERROR", decodeBody(t, w)["code"])

	// Initial quantity below the minimum is rejected.
	w = doJSON(t, r, "POST", "/ingredients", map[string]interface{}{
		"id": "2", "name": "Cheese", "quantity": 3, "unit": "units", "minimum": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])

	w = doJSON(t, r, "GET", "/ingredients", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)

	w = doJSON(t, r, "PUT", "/ingredients/1", map[string]interface{}{
		"name": "Roma Tomato", "unit": "units", "minimum": 12, "category": "vegetables",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var ing models.Ingredient
	assert.NoError(t, db.First(&ing, "id = ?", "1").Error)
	assert.Equal(t, "Roma Tomato", ing.Name)
	assert.Equal(t, 12.0, ing.Minimum)
	// Quantity is not editable through the update endpoint.
	assert.Equal(t, 40.0, ing.Quantity)

	w = doJSON(t, r, "PUT", "/ingredients/missing", map[string]interface{}{
		"name": "X", "unit": "units", "minimum": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INGREDIENT_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestRestockIngredient(t *testing.T) {
	db := setupTestDB(t)
	r := setupIngredientRouter(db)

	db.Create(&models.Ingredient{ID: "a", Name: "A", Quantity: 1, Unit: "units", Minimum: 2})

	w := doJSON(t, r, "POST", "/ingredients/a/restock", map[string]interface{}{"cantidad": 10})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 11.0, ingredientQuantity(t, db, "a"))

	// Zero and negative amounts fail validation and change nothing.
	for _, amount := range []float64{0, -5} {
		w = doJSON(t, r, "POST", "/ingredients/a/restock", map[string]interface{}{"cantidad": amount})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
	}
	assert.Equal(t, 11.0, ingredientQuantity(t, db, "a"))

	w = doJSON(t, r, "POST", "/ingredients/missing/restock", map[string]interface{}{"cantidad": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLowStockEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupIngredientRouter(db)

	db.Create(&models.Ingredient{ID: "low", Name: "Low", Quantity: 2, Unit: "units", Minimum: 5})
	db.Create(&models.Ingredient{ID: "edge", Name: "Edge", Quantity: 5, Unit: "units", Minimum: 5})
	db.Create(&models.Ingredient{ID: "fine", Name: "Fine", Quantity: 50, Unit: "units", Minimum: 5})

	w := doJSON(t, r, "GET", "/ingredients/low-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 2)
}

func TestResetAllIngredients(t *testing.T) {
	db := setupTestDB(t)
	r := setupIngredientRouter(db)

	assert.NoError(t, database.Seed(db))

	db.Model(&models.Ingredient{}).Where("id = ?", "1").Update("quantity", 3)

	w := doJSON(t, r, "POST", "/ingredients/reset-all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, ingredientQuantity(t, db, "1"))
}
