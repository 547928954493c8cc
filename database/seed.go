package database

import (
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/utils"
)

// InitialQuantities maps each seeded ingredient to its starting stock; the
// reset-all endpoint restores these values.
var InitialQuantities = map[string]float64{
	"1": 50, "2": 30, "3": 40, "4": 35, "5": 45,
	"6": 100, "7": 2000, "8": 25, "9": 30, "10": 20, "11": 15,
}

var seedIngredients = []models.Ingredient{
	{ID: "1", Name: "Hamburger bun", Quantity: 50, Unit: "units", Minimum: 10, Category: "breads"},
	{ID: "2", Name: "Beef patty", Quantity: 30, Unit: "units", Minimum: 5, Category: "meats"},
	{ID: "3", Name: "Tomato", Quantity: 40, Unit: "units", Minimum: 10, Category: "vegetables"},
	{ID: "4", Name: "Lettuce", Quantity: 35, Unit: "units", Minimum: 8, Category: "vegetables"},
	{ID: "5", Name: "Cheese", Quantity: 45, Unit: "units", Minimum: 10, Category: "dairy"},
	{ID: "6", Name: "Potatoes", Quantity: 100, Unit: "units", Minimum: 20, Category: "vegetables"},
	{ID: "7", Name: "Special sauce", Quantity: 2000, Unit: "ml", Minimum: 500, Category: "sauces"},
	{ID: "8", Name: "Sausage", Quantity: 25, Unit: "units", Minimum: 5, Category: "meats"},
	{ID: "9", Name: "Hot dog bun", Quantity: 30, Unit: "units", Minimum: 10, Category: "breads"},
	{ID: "10", Name: "Onion", Quantity: 20, Unit: "units", Minimum: 5, Category: "vegetables"},
	{ID: "11", Name: "Bacon", Quantity: 15, Unit: "units", Minimum: 5, Category: "meats"},
}

var seedRecipes = []models.Recipe{
	{
		ID: "r1", Name: "Classic Burger", Category: "Burgers", Price: 8.5,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "1", Quantity: 2, Position: 0},
			{IngredientID: "2", Quantity: 1, Position: 1},
			{IngredientID: "3", Quantity: 1, Position: 2},
			{IngredientID: "4", Quantity: 1, Position: 3},
			{IngredientID: "7", Quantity: 30, Position: 4},
		},
	},
	{
		ID: "r2", Name: "Cheeseburger", Category: "Burgers", Price: 10.0,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "1", Quantity: 2, Position: 0},
			{IngredientID: "2", Quantity: 1, Position: 1},
			{IngredientID: "3", Quantity: 1, Position: 2},
			{IngredientID: "4", Quantity: 1, Position: 3},
			{IngredientID: "5", Quantity: 2, Position: 4},
			{IngredientID: "7", Quantity: 30, Position: 5},
		},
	},
	{
		ID: "r3", Name: "Bacon Burger", Category: "Burgers", Price: 12.0,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "1", Quantity: 2, Position: 0},
			{IngredientID: "2", Quantity: 1, Position: 1},
			{IngredientID: "3", Quantity: 1, Position: 2},
			{IngredientID: "4", Quantity: 1, Position: 3},
			{IngredientID: "5", Quantity: 2, Position: 4},
			{IngredientID: "11", Quantity: 2, Position: 5},
			{IngredientID: "7", Quantity: 30, Position: 6},
		},
	},
	{
		ID: "r4", Name: "Plain Hot Dog", Category: "Hot Dogs", Price: 6.0,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "9", Quantity: 1, Position: 0},
			{IngredientID: "8", Quantity: 1, Position: 1},
			{IngredientID: "7", Quantity: 20, Position: 2},
		},
	},
	{
		ID: "r5", Name: "Special Hot Dog", Category: "Hot Dogs", Price: 8.0,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "9", Quantity: 1, Position: 0},
			{IngredientID: "8", Quantity: 1, Position: 1},
			{IngredientID: "5", Quantity: 1, Position: 2},
			{IngredientID: "10", Quantity: 1, Position: 3},
			{IngredientID: "7", Quantity: 30, Position: 4},
		},
	},
	{
		ID: "r6", Name: "French Fries", Category: "Sides", Price: 3.5,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "6", Quantity: 5, Position: 0},
		},
	},
}

// Seed wipes the ingredient, recipe and order tables and loads the demo
// burger/hot-dog menu. Intended for fresh databases and local development.
func Seed(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Recipe{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}

	if err := db.Create(&seedIngredients).Error; err != nil {
		return err
	}
	if err := db.Create(&seedRecipes).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("seeded %d ingredients and %d recipes", len(seedIngredients), len(seedRecipes))
	return nil
}
