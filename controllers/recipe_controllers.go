package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/utils"
)

type RecipeController struct {
	DB *gorm.DB
}

func NewRecipeController(db *gorm.DB) *RecipeController {
	return &RecipeController{DB: db}
}

func preloadRequirements(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// GetAllRecipes -> all recipes, optionally filtered by ?category=
func (rc *RecipeController) GetAllRecipes(c *gin.Context) {
	query := rc.DB.Preload("Ingredients", preloadRequirements).Order("id asc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of recipes", recipes)
}

// GetRecipeByID -> detail of one recipe with its requirement list
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	var recipe models.Recipe
	err := rc.DB.Preload("Ingredients", preloadRequirements).
		First(&recipe, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFound(utils.CodeRecipeNotFound, ""))
			return
		}
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Recipe detail", recipe)
}

type recipeReq struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Ingredients []struct {
		IngredientID string  `json:"ingredient_id" binding:"required"`
		Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	} `json:"ingredients" binding:"required,min=1,dive"`
}

func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var body recipeReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	var count int64
	if err := rc.DB.Model(&models.Recipe{}).Where("id = ?", body.ID).Count(&count).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, utils.BadRequest(utils.CodeRecipeCreateError,
			fmt.Sprintf("recipe with id %s already exists", body.ID)))
		return
	}

	// Every referenced ingredient must exist before the recipe can be sold,
	// and each may appear only once in the requirement list.
	ids := make([]string, 0, len(body.Ingredients))
	seen := make(map[string]bool, len(body.Ingredients))
	for _, req := range body.Ingredients {
		if seen[req.IngredientID] {
			utils.RespondError(c, utils.BadRequest(utils.CodeRecipeCreateError,
				fmt.Sprintf("duplicate ingredient %s in requirement list", req.IngredientID)))
			return
		}
		seen[req.IngredientID] = true
		ids = append(ids, req.IngredientID)
	}
	var found []models.Ingredient
	if err := rc.DB.Where("id IN ?", ids).Find(&found).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	if len(found) != len(ids) {
		known := make(map[string]bool, len(found))
		for _, ing := range found {
			known[ing.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !known[id] {
				missing = append(missing, id)
			}
		}
		utils.RespondError(c, utils.BadRequest(utils.CodeRecipeCreateError,
			"ingredients not found: "+strings.Join(missing, ", ")))
		return
	}

	recipe := models.Recipe{
		ID:       body.ID,
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
	}
	for i, req := range body.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			IngredientID: req.IngredientID,
			Quantity:     req.Quantity,
			Position:     i,
		})
	}

	if err := rc.DB.Create(&recipe).Error; err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeRecipeCreateError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Recipe created", recipe)
}
